// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-payments/internal/domain"
)

const digits = "0123456789"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 2 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// AccountNumber generates a random eight digit account number.
func AccountNumber() string {
	return fromSet(digits, 8)
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 2 decimals.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// Scheme returns a random supported payment scheme.
func Scheme() domain.PaymentScheme {
	return domain.Schemes[Intn(len(domain.Schemes))]
}

// AllowedSchemes returns a random non-empty set of payment schemes.
func AllowedSchemes() domain.AllowedSchemes {
	return domain.AllowedSchemes(Intn(7) + 1)
}

// Account generates a live account with a random number, balance and scheme set.
func Account() domain.Account {
	return domain.Account{
		Number:         AccountNumber(),
		Balance:        MoneyAmountBetween(1_000, 10_000),
		AllowedSchemes: AllowedSchemes(),
		Status:         domain.StatusLive,
	}
}
