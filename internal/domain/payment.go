package domain

import (
	"errors"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates an amount that is not positive.
	ErrNegativeAmount = errors.New("amount must be positive")
)

// Bounds of amounts accepted from clients.
const (
	MaxAmountScale  = 18
	MaxAmountDigits = 38
)

// ParseAmount parses a decimal amount and rejects values that are too long or
// too precise to be money, returning ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) > 2*MaxAmountDigits {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	exp := amount.Exponent()
	if exp < -MaxAmountScale || exp > MaxAmountScale {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	digits := len(new(big.Int).Abs(amount.Coefficient()).String())
	if digits+int(exp) > MaxAmountDigits {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	return amount, nil
}

// PaymentRequest is the input data for a single payment.
type PaymentRequest struct {
	CreditorAccountNumber string          `json:"creditor_account_number"`
	DebtorAccountNumber   string          `json:"debtor_account_number"`
	Amount                decimal.Decimal `json:"amount"`
	PaymentDate           time.Time       `json:"payment_date"`
	PaymentScheme         PaymentScheme   `json:"payment_scheme"`
}

// PaymentResult is the outcome of a payment.
type PaymentResult struct {
	Success bool `json:"success"`
}
