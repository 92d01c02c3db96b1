// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the account with the given number already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrUnknownStatus indicates an account status that is not supported.
	ErrUnknownStatus = errors.New("unknown account status")
)

// AccountStatus is the lifecycle state of an account.
//
// The zero value is StatusLive.
type AccountStatus int

// Supported account statuses.
const (
	StatusLive AccountStatus = iota
	StatusDisabled
	StatusInboundPaymentsOnly
)

var statusNames = map[AccountStatus]string{
	StatusLive:                "Live",
	StatusDisabled:            "Disabled",
	StatusInboundPaymentsOnly: "InboundPaymentsOnly",
}

func (s AccountStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "Unknown"
}

// ParseStatus returns the status for its text name.
func ParseStatus(name string) (AccountStatus, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}

	return 0, ErrUnknownStatus
}

// MarshalText implements encoding.TextMarshaler.
func (s AccountStatus) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, ErrUnknownStatus
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *AccountStatus) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = status

	return nil
}

// Account holds the debtor side data needed to decide on a payment.
type Account struct {
	Number         string          `json:"number"`
	Balance        decimal.Decimal `json:"balance"`
	AllowedSchemes AllowedSchemes  `json:"allowed_schemes"`
	Status         AccountStatus   `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateAccountParams is the input data to open an account.
type CreateAccountParams struct {
	Number         string          `json:"number"`
	Balance        decimal.Decimal `json:"balance"`
	AllowedSchemes AllowedSchemes  `json:"allowed_schemes"`
	Status         AccountStatus   `json:"status"`
}
