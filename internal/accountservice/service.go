// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetAccount(ctx context.Context, number string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create opens an account with the given number, opening balance, schemes and status.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	if arg.Balance.IsNegative() {
		zerolog.Ctx(ctx).Info().
			Str("number", arg.Number).
			Stringer("balance", arg.Balance).
			Err(domain.ErrNegativeAmount).
			Send()

		return domain.Account{}, domain.ErrNegativeAmount
	}

	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns account for the given account number.
func (s *Service) Get(ctx context.Context, number string) (domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, number)
	if err != nil {
		return account, err
	}

	return account, nil
}
