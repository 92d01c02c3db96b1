// Package paymentservice manages business logic layer of payments.
package paymentservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
)

// Repo provides data access layer interface needed by payment service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package paymentservice
type Repo interface {
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// Service facilitates payment service layer logic.
type Service struct {
	repo Repo
}

// New returns payment service struct to manage payment business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// MakePayment debits the debtor account when the request passes the rules of
// its payment scheme.
//
// Every failure collapses into an unsuccessful result. The account is updated
// only on success, and at most once.
func (s *Service) MakePayment(ctx context.Context, req domain.PaymentRequest) domain.PaymentResult {
	l := zerolog.Ctx(ctx).With().
		Str("debtor_account_number", req.DebtorAccountNumber).
		Stringer("payment_scheme", req.PaymentScheme).
		Logger()

	var result domain.PaymentResult

	account, err := s.repo.GetAccount(ctx, req.DebtorAccountNumber)
	if err != nil {
		l.Info().Err(err).Msg("debtor account lookup failed")
		return result
	}

	if !Eligible(account, req) {
		l.Info().Msg("payment rejected")
		return result
	}

	account.Balance = account.Balance.Sub(req.Amount)

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		l.Error().Err(err).Send()
		return result
	}

	result.Success = true

	return result
}
