package accountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
)

// RepoMem keeps accounts in process memory.
//
// Accounts are stored and returned by value, so callers only change stored
// state through UpdateAccount.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewRepoMem returns an empty RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]domain.Account),
	}
}

// Create creates the account and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[arg.Number]; exists {
		zerolog.Ctx(ctx).Info().Str("number", arg.Number).Err(domain.ErrAccountAlreadyExists).Send()
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}

	a := domain.Account{
		Number:         arg.Number,
		Balance:        arg.Balance,
		AllowedSchemes: arg.AllowedSchemes,
		Status:         arg.Status,
		CreatedAt:      time.Now().UTC(),
	}
	r.accounts[a.Number] = a

	return a, nil
}

// GetAccount returns the account with the given number.
func (r *RepoMem) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		zerolog.Ctx(ctx).Info().Str("number", number).Err(domain.ErrAccountNotFound).Send()
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// UpdateAccount persists the balance, schemes and status of the account.
func (r *RepoMem) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.Number]
	if !ok {
		zerolog.Ctx(ctx).Info().Str("number", account.Number).Err(domain.ErrAccountNotFound).Send()
		return domain.ErrAccountNotFound
	}

	stored.Balance = account.Balance
	stored.AllowedSchemes = account.AllowedSchemes
	stored.Status = account.Status
	r.accounts[account.Number] = stored

	return nil
}
