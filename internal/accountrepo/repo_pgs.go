// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/dbpkg"
	"github.com/go-petr/pet-payments/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic on Postgres.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var (
		a      domain.Account
		status string
	)

	if err := row.Scan(
		&a.Number,
		&a.Balance,
		&a.AllowedSchemes,
		&status,
		&a.CreatedAt,
	); err != nil {
		return a, err
	}

	s, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Account{}, err
	}

	a.Status = s

	return a, nil
}

const createQuery = `
INSERT INTO
    accounts (number, balance, allowed_schemes, status)
VALUES
    ($1, $2, $3, $4)
RETURNING number, balance, allowed_schemes, status, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Number,
		arg.Balance,
		arg.AllowedSchemes,
		arg.Status.String(),
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "accounts_pkey" {
			return domain.Account{}, domain.ErrAccountAlreadyExists
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	number, balance, allowed_schemes, status, created_at
FROM accounts
WHERE number = $1
`

// GetAccount returns the account with the given number.
func (r *RepoPGS) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Str("number", number).Send()
			return domain.Account{}, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const updateQuery = `
UPDATE accounts
SET balance = $1, allowed_schemes = $2, status = $3
WHERE number = $4
`

// UpdateAccount persists the balance, schemes and status of the account.
func (r *RepoPGS) UpdateAccount(ctx context.Context, account domain.Account) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, updateQuery,
		account.Balance,
		account.AllowedSchemes,
		account.Status.String(),
		account.Number,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return checkAffected(ctx, res)
}

func checkAffected(ctx context.Context, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE number = $1
`

// Delete removes the account with the given number.
func (r *RepoPGS) Delete(ctx context.Context, number string) error {
	_, err := r.db.ExecContext(ctx, deleteQuery, number)
	return err
}
