package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/errorspkg"
)

// OpenSQLite opens the sqlite database at source and creates the accounts table.
func OpenSQLite(source string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", source)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer, and every connection to :memory: is a
	// separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := MigrateSQLite(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// MigrateSQLite creates the sqlite schema when it does not exist yet.
func MigrateSQLite(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			number TEXT PRIMARY KEY,
			balance TEXT NOT NULL,
			allowed_schemes INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Live',
			created_at TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// RepoSQLite is the backup account store kept in a sqlite database.
type RepoSQLite struct {
	db *sql.DB
}

// NewRepoSQLite returns account RepoSQLite.
func NewRepoSQLite(db *sql.DB) *RepoSQLite {
	return &RepoSQLite{db: db}
}

// sqliteRow adapts the text encoded created_at column to scanAccount.
type sqliteRow struct {
	row *sql.Row
}

func (r sqliteRow) Scan(dest ...any) error {
	var createdAt string

	last := len(dest) - 1
	target, ok := dest[last].(*time.Time)
	if !ok {
		return r.row.Scan(dest...)
	}

	dest[last] = &createdAt
	if err := r.row.Scan(dest...); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return err
	}

	*target = t

	return nil
}

// Create creates the account and then returns it.
func (r *RepoSQLite) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (number, balance, allowed_schemes, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.Number,
		arg.Balance.String(),
		arg.AllowedSchemes,
		arg.Status.String(),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && isConstraint(sqliteErr.Code()) {
			return domain.Account{}, domain.ErrAccountAlreadyExists
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return domain.Account{
		Number:         arg.Number,
		Balance:        arg.Balance,
		AllowedSchemes: arg.AllowedSchemes,
		Status:         arg.Status,
		CreatedAt:      createdAt,
	}, nil
}

// isConstraint matches both the primary and the extended constraint result codes.
func isConstraint(code int) bool {
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code&0xff == sqlite3.SQLITE_CONSTRAINT
}

// GetAccount returns the account with the given number.
func (r *RepoSQLite) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx,
		`SELECT number, balance, allowed_schemes, status, created_at
		 FROM accounts
		 WHERE number = ?`,
		number,
	)

	a, err := scanAccount(sqliteRow{row})
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

// UpdateAccount persists the balance, schemes and status of the account.
func (r *RepoSQLite) UpdateAccount(ctx context.Context, account domain.Account) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts
		 SET balance = ?, allowed_schemes = ?, status = ?
		 WHERE number = ?`,
		account.Balance.String(),
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
