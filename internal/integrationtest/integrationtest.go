// Package integrationtest provides server and db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-payments/cmd/httpserver"
	"github.com/go-petr/pet-payments/internal/accountrepo"
	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/internal/middleware"
	"github.com/go-petr/pet-payments/pkg/configpkg"
	"github.com/go-petr/pet-payments/pkg/dbpkg"
	"github.com/go-petr/pet-payments/pkg/randompkg"
)

// SetupServer returns a postgres backed test server that cleans up the database
// after the test.
func SetupServer(t *testing.T) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(accountrepo.NewRepoPGS(db), db, logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(store, db, logger, config) returned error: %v`, err)
	}

	return server
}

// Flush flushes all db tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables sql.NullString

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name <> 'schema_migrations';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if !tables.Valid {
		return
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables.String + " CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SeedAccount creates a random account with the given schemes, status and balance.
func SeedAccount(t *testing.T, store accountrepo.Store, schemes domain.AllowedSchemes,
	status domain.AccountStatus, balance string,
) domain.Account {
	t.Helper()

	arg := domain.CreateAccountParams{
		Number:         randompkg.AccountNumber(),
		Balance:        decimal.RequireFromString(balance),
		AllowedSchemes: schemes,
		Status:         status,
	}

	account, err := store.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("store.Create(%+v) returned error: %v", arg, err)
	}

	return account
}
