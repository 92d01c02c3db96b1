package accountrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/configpkg"
	"github.com/go-petr/pet-payments/pkg/dbpkg"
)

// Store is the account repository every backend implements.
type Store interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}

var (
	_ Store = (*RepoPGS)(nil)
	_ Store = (*RepoSQLite)(nil)
	_ Store = (*RepoMem)(nil)
)

// Open returns the account store selected by config.DataStoreType.
//
// The returned *sql.DB is nil for the memory store. The caller owns it.
func Open(config configpkg.Config) (Store, *sql.DB, error) {
	switch config.DataStoreType {
	case configpkg.StorePostgres, "":
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}

		return NewRepoPGS(db), db, nil
	case configpkg.StoreBackup:
		db, err := OpenSQLite(config.BackupDBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("open backup store: %w", err)
		}

		return NewRepoSQLite(db), db, nil
	case configpkg.StoreMemory:
		return NewRepoMem(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown data store type %q", config.DataStoreType)
	}
}
