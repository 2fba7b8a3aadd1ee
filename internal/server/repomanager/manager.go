// Package repomanager opens the server's storage and hands out its
// repositories.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/gatormarket/internal/dbx"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/migrations"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
)

// MemoryDSN selects the in-process repositories.
const MemoryDSN = "memory"

type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository
	Close() error
}

// Open returns in-memory repositories for MemoryDSN, otherwise connects to
// PostgreSQL through pgx and applies the embedded migrations.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == MemoryDSN {
		return NewInMemoryRepositoryManager(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return newPostgres(ctx, db)
}

func newPostgres(ctx context.Context, db *sql.DB) (*PostgresRepositoryManager, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := dbx.Migrate(ctx, db, "postgres", migrations.Migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migrate error: %w", err)
	}
	return &PostgresRepositoryManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		items: items.NewPostgresRepository(db),
	}, nil
}

type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	items items.Repository
}

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }
func (m *PostgresRepositoryManager) Items() items.Repository { return m.items }
func (m *PostgresRepositoryManager) Close() error            { return m.db.Close() }

type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
	items *items.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		items: items.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *InMemoryRepositoryManager) Items() items.Repository { return m.items }
func (m *InMemoryRepositoryManager) Close() error            { return nil }
