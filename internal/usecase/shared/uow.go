package shared

import (
	"context"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once, so it must not keep state across calls.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Menus() MenuRepository
	DB() db.DBTX
}

// MenuRepository loads and stores whole aggregates. FindByID returns deleted
// menus too and locks the row for the rest of the transaction.
type MenuRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*menu.Menu, error)
	// FindActiveByCafe returns (nil, nil) when the cafe has no active menu.
	FindActiveByCafe(ctx context.Context, tx db.DBTX, cafeID uuid.UUID) (*menu.Menu, error)
	Save(ctx context.Context, tx db.DBTX, m *menu.Menu) error
}
