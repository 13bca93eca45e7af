package repository

import (
	"context"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/infra/repository/converter"
	"cafe-menu-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MenuWriteQueries interface {
	GetMenuForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Menus, error)
	GetActiveMenuIDForUpdate(ctx context.Context, db pgstore.DBTX, cafeID uuid.UUID) (uuid.UUID, error)
	ListSectionsByMenu(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID) ([]pgstore.MenuSections, error)
	ListItemsByMenu(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID) ([]pgstore.MenuItems, error)
	UpsertMenu(ctx context.Context, db pgstore.DBTX, arg pgstore.Menus) error
	DeleteSectionsNotIn(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID, keep []string) error
	DeleteItemsNotIn(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID, keep []string) error
	UpsertContent(ctx context.Context, db pgstore.DBTX, sections []pgstore.MenuSections, items []pgstore.MenuItems) error
}

type MenuRepository struct {
	queries MenuWriteQueries
}

func NewMenuRepository(queries MenuWriteQueries) *MenuRepository {
	return &MenuRepository{queries: queries}
}

func (r *MenuRepository) FindByID(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) (*menu.Menu, error) {
	row, err := r.queries.GetMenuForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get menu", err)
	}
	return r.load(ctx, tx, row)
}

func (r *MenuRepository) FindActiveByCafe(ctx context.Context, tx pgstore.DBTX, cafeID uuid.UUID) (*menu.Menu, error) {
	id, err := r.queries.GetActiveMenuIDForUpdate(ctx, tx, cafeID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get active menu", err)
	}
	return r.FindByID(ctx, tx, id)
}

// Save writes the menu row, removes sections and items the aggregate no longer
// holds, and upserts the rest. Deletes run first so removed rows never collide.
func (r *MenuRepository) Save(ctx context.Context, tx pgstore.DBTX, m *menu.Menu) error {
	if err := r.queries.UpsertMenu(ctx, tx, converter.MenuToRow(m)); err != nil {
		return infra.WrapRepoErr("failed to upsert menu", err)
	}

	sectionIDs, itemIDs := converter.ContentIDs(m)
	if err := r.queries.DeleteItemsNotIn(ctx, tx, m.ID(), pgconv.UUIDStrings(itemIDs)); err != nil {
		return infra.WrapRepoErr("failed to delete removed items", err)
	}
	if err := r.queries.DeleteSectionsNotIn(ctx, tx, m.ID(), pgconv.UUIDStrings(sectionIDs)); err != nil {
		return infra.WrapRepoErr("failed to delete removed sections", err)
	}

	sections, items, err := converter.ContentToRows(m)
	if err != nil {
		return infra.WrapRepoErr("failed to convert menu content", err)
	}
	if err := r.queries.UpsertContent(ctx, tx, sections, items); err != nil {
		return infra.WrapRepoErr("failed to upsert menu content", err)
	}
	return nil
}

func (r *MenuRepository) load(ctx context.Context, tx pgstore.DBTX, row pgstore.Menus) (*menu.Menu, error) {
	sections, err := r.queries.ListSectionsByMenu(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu sections", err)
	}
	items, err := r.queries.ListItemsByMenu(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	m, err := converter.MenuFromRows(row, sections, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild menu", err)
	}
	return m, nil
}
