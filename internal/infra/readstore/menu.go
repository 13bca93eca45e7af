package readstore

import (
	"context"
	"time"

	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/infra/repository/converter"
	"cafe-menu-service/internal/pkg/pgconv"
	"cafe-menu-service/internal/usecase/queries"
	"cafe-menu-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuViewQueries interface {
	GetMenuByCafe(ctx context.Context, db pgstore.DBTX, cafeID, id uuid.UUID) (pgstore.Menus, error)
	GetActiveMenuByCafe(ctx context.Context, db pgstore.DBTX, cafeID uuid.UUID) (pgstore.Menus, error)
	ListSectionsByMenu(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID) ([]pgstore.MenuSections, error)
	ListItemsByMenu(ctx context.Context, db pgstore.DBTX, menuID uuid.UUID) ([]pgstore.MenuItems, error)
	ListMenusByCafeFirstPage(ctx context.Context, db pgstore.DBTX, arg pgstore.ListMenusByCafeFirstPageParams) ([]pgstore.MenuSummaryRow, error)
	ListMenusByCafeKeyset(ctx context.Context, db pgstore.DBTX, arg pgstore.ListMenusByCafeKeysetParams) ([]pgstore.MenuSummaryRow, error)
}

// MenuReadStore reads each menu view inside one read-only transaction.
type MenuReadStore struct {
	queries MenuViewQueries
	uow     shared.UnitOfWork
	db      pgstore.DBTX
}

func NewMenuReadStore(queries MenuViewQueries, uow shared.UnitOfWork, db pgstore.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		uow:     uow,
		db:      db,
	}
}

func (r *MenuReadStore) FindByID(ctx context.Context, cafeID, id uuid.UUID) (*queries.MenuView, error) {
	var view *queries.MenuView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgstore.DBTX) error {
		row, err := r.queries.GetMenuByCafe(ctx, db, cafeID, id)
		if err != nil {
			return infra.WrapRepoErr("failed to get menu view", err)
		}
		view, err = r.view(ctx, db, row)
		return err
	})
	return view, err
}

func (r *MenuReadStore) FindActiveByCafe(ctx context.Context, cafeID uuid.UUID) (*queries.MenuView, error) {
	var view *queries.MenuView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgstore.DBTX) error {
		row, err := r.queries.GetActiveMenuByCafe(ctx, db, cafeID)
		if err != nil {
			return infra.WrapRepoErr("failed to get active menu view", err)
		}
		view, err = r.view(ctx, db, row)
		return err
	})
	return view, err
}

func (r *MenuReadStore) ListByCafeFirstPage(ctx context.Context, cafeID uuid.UUID, state *string, limit int32) ([]*queries.MenuListItem, error) {
	rows, err := r.queries.ListMenusByCafeFirstPage(ctx, r.db, pgstore.ListMenusByCafeFirstPageParams{
		CafeID: cafeID,
		State:  state,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}
	return toListItems(rows), nil
}

func (r *MenuReadStore) ListByCafeKeyset(ctx context.Context, cafeID uuid.UUID, state *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.MenuListItem, error) {
	rows, err := r.queries.ListMenusByCafeKeyset(ctx, r.db, pgstore.ListMenusByCafeKeysetParams{
		CafeID:        cafeID,
		State:         state,
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}
	return toListItems(rows), nil
}

func (r *MenuReadStore) view(ctx context.Context, db pgstore.DBTX, row pgstore.Menus) (*queries.MenuView, error) {
	sectionRows, err := r.queries.ListSectionsByMenu(ctx, db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu sections", err)
	}
	itemRows, err := r.queries.ListItemsByMenu(ctx, db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}

	items := make(map[uuid.UUID][]queries.ItemView, len(sectionRows))
	for _, ir := range itemRows {
		iv, err := toItemView(ir)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert menu item", err)
		}
		items[ir.SectionID] = append(items[ir.SectionID], iv)
	}

	sections := make([]queries.SectionView, len(sectionRows))
	for i, sr := range sectionRows {
		from, err := converter.TimeOfDayFromPg(sr.AvailableFrom)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert section window", err)
		}
		to, err := converter.TimeOfDayFromPg(sr.AvailableTo)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert section window", err)
		}
		sv := queries.SectionView{
			ID:        sr.ID,
			Name:      sr.Name,
			Position:  int(sr.Position),
			Items:     items[sr.ID],
			CreatedAt: pgconv.TimeFromPgtype(sr.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(sr.UpdatedAt),
		}
		if sv.Items == nil {
			sv.Items = []queries.ItemView{}
		}
		if from != nil {
			s := from.String()
			sv.AvailableFrom = &s
		}
		if to != nil {
			s := to.String()
			sv.AvailableTo = &s
		}
		sections[i] = sv
	}

	return &queries.MenuView{
		ID:          row.ID,
		CafeID:      row.CafeID,
		Name:        row.Name,
		State:       row.State,
		PublishedAt: pgconv.TimePtrFromPgtype(row.PublishedAt),
		ActivatedAt: pgconv.TimePtrFromPgtype(row.ActivatedAt),
		Sections:    sections,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toItemView(row pgstore.MenuItems) (queries.ItemView, error) {
	it, err := converter.ItemFromRow(row)
	if err != nil {
		return queries.ItemView{}, err
	}
	price := it.Price()
	ingredients := it.Ingredients()
	iv := queries.ItemView{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Amount:      price.Amount(),
		Unit:        price.Unit().String(),
		Discount:    price.Discount(),
		FinalAmount: price.FinalAmount(),
		Position:    it.Position(),
		Ingredients: make([]queries.IngredientView, len(ingredients)),
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
	for i, ing := range ingredients {
		iv.Ingredients[i] = queries.IngredientView{Name: ing.Name(), Excludable: ing.Excludable()}
	}
	if img := it.Image(); img != nil {
		orig, thumb := img.OriginalPath(), img.ThumbnailPath()
		iv.OriginalPath = &orig
		iv.ThumbnailPath = &thumb
	}
	return iv, nil
}

func toListItems(rows []pgstore.MenuSummaryRow) []*queries.MenuListItem {
	out := make([]*queries.MenuListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.MenuListItem{
			ID:           row.ID,
			Name:         row.Name,
			State:        row.State,
			SectionCount: int(row.SectionCount),
			ItemCount:    int(row.ItemCount),
			PublishedAt:  pgconv.TimePtrFromPgtype(row.PublishedAt),
			ActivatedAt:  pgconv.TimePtrFromPgtype(row.ActivatedAt),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out
}
