package queries

import (
	"context"
	"strings"
	"time"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CodeCursorInvalid = "cursor.invalid"
	CodeStateInvalid  = "menu.state_invalid"
)

type MenuView struct {
	ID          uuid.UUID     `json:"id"`
	CafeID      uuid.UUID     `json:"cafe_id"`
	Name        string        `json:"name"`
	State       string        `json:"state"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	ActivatedAt *time.Time    `json:"activated_at,omitempty"`
	Sections    []SectionView `json:"sections"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type SectionView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Position      int        `json:"position"`
	AvailableFrom *string    `json:"available_from,omitempty"`
	AvailableTo   *string    `json:"available_to,omitempty"`
	Items         []ItemView `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ItemView struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Unit          string           `json:"unit"`
	Discount      decimal.Decimal  `json:"discount"`
	FinalAmount   decimal.Decimal  `json:"final_amount"`
	OriginalPath  *string          `json:"original_path,omitempty"`
	ThumbnailPath *string          `json:"thumbnail_path,omitempty"`
	Position      int              `json:"position"`
	Ingredients   []IngredientView `json:"ingredients"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type IngredientView struct {
	Name       string `json:"name"`
	Excludable bool   `json:"excludable"`
}

type MenuListItem struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	State        string     `json:"state"`
	SectionCount int        `json:"section_count"`
	ItemCount    int        `json:"item_count"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuFilters struct {
	// State restricts the list to one lifecycle state; empty lists every non-deleted menu.
	State string
}

// MenuReadStore never returns deleted menus.
type MenuReadStore interface {
	FindByID(ctx context.Context, cafeID, id uuid.UUID) (*MenuView, error)
	FindActiveByCafe(ctx context.Context, cafeID uuid.UUID) (*MenuView, error)
	ListByCafeFirstPage(ctx context.Context, cafeID uuid.UUID, state *string, limit int32) ([]*MenuListItem, error)
	ListByCafeKeyset(ctx context.Context, cafeID uuid.UUID, state *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*MenuListItem, error)
}

type MenuQueries interface {
	GetByID(ctx context.Context, cafeID, id uuid.UUID) (*MenuView, error)
	GetActive(ctx context.Context, cafeID uuid.UUID) (*MenuView, error)
	ListByCafe(ctx context.Context, cafeID uuid.UUID, filters MenuFilters, cursor *Cursor, limit int) ([]*MenuListItem, *Cursor, error)
}

type menuQueriesImpl struct {
	store MenuReadStore
}

func NewMenuQueries(store MenuReadStore) MenuQueries {
	return &menuQueriesImpl{store: store}
}

func (q *menuQueriesImpl) GetByID(ctx context.Context, cafeID, id uuid.UUID) (*MenuView, error) {
	v, err := q.store.FindByID(ctx, cafeID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return v, nil
}

func (q *menuQueriesImpl) GetActive(ctx context.Context, cafeID uuid.UUID) (*MenuView, error) {
	v, err := q.store.FindActiveByCafe(ctx, cafeID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return v, nil
}

func (q *menuQueriesImpl) ListByCafe(ctx context.Context, cafeID uuid.UUID, filters MenuFilters, cursor *Cursor, limit int) ([]*MenuListItem, *Cursor, error) {
	var state *string
	if raw := strings.ToLower(strings.TrimSpace(filters.State)); raw != "" {
		s, err := menu.ParseState(raw)
		if err != nil || s == menu.StateDeleted {
			return nil, nil, errs.Validation(errs.NewDetail("state", CodeStateInvalid, "state must be new, published or active"))
		}
		str := s.String()
		state = &str
	}

	limit = ValidateLimit(limit)
	var rows []*MenuListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListByCafeFirstPage(ctx, cafeID, state, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Validation(errs.NewDetail("after", CodeCursorInvalid, derr.Error()))
		}
		rows, err = q.store.ListByCafeKeyset(ctx, cafeID, state, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func notFoundOr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(menu.CodeMenuNotFound, "menu not found")
	}
	return err
}
