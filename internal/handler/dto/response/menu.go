package response

import (
	"time"

	"cafe-menu-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuResponse struct {
	ID          uuid.UUID         `json:"id"`
	CafeID      uuid.UUID         `json:"cafe_id"`
	Name        string            `json:"name"`
	State       string            `json:"state"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	ActivatedAt *time.Time        `json:"activated_at,omitempty"`
	Sections    []SectionResponse `json:"sections"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type SectionResponse struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Position      int            `json:"position"`
	AvailableFrom *string        `json:"available_from,omitempty"`
	AvailableTo   *string        `json:"available_to,omitempty"`
	Items         []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Price       PriceResponse        `json:"price"`
	Image       *ImageResponse       `json:"image,omitempty"`
	Position    int                  `json:"position"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// Decimal values are rendered as strings to keep their exact scale.
type PriceResponse struct {
	Amount      string `json:"amount" example:"12.5"`
	Unit        string `json:"unit" example:"per_item"`
	Discount    string `json:"discount" example:"0.1"`
	FinalAmount string `json:"final_amount" example:"11.25"`
}

type ImageResponse struct {
	OriginalPath  string `json:"original_path"`
	ThumbnailPath string `json:"thumbnail_path"`
}

type IngredientResponse struct {
	Name       string `json:"name"`
	Excludable bool   `json:"excludable"`
}

type MenuListItemResponse struct {
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

type MenuListResponse struct {
	Menus      []*MenuListItemResponse `json:"menus"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

type MenuCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromMenuView(v *queries.MenuView) *MenuResponse {
	res := &MenuResponse{
		ID:          v.ID,
		CafeID:      v.CafeID,
		Name:        v.Name,
		State:       v.State,
		PublishedAt: v.PublishedAt,
		ActivatedAt: v.ActivatedAt,
		Sections:    make([]SectionResponse, len(v.Sections)),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	for i, s := range v.Sections {
		res.Sections[i] = fromSectionView(s)
	}
	return res
}

func fromSectionView(s queries.SectionView) SectionResponse {
	res := SectionResponse{
		ID:            s.ID,
		Name:          s.Name,
		Position:      s.Position,
		AvailableFrom: s.AvailableFrom,
		AvailableTo:   s.AvailableTo,
		Items:         make([]ItemResponse, len(s.Items)),
	}
	for i, it := range s.Items {
		res.Items[i] = fromItemView(it)
	}
	return res
}

func fromItemView(it queries.ItemView) ItemResponse {
	res := ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price: PriceResponse{
			Amount:      it.Amount.String(),
			Unit:        it.Unit,
			Discount:    it.Discount.String(),
			FinalAmount: it.FinalAmount.String(),
		},
		Position:    it.Position,
		Ingredients: make([]IngredientResponse, len(it.Ingredients)),
	}
	if it.OriginalPath != nil && it.ThumbnailPath != nil {
		res.Image = &ImageResponse{OriginalPath: *it.OriginalPath, ThumbnailPath: *it.ThumbnailPath}
	}
	for i, ing := range it.Ingredients {
		res.Ingredients[i] = IngredientResponse{Name: ing.Name, Excludable: ing.Excludable}
	}
	return res
}

func FromMenuList(items []*queries.MenuListItem, next *queries.Cursor) *MenuListResponse {
	res := &MenuListResponse{Menus: make([]*MenuListItemResponse, len(items))}
	for i, it := range items {
		res.Menus[i] = &MenuListItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			State:        it.State,
			SectionCount: it.SectionCount,
			ItemCount:    it.ItemCount,
			PublishedAt:  it.PublishedAt,
			ActivatedAt:  it.ActivatedAt,
			CreatedAt:    it.CreatedAt,
			UpdatedAt:    it.UpdatedAt,
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}
