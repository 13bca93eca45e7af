package request

import (
	"fmt"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/patch"
	"cafe-menu-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuRequest is the full desired state of a menu, used for both create and sync.
// Content rules are enforced by the domain so every violation is reported at once.
type MenuRequest struct {
	Name     string           `json:"name"`
	Sections []SectionRequest `json:"sections"`
}

type SectionRequest struct {
	ID            *uuid.UUID    `json:"id,omitempty"`
	Name          string        `json:"name"`
	AvailableFrom *string       `json:"available_from,omitempty" example:"11:00"`
	AvailableTo   *string       `json:"available_to,omitempty" example:"15:00"`
	Items         []ItemRequest `json:"items"`
}

type ItemRequest struct {
	ID          *uuid.UUID          `json:"id,omitempty"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Price       *PriceRequest       `json:"price"`
	Image       *ImageRequest       `json:"image,omitempty"`
	Ingredients []IngredientRequest `json:"ingredients,omitempty"`
}

type PriceRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	Unit     string          `json:"unit" example:"per_item"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string" example:"0.1"`
}

type ImageRequest struct {
	OriginalPath  *string `json:"original_path"`
	ThumbnailPath *string `json:"thumbnail_path"`
}

type IngredientRequest struct {
	Name       string `json:"name"`
	Excludable bool   `json:"excludable"`
}

type CloneMenuRequest struct {
	Name *string `json:"name,omitempty"`
}

// ToCommand converts the payload. Only malformed availability times fail here.
func (r *MenuRequest) ToCommand() (commands.MenuRequest, error) {
	var c errs.Collector
	sections := make([]menu.SectionInput, len(r.Sections))
	for i, s := range r.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		from := parseTime(s.AvailableFrom, errs.JoinPath(path, "available_from"), &c)
		to := parseTime(s.AvailableTo, errs.JoinPath(path, "available_to"), &c)
		sections[i] = menu.SectionInput{
			ID:            s.ID,
			Name:          s.Name,
			AvailableFrom: from,
			AvailableTo:   to,
			Items:         toItemInputs(s.Items),
		}
	}
	if err := c.Err(); err != nil {
		return commands.MenuRequest{}, err
	}
	return commands.MenuRequest{Name: r.Name, Sections: sections}, nil
}

func (r *CloneMenuRequest) CloneName() string {
	return patch.Coalesce(patch.TrimmedOrNil(r.Name), "")
}

func toItemInputs(items []ItemRequest) []menu.ItemInput {
	out := make([]menu.ItemInput, len(items))
	for i, it := range items {
		in := menu.ItemInput{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
		}
		if it.Price != nil {
			in.Price = &menu.PriceInput{
				Amount:   it.Price.Amount,
				Unit:     menu.Unit(it.Price.Unit),
				Discount: it.Price.Discount,
			}
		}
		if it.Image != nil {
			in.Image = &menu.ImageInput{
				OriginalPath:  it.Image.OriginalPath,
				ThumbnailPath: it.Image.ThumbnailPath,
			}
		}
		if len(it.Ingredients) > 0 {
			in.Ingredients = make([]menu.IngredientInput, len(it.Ingredients))
			for j, ing := range it.Ingredients {
				in.Ingredients[j] = menu.IngredientInput{Name: ing.Name, Excludable: ing.Excludable}
			}
		}
		out[i] = in
	}
	return out
}

func parseTime(s *string, field string, c *errs.Collector) *menu.TimeOfDay {
	v := patch.TrimmedOrNil(s)
	if v == nil {
		return nil
	}
	t, err := menu.ParseTimeOfDay(*v)
	if err != nil {
		c.Add(field, menu.CodeSectionAvailabilityTime, err.Error())
		return nil
	}
	return &t
}
