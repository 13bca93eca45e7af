package menu

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SectionInput describes the desired state of one section. A nil ID creates a new section.
type SectionInput struct {
	ID            *uuid.UUID
	Name          string
	AvailableFrom *TimeOfDay
	AvailableTo   *TimeOfDay
	Items         []ItemInput
}

func (s SectionInput) Ref() *uuid.UUID { return s.ID }
func (s SectionInput) Key() string     { return s.Name }

// ItemInput describes the desired state of one item. A nil Price is rejected; a nil Image means no image.
type ItemInput struct {
	ID          *uuid.UUID
	Name        string
	Description *string
	Price       *PriceInput
	Image       *ImageInput
	Ingredients []IngredientInput
}

func (i ItemInput) Ref() *uuid.UUID { return i.ID }
func (i ItemInput) Key() string     { return i.Name }

type PriceInput struct {
	Amount   decimal.Decimal
	Unit     Unit
	Discount decimal.Decimal
}

type ImageInput struct {
	OriginalPath  *string
	ThumbnailPath *string
}

type IngredientInput struct {
	Name       string
	Excludable bool
}
