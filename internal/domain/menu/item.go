package menu

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cafe-menu-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type MenuItem struct {
	id          uuid.UUID
	sectionID   uuid.UUID
	name        string
	description *string
	price       Price
	image       *ImageAsset
	position    int
	ingredients []Ingredient
	createdAt   time.Time
	updatedAt   time.Time
}

// newMenuItem returns a blank item; UpdateDetails fills it in.
func newMenuItem(id, sectionID uuid.UUID, now time.Time) *MenuItem {
	return &MenuItem{
		id:        id,
		sectionID: sectionID,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructMenuItem(
	id, sectionID uuid.UUID,
	name string,
	description *string,
	price Price,
	image *ImageAsset,
	position int,
	ingredients []Ingredient,
	createdAt, updatedAt time.Time,
) *MenuItem {
	return &MenuItem{
		id:          id,
		sectionID:   sectionID,
		name:        name,
		description: description,
		price:       price,
		image:       image,
		position:    position,
		ingredients: ingredients,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateDetails validates every field of in and applies them only when all pass.
// The input ID is ignored; identity is resolved by the caller.
func (i *MenuItem) UpdateDetails(in ItemInput, position int, now time.Time) error {
	var c errs.Collector

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		c.Add("name", CodeItemNameRequired, "item name is required")
	case utf8.RuneCountInString(name) > MaxItemNameLength:
		c.Add("name", CodeItemNameTooLong, "item name exceeds maximum length")
	}

	var description *string
	if d := trimPtr(in.Description); d != "" {
		if utf8.RuneCountInString(d) > MaxDescriptionLength {
			c.Add("description", CodeItemDescriptionTooLong, "item description exceeds maximum length")
		}
		description = &d
	}

	var price Price
	if in.Price == nil {
		c.Add("price", CodeItemPriceRequired, "item price is required")
	} else {
		p, err := NewPrice(in.Price.Amount, in.Price.Unit, in.Price.Discount)
		c.Merge("price", err)
		price = p
	}

	var image *ImageAsset
	if in.Image != nil {
		img, err := NewImageAsset(in.Image.OriginalPath, in.Image.ThumbnailPath)
		c.Merge("image", err)
		image = img
	}

	if len(in.Ingredients) > MaxIngredients {
		c.Add("ingredients", CodeItemTooManyIngredients,
			fmt.Sprintf("an item can have at most %d ingredients", MaxIngredients))
	}
	ingredients := make([]Ingredient, 0, len(in.Ingredients))
	for idx, ing := range in.Ingredients {
		v, err := NewIngredient(ing.Name, ing.Excludable)
		if err != nil {
			c.Merge(fmt.Sprintf("ingredients[%d]", idx), err)
			continue
		}
		ingredients = append(ingredients, v)
	}

	if err := c.Err(); err != nil {
		return err
	}

	i.name = name
	i.description = description
	i.price = price
	i.image = image
	i.position = position
	i.ingredients = ingredients
	i.updatedAt = now
	return nil
}

func (i *MenuItem) clone() *MenuItem {
	cp := *i
	cp.ingredients = append([]Ingredient(nil), i.ingredients...)
	if i.description != nil {
		d := *i.description
		cp.description = &d
	}
	if i.image != nil {
		img := *i.image
		cp.image = &img
	}
	return &cp
}

// copyAs duplicates the item under a new identity and owner.
func (i *MenuItem) copyAs(id, sectionID uuid.UUID, now time.Time) *MenuItem {
	cp := i.clone()
	cp.id = id
	cp.sectionID = sectionID
	cp.createdAt = now
	cp.updatedAt = now
	return cp
}

func (i *MenuItem) ID() uuid.UUID             { return i.id }
func (i *MenuItem) SectionID() uuid.UUID      { return i.sectionID }
func (i *MenuItem) Name() string              { return i.name }
func (i *MenuItem) Description() *string      { return i.description }
func (i *MenuItem) Price() Price              { return i.price }
func (i *MenuItem) Image() *ImageAsset        { return i.image }
func (i *MenuItem) Position() int             { return i.position }
func (i *MenuItem) Ingredients() []Ingredient { return append([]Ingredient(nil), i.ingredients...) }
func (i *MenuItem) CreatedAt() time.Time      { return i.createdAt }
func (i *MenuItem) UpdatedAt() time.Time      { return i.updatedAt }
