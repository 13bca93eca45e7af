//go:build unit || e2e

package builder

import (
	"time"

	"cafe-menu-service/internal/domain/menu"
	reqdto "cafe-menu-service/internal/handler/dto/request"
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/infra/repository/converter"
	"cafe-menu-service/internal/pkg/clock"
	"cafe-menu-service/internal/pkg/idgen"
	"cafe-menu-service/internal/usecase/commands"
	"cafe-menu-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type MenuBuilder struct {
	CafeID   uuid.UUID
	Name     string
	Sections []menu.SectionInput
	Clock    *clock.MockClock
	IDs      *idgen.SequenceProvider
}

// NewMenuBuilder starts from a "Lunch" menu with one "Mains" section holding a "Burger".
func NewMenuBuilder() *MenuBuilder {
	return &MenuBuilder{
		CafeID: uuid.MustParse("0a4c4b3e-7f0e-4a51-9d6c-3e1f6a2b9c01"),
		Name:   "Lunch",
		Sections: []menu.SectionInput{
			NewSectionInput("Mains", NewItemInput("Burger", "12.50")),
		},
		Clock: clock.NewMockClock(DefaultNow),
		IDs:   idgen.NewSequenceProvider(),
	}
}

func (b *MenuBuilder) With(mutate func(*MenuBuilder)) *MenuBuilder {
	mutate(b)
	return b
}

// WithRichContent replaces the sections with ones that exercise every optional field.
func (b *MenuBuilder) WithRichContent() *MenuBuilder {
	from, _ := menu.NewTimeOfDay(7, 0)
	to, _ := menu.NewTimeOfDay(11, 30)
	desc := "Stack of three"
	orig, thumb := "menus/pancakes.jpg", "menus/pancakes_thumb.jpg"

	pancakes := NewItemInput("Pancakes", "8.00")
	pancakes.Description = &desc
	pancakes.Price.Discount = decimal.RequireFromString("0.25")
	pancakes.Image = &menu.ImageInput{OriginalPath: &orig, ThumbnailPath: &thumb}
	pancakes.Ingredients = []menu.IngredientInput{
		{Name: "Maple syrup", Excludable: true},
		{Name: "Butter"},
	}

	salad := NewItemInput("Caesar", "3.20")
	salad.Price.Unit = menu.UnitPer100g

	breakfast := NewSectionInput("Breakfast", pancakes, NewItemInput("Toast", "3.00"))
	breakfast.AvailableFrom = &from
	breakfast.AvailableTo = &to

	b.Sections = []menu.SectionInput{breakfast, NewSectionInput("Salads", salad)}
	return b
}

func NewSectionInput(name string, items ...menu.ItemInput) menu.SectionInput {
	return menu.SectionInput{Name: name, Items: items}
}

func NewItemInput(name, amount string) menu.ItemInput {
	return menu.ItemInput{
		Name: name,
		Price: &menu.PriceInput{
			Amount:   decimal.RequireFromString(amount),
			Unit:     menu.UnitPerItem,
			Discount: decimal.Zero,
		},
	}
}

// Build methods
func (b *MenuBuilder) BuildDomain() (*menu.Menu, error) {
	return menu.Create(b.CafeID, b.Name, b.Sections, b.Clock, b.IDs)
}

// MustBuild returns a freshly created menu with its Created event drained.
func (b *MenuBuilder) MustBuild() *menu.Menu {
	m, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	m.ClearDomainEvents()
	return m
}

func (b *MenuBuilder) BuildPublished() *menu.Menu {
	m := b.MustBuild()
	if err := m.Publish(b.Clock); err != nil {
		panic(err)
	}
	m.ClearDomainEvents()
	return m
}

func (b *MenuBuilder) BuildActive() *menu.Menu {
	m := b.BuildPublished()
	if err := m.Activate(b.Clock); err != nil {
		panic(err)
	}
	m.ClearDomainEvents()
	return m
}

func (b *MenuBuilder) BuildDeleted() *menu.Menu {
	m := b.MustBuild()
	if err := m.SoftDelete(b.Clock); err != nil {
		panic(err)
	}
	m.ClearDomainEvents()
	return m
}

func (b *MenuBuilder) BuildCommandRequest() commands.MenuRequest {
	return commands.MenuRequest{Name: b.Name, Sections: b.Sections}
}

func (b *MenuBuilder) BuildRequestDTO() reqdto.MenuRequest {
	req := reqdto.MenuRequest{Name: b.Name, Sections: make([]reqdto.SectionRequest, len(b.Sections))}
	for i, s := range b.Sections {
		sr := reqdto.SectionRequest{ID: s.ID, Name: s.Name, Items: make([]reqdto.ItemRequest, len(s.Items))}
		if s.AvailableFrom != nil {
			v := s.AvailableFrom.String()
			sr.AvailableFrom = &v
		}
		if s.AvailableTo != nil {
			v := s.AvailableTo.String()
			sr.AvailableTo = &v
		}
		for j, it := range s.Items {
			ir := reqdto.ItemRequest{ID: it.ID, Name: it.Name, Description: it.Description}
			if it.Price != nil {
				ir.Price = &reqdto.PriceRequest{
					Amount:   it.Price.Amount,
					Unit:     it.Price.Unit.String(),
					Discount: it.Price.Discount,
				}
			}
			if it.Image != nil {
				ir.Image = &reqdto.ImageRequest{OriginalPath: it.Image.OriginalPath, ThumbnailPath: it.Image.ThumbnailPath}
			}
			for _, ing := range it.Ingredients {
				ir.Ingredients = append(ir.Ingredients, reqdto.IngredientRequest{Name: ing.Name, Excludable: ing.Excludable})
			}
			sr.Items[j] = ir
		}
		req.Sections[i] = sr
	}
	return req
}

// MirrorInputs describes m exactly, with every section and item referenced by id.
func MirrorInputs(m *menu.Menu) []menu.SectionInput {
	sections := m.Sections()
	out := make([]menu.SectionInput, len(sections))
	for i, s := range sections {
		id := s.ID()
		in := menu.SectionInput{ID: &id, Name: s.Name(), AvailableFrom: s.AvailableFrom(), AvailableTo: s.AvailableTo()}
		for _, it := range s.Items() {
			itemID := it.ID()
			p := it.Price()
			item := menu.ItemInput{
				ID:          &itemID,
				Name:        it.Name(),
				Description: it.Description(),
				Price:       &menu.PriceInput{Amount: p.Amount(), Unit: p.Unit(), Discount: p.Discount()},
			}
			if img := it.Image(); img != nil {
				orig, thumb := img.OriginalPath(), img.ThumbnailPath()
				item.Image = &menu.ImageInput{OriginalPath: &orig, ThumbnailPath: &thumb}
			}
			for _, ing := range it.Ingredients() {
				item.Ingredients = append(item.Ingredients, menu.IngredientInput{Name: ing.Name(), Excludable: ing.Excludable()})
			}
			in.Items = append(in.Items, item)
		}
		out[i] = in
	}
	return out
}

func BuildInfra(m *menu.Menu) (pgstore.Menus, []pgstore.MenuSections, []pgstore.MenuItems) {
	sections, items, err := converter.ContentToRows(m)
	if err != nil {
		panic(err)
	}
	return converter.MenuToRow(m), sections, items
}

func BuildView(m *menu.Menu) *queries.MenuView {
	v := &queries.MenuView{
		ID:          m.ID(),
		CafeID:      m.CafeID(),
		Name:        m.Name(),
		State:       m.State().String(),
		PublishedAt: m.PublishedAt(),
		ActivatedAt: m.ActivatedAt(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
	for _, s := range m.Sections() {
		sv := queries.SectionView{
			ID:        s.ID(),
			Name:      s.Name(),
			Position:  s.Position(),
			Items:     []queries.ItemView{},
			CreatedAt: s.CreatedAt(),
			UpdatedAt: s.UpdatedAt(),
		}
		if f := s.AvailableFrom(); f != nil {
			v := f.String()
			sv.AvailableFrom = &v
		}
		if t := s.AvailableTo(); t != nil {
			v := t.String()
			sv.AvailableTo = &v
		}
		for _, it := range s.Items() {
			p := it.Price()
			iv := queries.ItemView{
				ID:          it.ID(),
				Name:        it.Name(),
				Description: it.Description(),
				Amount:      p.Amount(),
				Unit:        p.Unit().String(),
				Discount:    p.Discount(),
				FinalAmount: p.FinalAmount(),
				Position:    it.Position(),
				Ingredients: []queries.IngredientView{},
				CreatedAt:   it.CreatedAt(),
				UpdatedAt:   it.UpdatedAt(),
			}
			for _, ing := range it.Ingredients() {
				iv.Ingredients = append(iv.Ingredients, queries.IngredientView{Name: ing.Name(), Excludable: ing.Excludable()})
			}
			sv.Items = append(sv.Items, iv)
		}
		v.Sections = append(v.Sections, sv)
	}
	if v.Sections == nil {
		v.Sections = []queries.SectionView{}
	}
	return v
}

func BuildListItem(m *menu.Menu) *queries.MenuListItem {
	return &queries.MenuListItem{
		ID:           m.ID(),
		Name:         m.Name(),
		State:        m.State().String(),
		SectionCount: len(m.Sections()),
		ItemCount:    m.ItemCount(),
		PublishedAt:  m.PublishedAt(),
		ActivatedAt:  m.ActivatedAt(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}
