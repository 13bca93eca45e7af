package converter

import (
	"encoding/json"
	"fmt"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IngredientJSON struct {
	Name       string `json:"name"`
	Excludable bool   `json:"excludable"`
}

func MenuToRow(m *menu.Menu) pgstore.Menus {
	return pgstore.Menus{
		ID:          m.ID(),
		CafeID:      m.CafeID(),
		Name:        m.Name(),
		State:       m.State().String(),
		PublishedAt: pgconv.TimePtrToPgtype(m.PublishedAt()),
		ActivatedAt: pgconv.TimePtrToPgtype(m.ActivatedAt()),
		CreatedAt:   pgconv.TimeToPgtype(m.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

// ContentToRows flattens the menu's sections and items in position order.
func ContentToRows(m *menu.Menu) ([]pgstore.MenuSections, []pgstore.MenuItems, error) {
	sections := m.Sections()
	sectionRows := make([]pgstore.MenuSections, 0, len(sections))
	itemRows := make([]pgstore.MenuItems, 0, m.ItemCount())

	for _, s := range sections {
		sectionRows = append(sectionRows, pgstore.MenuSections{
			ID:            s.ID(),
			MenuID:        m.ID(),
			Name:          s.Name(),
			Position:      int32(s.Position()),
			AvailableFrom: timeOfDayToPg(s.AvailableFrom()),
			AvailableTo:   timeOfDayToPg(s.AvailableTo()),
			CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
			UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
		})
		for _, it := range s.Items() {
			row, err := itemToRow(s.ID(), it)
			if err != nil {
				return nil, nil, err
			}
			itemRows = append(itemRows, row)
		}
	}
	return sectionRows, itemRows, nil
}

// ContentIDs lists every section id and item id the menu currently holds.
func ContentIDs(m *menu.Menu) (sectionIDs, itemIDs []uuid.UUID) {
	for _, s := range m.Sections() {
		sectionIDs = append(sectionIDs, s.ID())
		for _, it := range s.Items() {
			itemIDs = append(itemIDs, it.ID())
		}
	}
	return sectionIDs, itemIDs
}

func itemToRow(sectionID uuid.UUID, it *menu.MenuItem) (pgstore.MenuItems, error) {
	ingredients := it.Ingredients()
	payload := make([]IngredientJSON, len(ingredients))
	for i, ing := range ingredients {
		payload[i] = IngredientJSON{Name: ing.Name(), Excludable: ing.Excludable()}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return pgstore.MenuItems{}, fmt.Errorf("marshal ingredients of item %s: %w", it.ID(), err)
	}

	row := pgstore.MenuItems{
		ID:            it.ID(),
		SectionID:     sectionID,
		Name:          it.Name(),
		Description:   pgconv.StringPtrToPgtype(it.Description()),
		PriceAmount:   pgconv.DecimalToNumeric(it.Price().Amount()),
		PriceUnit:     it.Price().Unit().String(),
		PriceDiscount: pgconv.DecimalToNumeric(it.Price().Discount()),
		Position:      int32(it.Position()),
		Ingredients:   raw,
		CreatedAt:     pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(it.UpdatedAt()),
	}
	if img := it.Image(); img != nil {
		orig, thumb := img.OriginalPath(), img.ThumbnailPath()
		row.ImageOriginalPath = pgconv.StringPtrToPgtype(&orig)
		row.ImageThumbnailPath = pgconv.StringPtrToPgtype(&thumb)
	}
	return row, nil
}

// MenuFromRows rebuilds the aggregate. Rows must be ordered by position; items
// referencing an unknown section are an error.
func MenuFromRows(m pgstore.Menus, sectionRows []pgstore.MenuSections, itemRows []pgstore.MenuItems) (*menu.Menu, error) {
	state, err := menu.ParseState(m.State)
	if err != nil {
		return nil, err
	}

	itemsBySection := make(map[uuid.UUID][]*menu.MenuItem, len(sectionRows))
	known := make(map[uuid.UUID]struct{}, len(sectionRows))
	for _, s := range sectionRows {
		known[s.ID] = struct{}{}
	}
	for _, row := range itemRows {
		if _, ok := known[row.SectionID]; !ok {
			return nil, fmt.Errorf("item %s references unknown section %s", row.ID, row.SectionID)
		}
		it, err := ItemFromRow(row)
		if err != nil {
			return nil, err
		}
		itemsBySection[row.SectionID] = append(itemsBySection[row.SectionID], it)
	}

	sections := make([]*menu.Section, len(sectionRows))
	for i, s := range sectionRows {
		from, err := TimeOfDayFromPg(s.AvailableFrom)
		if err != nil {
			return nil, err
		}
		to, err := TimeOfDayFromPg(s.AvailableTo)
		if err != nil {
			return nil, err
		}
		sections[i] = menu.ReconstructSection(
			s.ID, s.MenuID, s.Name, int(s.Position), from, to,
			itemsBySection[s.ID],
			pgconv.TimeFromPgtype(s.CreatedAt), pgconv.TimeFromPgtype(s.UpdatedAt),
		)
	}

	return menu.Reconstruct(
		m.ID, m.CafeID, m.Name, state,
		pgconv.TimePtrFromPgtype(m.PublishedAt), pgconv.TimePtrFromPgtype(m.ActivatedAt),
		sections,
		pgconv.TimeFromPgtype(m.CreatedAt), pgconv.TimeFromPgtype(m.UpdatedAt),
	), nil
}

func ItemFromRow(row pgstore.MenuItems) (*menu.MenuItem, error) {
	amount, err := pgconv.DecimalFromNumeric(row.PriceAmount)
	if err != nil {
		return nil, fmt.Errorf("item %s price amount: %w", row.ID, err)
	}
	discount, err := pgconv.DecimalFromNumeric(row.PriceDiscount)
	if err != nil {
		return nil, fmt.Errorf("item %s price discount: %w", row.ID, err)
	}

	ings, err := IngredientsFromJSON(row.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("item %s ingredients: %w", row.ID, err)
	}
	ingredients := make([]menu.Ingredient, len(ings))
	for i, ing := range ings {
		ingredients[i] = menu.ReconstructIngredient(ing.Name, ing.Excludable)
	}

	var image *menu.ImageAsset
	if row.ImageOriginalPath.Valid && row.ImageThumbnailPath.Valid {
		image = menu.ReconstructImageAsset(row.ImageOriginalPath.String, row.ImageThumbnailPath.String)
	}

	return menu.ReconstructMenuItem(
		row.ID, row.SectionID, row.Name,
		pgconv.StringPtrFromPgtype(row.Description),
		menu.ReconstructPrice(amount, menu.Unit(row.PriceUnit), discount),
		image,
		int(row.Position),
		ingredients,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func IngredientsFromJSON(raw []byte) ([]IngredientJSON, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []IngredientJSON
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func timeOfDayToPg(t *menu.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgconv.MinutesToPgTime(nil)
	}
	m := t.Minutes()
	return pgconv.MinutesToPgTime(&m)
}

func TimeOfDayFromPg(pt pgtype.Time) (*menu.TimeOfDay, error) {
	minutes := pgconv.MinutesFromPgTime(pt)
	if minutes == nil {
		return nil, nil
	}
	t, err := menu.TimeOfDayFromMinutes(*minutes)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
