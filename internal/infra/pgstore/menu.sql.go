package pgstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const menuColumns = `id, cafe_id, name, state, published_at, activated_at, created_at, updated_at`

func scanMenu(row pgx.Row) (Menus, error) {
	var m Menus
	err := row.Scan(&m.ID, &m.CafeID, &m.Name, &m.State, &m.PublishedAt, &m.ActivatedAt, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const getMenuForUpdate = `SELECT ` + menuColumns + `
FROM menus
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetMenuForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Menus, error) {
	return scanMenu(db.QueryRow(ctx, getMenuForUpdate, id))
}

const getActiveMenuIDForUpdate = `SELECT id
FROM menus
WHERE cafe_id = $1 AND state = 'active'
FOR UPDATE`

func (q *Queries) GetActiveMenuIDForUpdate(ctx context.Context, db DBTX, cafeID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, getActiveMenuIDForUpdate, cafeID).Scan(&id)
	return id, err
}

const getMenuByCafe = `SELECT ` + menuColumns + `
FROM menus
WHERE cafe_id = $1 AND id = $2 AND state <> 'deleted'`

func (q *Queries) GetMenuByCafe(ctx context.Context, db DBTX, cafeID, id uuid.UUID) (Menus, error) {
	return scanMenu(db.QueryRow(ctx, getMenuByCafe, cafeID, id))
}

const getActiveMenuByCafe = `SELECT ` + menuColumns + `
FROM menus
WHERE cafe_id = $1 AND state = 'active'`

func (q *Queries) GetActiveMenuByCafe(ctx context.Context, db DBTX, cafeID uuid.UUID) (Menus, error) {
	return scanMenu(db.QueryRow(ctx, getActiveMenuByCafe, cafeID))
}

const listSectionsByMenu = `SELECT id, menu_id, name, position, available_from, available_to, created_at, updated_at
FROM menu_sections
WHERE menu_id = $1
ORDER BY position, id`

func (q *Queries) ListSectionsByMenu(ctx context.Context, db DBTX, menuID uuid.UUID) ([]MenuSections, error) {
	rows, err := db.Query(ctx, listSectionsByMenu, menuID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (MenuSections, error) {
		var s MenuSections
		err := row.Scan(&s.ID, &s.MenuID, &s.Name, &s.Position, &s.AvailableFrom, &s.AvailableTo, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	})
}

const listItemsByMenu = `SELECT i.id, i.section_id, i.name, i.description, i.price_amount, i.price_unit, i.price_discount,
       i.image_original_path, i.image_thumbnail_path, i.position, i.ingredients, i.created_at, i.updated_at
FROM menu_items i
JOIN menu_sections s ON s.id = i.section_id
WHERE s.menu_id = $1
ORDER BY s.position, i.position, i.id`

func (q *Queries) ListItemsByMenu(ctx context.Context, db DBTX, menuID uuid.UUID) ([]MenuItems, error) {
	rows, err := db.Query(ctx, listItemsByMenu, menuID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (MenuItems, error) {
		var i MenuItems
		err := row.Scan(&i.ID, &i.SectionID, &i.Name, &i.Description, &i.PriceAmount, &i.PriceUnit, &i.PriceDiscount,
			&i.ImageOriginalPath, &i.ImageThumbnailPath, &i.Position, &i.Ingredients, &i.CreatedAt, &i.UpdatedAt)
		return i, err
	})
}

const upsertMenu = `INSERT INTO menus (` + menuColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  state = EXCLUDED.state,
  published_at = EXCLUDED.published_at,
  activated_at = EXCLUDED.activated_at,
  updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertMenu(ctx context.Context, db DBTX, arg Menus) error {
	_, err := db.Exec(ctx, upsertMenu,
		arg.ID, arg.CafeID, arg.Name, arg.State, arg.PublishedAt, arg.ActivatedAt, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const deleteSectionsNotIn = `DELETE FROM menu_sections
WHERE menu_id = $1 AND NOT (id = ANY($2::uuid[]))`

// DeleteSectionsNotIn removes the menu's sections whose id is not in keep; their items cascade.
func (q *Queries) DeleteSectionsNotIn(ctx context.Context, db DBTX, menuID uuid.UUID, keep []string) error {
	_, err := db.Exec(ctx, deleteSectionsNotIn, menuID, keep)
	return err
}

const deleteItemsNotIn = `DELETE FROM menu_items i
USING menu_sections s
WHERE i.section_id = s.id AND s.menu_id = $1 AND NOT (i.id = ANY($2::uuid[]))`

func (q *Queries) DeleteItemsNotIn(ctx context.Context, db DBTX, menuID uuid.UUID, keep []string) error {
	_, err := db.Exec(ctx, deleteItemsNotIn, menuID, keep)
	return err
}

const upsertSection = `INSERT INTO menu_sections (id, menu_id, name, position, available_from, available_to, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  position = EXCLUDED.position,
  available_from = EXCLUDED.available_from,
  available_to = EXCLUDED.available_to,
  updated_at = EXCLUDED.updated_at`

const upsertItem = `INSERT INTO menu_items (id, section_id, name, description, price_amount, price_unit, price_discount,
  image_original_path, image_thumbnail_path, position, ingredients, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  description = EXCLUDED.description,
  price_amount = EXCLUDED.price_amount,
  price_unit = EXCLUDED.price_unit,
  price_discount = EXCLUDED.price_discount,
  image_original_path = EXCLUDED.image_original_path,
  image_thumbnail_path = EXCLUDED.image_thumbnail_path,
  position = EXCLUDED.position,
  ingredients = EXCLUDED.ingredients,
  updated_at = EXCLUDED.updated_at`

// UpsertContent writes sections then items in one round trip.
func (q *Queries) UpsertContent(ctx context.Context, db DBTX, sections []MenuSections, items []MenuItems) error {
	if len(sections) == 0 && len(items) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, s := range sections {
		b.Queue(upsertSection, s.ID, s.MenuID, s.Name, s.Position, s.AvailableFrom, s.AvailableTo, s.CreatedAt, s.UpdatedAt)
	}
	for _, i := range items {
		b.Queue(upsertItem, i.ID, i.SectionID, i.Name, i.Description, i.PriceAmount, i.PriceUnit, i.PriceDiscount,
			i.ImageOriginalPath, i.ImageThumbnailPath, i.Position, i.Ingredients, i.CreatedAt, i.UpdatedAt)
	}

	results := db.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}

const summarySelect = `SELECT m.id, m.name, m.state,
  (SELECT count(*) FROM menu_sections s WHERE s.menu_id = m.id) AS section_count,
  (SELECT count(*) FROM menu_items i JOIN menu_sections s ON s.id = i.section_id WHERE s.menu_id = m.id) AS item_count,
  m.published_at, m.activated_at, m.created_at, m.updated_at
FROM menus m`

const listMenusByCafeFirstPage = summarySelect + `
WHERE m.cafe_id = $1 AND m.state <> 'deleted'
  AND ($2::text IS NULL OR m.state = $2::text)
ORDER BY m.created_at DESC, m.id DESC
LIMIT $3`

type ListMenusByCafeFirstPageParams struct {
	CafeID uuid.UUID
	State  *string
	Limit  int32
}

func (q *Queries) ListMenusByCafeFirstPage(ctx context.Context, db DBTX, arg ListMenusByCafeFirstPageParams) ([]MenuSummaryRow, error) {
	rows, err := db.Query(ctx, listMenusByCafeFirstPage, arg.CafeID, arg.State, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSummary)
}

const listMenusByCafeKeyset = summarySelect + `
WHERE m.cafe_id = $1 AND m.state <> 'deleted'
  AND ($2::text IS NULL OR m.state = $2::text)
  AND (m.created_at, m.id) < ($3::timestamptz, $4::uuid)
ORDER BY m.created_at DESC, m.id DESC
LIMIT $5`

type ListMenusByCafeKeysetParams struct {
	CafeID        uuid.UUID
	State         *string
	LastCreatedAt time.Time
	LastID        uuid.UUID
	Limit         int32
}

func (q *Queries) ListMenusByCafeKeyset(ctx context.Context, db DBTX, arg ListMenusByCafeKeysetParams) ([]MenuSummaryRow, error) {
	rows, err := db.Query(ctx, listMenusByCafeKeyset, arg.CafeID, arg.State, arg.LastCreatedAt, arg.LastID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSummary)
}

func scanSummary(row pgx.CollectableRow) (MenuSummaryRow, error) {
	var s MenuSummaryRow
	err := row.Scan(&s.ID, &s.Name, &s.State, &s.SectionCount, &s.ItemCount,
		&s.PublishedAt, &s.ActivatedAt, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
