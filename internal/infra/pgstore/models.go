package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Menus struct {
	ID          uuid.UUID
	CafeID      uuid.UUID
	Name        string
	State       string
	PublishedAt pgtype.Timestamptz
	ActivatedAt pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type MenuSections struct {
	ID            uuid.UUID
	MenuID        uuid.UUID
	Name          string
	Position      int32
	AvailableFrom pgtype.Time
	AvailableTo   pgtype.Time
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type MenuItems struct {
	ID                 uuid.UUID
	SectionID          uuid.UUID
	Name               string
	Description        pgtype.Text
	PriceAmount        pgtype.Numeric
	PriceUnit          string
	PriceDiscount      pgtype.Numeric
	ImageOriginalPath  pgtype.Text
	ImageThumbnailPath pgtype.Text
	Position           int32
	// Ingredients is a JSON array of {"name", "excludable"} objects.
	Ingredients []byte
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type MenuSummaryRow struct {
	ID           uuid.UUID
	Name         string
	State        string
	SectionCount int64
	ItemCount    int64
	PublishedAt  pgtype.Timestamptz
	ActivatedAt  pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}
