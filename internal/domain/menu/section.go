package menu

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafe-menu-service/internal/domain/reconcile"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/idgen"

	"github.com/google/uuid"
)

type Section struct {
	id            uuid.UUID
	menuID        uuid.UUID
	name          string
	position      int
	availableFrom *TimeOfDay
	availableTo   *TimeOfDay
	items         []*MenuItem
	createdAt     time.Time
	updatedAt     time.Time
}

func newSection(id, menuID uuid.UUID, now time.Time) *Section {
	return &Section{
		id:        id,
		menuID:    menuID,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructSection(
	id, menuID uuid.UUID,
	name string,
	position int,
	availableFrom, availableTo *TimeOfDay,
	items []*MenuItem,
	createdAt, updatedAt time.Time,
) *Section {
	return &Section{
		id:            id,
		menuID:        menuID,
		name:          name,
		position:      position,
		availableFrom: availableFrom,
		availableTo:   availableTo,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *Section) UpdateDetails(name string, position int, availableFrom, availableTo *TimeOfDay, now time.Time) error {
	var c errs.Collector

	t := strings.TrimSpace(name)
	switch {
	case t == "":
		c.Add("name", CodeSectionNameRequired, "section name is required")
	case utf8.RuneCountInString(t) > MaxSectionNameLength:
		c.Add("name", CodeSectionNameTooLong, "section name exceeds maximum length")
	}

	if availableFrom != nil && availableTo != nil && !availableFrom.Before(*availableTo) {
		c.Add("available_from", CodeSectionAvailabilityWindow, "available_from must be earlier than available_to")
	}

	if err := c.Err(); err != nil {
		return err
	}

	s.name = t
	s.position = position
	s.availableFrom = availableFrom
	s.availableTo = availableTo
	s.updatedAt = now
	return nil
}

// SyncItems reconciles the section's items against inputs. Item names must be
// unique within the section only. Items are replaced only when every input is valid.
func (s *Section) SyncItems(inputs []ItemInput, ids idgen.Provider, now time.Time) error {
	synced, details := reconcile.Sync(s.items, inputs, reconcile.Handler[*MenuItem, ItemInput]{
		Label: labelItem,
		Path:  "items",
		IDs:   ids,
		New: func(id uuid.UUID, now time.Time) *MenuItem {
			return newMenuItem(id, s.id, now)
		},
		Update: func(item *MenuItem, in ItemInput, position int, now time.Time) error {
			return item.UpdateDetails(in, position, now)
		},
	}, now)
	if len(details) > 0 {
		return errs.Validation(details...)
	}
	s.items = synced
	return nil
}

func (s *Section) itemCount() int {
	return len(s.items)
}

func (s *Section) clone() *Section {
	cp := *s
	cp.items = make([]*MenuItem, len(s.items))
	for i, it := range s.items {
		cp.items[i] = it.clone()
	}
	return &cp
}

func (s *Section) copyAs(id, menuID uuid.UUID, ids idgen.Provider, now time.Time) *Section {
	cp := *s
	cp.id = id
	cp.menuID = menuID
	cp.createdAt = now
	cp.updatedAt = now
	cp.items = make([]*MenuItem, len(s.items))
	for i, it := range s.items {
		cp.items[i] = it.copyAs(ids.NewID(), id, now)
	}
	return &cp
}

func (s *Section) ID() uuid.UUID             { return s.id }
func (s *Section) MenuID() uuid.UUID         { return s.menuID }
func (s *Section) Name() string              { return s.name }
func (s *Section) Position() int             { return s.position }
func (s *Section) AvailableFrom() *TimeOfDay { return s.availableFrom }
func (s *Section) AvailableTo() *TimeOfDay   { return s.availableTo }
func (s *Section) Items() []*MenuItem        { return append([]*MenuItem(nil), s.items...) }
func (s *Section) CreatedAt() time.Time      { return s.createdAt }
func (s *Section) UpdatedAt() time.Time      { return s.updatedAt }
