package menu

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventMenuCreated     = "menu.created"
	EventMenuUpdated     = "menu.updated"
	EventMenuPublished   = "menu.published"
	EventMenuActivated   = "menu.activated"
	EventMenuDeactivated = "menu.deactivated"
	EventMenuDeleted     = "menu.deleted"
	EventMenuCloned      = "menu.cloned"
)

// DomainEvent is recorded by the aggregate and dispatched by the caller after the write commits.
type DomainEvent interface {
	EventName() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// MenuEvent carries the fields every menu event shares. MenuName is denormalized for consumers.
type MenuEvent struct {
	MenuID    uuid.UUID `json:"menu_id"`
	CafeID    uuid.UUID `json:"cafe_id"`
	MenuName  string    `json:"menu_name"`
	Timestamp time.Time `json:"timestamp"`
}

func (e MenuEvent) AggregateID() uuid.UUID { return e.MenuID }
func (e MenuEvent) OccurredAt() time.Time  { return e.Timestamp }

type MenuCreatedEvent struct {
	MenuEvent
	SectionCount int `json:"section_count"`
	ItemCount    int `json:"item_count"`
}

func (MenuCreatedEvent) EventName() string { return EventMenuCreated }

type MenuUpdatedEvent struct {
	MenuEvent
	SectionCount int `json:"section_count"`
	ItemCount    int `json:"item_count"`
}

func (MenuUpdatedEvent) EventName() string { return EventMenuUpdated }

type MenuPublishedEvent struct {
	MenuEvent
}

func (MenuPublishedEvent) EventName() string { return EventMenuPublished }

type MenuActivatedEvent struct {
	MenuEvent
}

func (MenuActivatedEvent) EventName() string { return EventMenuActivated }

type MenuDeactivatedEvent struct {
	MenuEvent
}

func (MenuDeactivatedEvent) EventName() string { return EventMenuDeactivated }

type MenuDeletedEvent struct {
	MenuEvent
}

func (MenuDeletedEvent) EventName() string { return EventMenuDeleted }

type MenuClonedEvent struct {
	MenuEvent
	SourceMenuID uuid.UUID `json:"source_menu_id"`
}

func (MenuClonedEvent) EventName() string { return EventMenuCloned }
