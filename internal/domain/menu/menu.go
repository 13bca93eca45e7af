package menu

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafe-menu-service/internal/domain/reconcile"
	"cafe-menu-service/internal/pkg/clock"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/idgen"

	"github.com/google/uuid"
)

// Menu is the aggregate root. Sections and items change only through its methods.
//
// Only one menu per cafe may be active. The aggregate guards its own transitions;
// uniqueness across menus is enforced by storage.
type Menu struct {
	id          uuid.UUID
	cafeID      uuid.UUID
	name        string
	state       State
	publishedAt *time.Time
	activatedAt *time.Time
	sections    []*Section
	createdAt   time.Time
	updatedAt   time.Time

	events []DomainEvent
}

func Create(cafeID uuid.UUID, name string, sections []SectionInput, clk clock.Clock, ids idgen.Provider) (*Menu, error) {
	mustServices(clk, ids)
	now := clk.Now()

	var c errs.Collector
	if cafeID == uuid.Nil {
		c.Add("cafe_id", CodeMenuCafeRequired, "cafe id is required")
	}
	trimmed := validateName(name, &c)

	m := &Menu{
		id:        ids.NewID(),
		cafeID:    cafeID,
		name:      trimmed,
		state:     StateNew,
		createdAt: now,
		updatedAt: now,
	}

	synced, details := m.reconcileSections(nil, sections, ids, now)
	c.Append(details...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	m.sections = synced

	m.record(MenuCreatedEvent{
		MenuEvent:    m.eventBase(now),
		SectionCount: len(m.sections),
		ItemCount:    m.ItemCount(),
	})
	return m, nil
}

func Reconstruct(
	id, cafeID uuid.UUID,
	name string,
	state State,
	publishedAt, activatedAt *time.Time,
	sections []*Section,
	createdAt, updatedAt time.Time,
) *Menu {
	return &Menu{
		id:          id,
		cafeID:      cafeID,
		name:        name,
		state:       state,
		publishedAt: publishedAt,
		activatedAt: activatedAt,
		sections:    sections,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Sync replaces the menu name and reconciles sections and their items against
// the inputs. On failure the menu is left exactly as it was.
func (m *Menu) Sync(name string, sections []SectionInput, clk clock.Clock, ids idgen.Provider) error {
	mustServices(clk, ids)

	switch m.state {
	case StateDeleted:
		return errNotFound()
	case StateNew, StatePublished, StateActive:
	default:
		panic(unknownState(m.state))
	}

	now := clk.Now()
	var c errs.Collector
	trimmed := validateName(name, &c)

	working := make([]*Section, len(m.sections))
	for i, s := range m.sections {
		working[i] = s.clone()
	}
	synced, details := m.reconcileSections(working, sections, ids, now)
	c.Append(details...)
	if err := c.Err(); err != nil {
		return err
	}

	m.name = trimmed
	m.sections = synced
	m.updatedAt = now
	m.record(MenuUpdatedEvent{
		MenuEvent:    m.eventBase(now),
		SectionCount: len(m.sections),
		ItemCount:    m.ItemCount(),
	})
	return nil
}

func (m *Menu) Publish(clk clock.Clock) error {
	mustClock(clk)

	switch m.state {
	case StateDeleted:
		return errNotFound()
	case StatePublished:
		return errs.Conflict(CodeMenuAlreadyPublished, "menu is already published")
	case StateActive:
		return errs.Conflict(CodeMenuAlreadyActive, "menu is already active")
	case StateNew:
	default:
		panic(unknownState(m.state))
	}

	switch {
	case len(m.sections) == 0:
		return errs.Validation(errs.NewDetail("sections", CodeMenuNoSections, "menu must have at least one section"))
	case m.ItemCount() == 0:
		return errs.Validation(errs.NewDetail("sections", CodeMenuNoItems, "menu must have at least one item"))
	}

	now := clk.Now()
	m.state = StatePublished
	m.publishedAt = &now
	m.updatedAt = now
	m.record(MenuPublishedEvent{MenuEvent: m.eventBase(now)})
	return nil
}

func (m *Menu) Activate(clk clock.Clock) error {
	mustClock(clk)

	switch m.state {
	case StatePublished:
	case StateActive:
		return errs.Conflict(CodeMenuAlreadyActive, "menu is already active")
	case StateNew, StateDeleted:
		return errs.Conflict(CodeMenuNotPublished, "menu must be published before activation")
	default:
		panic(unknownState(m.state))
	}

	now := clk.Now()
	m.state = StateActive
	m.activatedAt = &now
	m.updatedAt = now
	m.record(MenuActivatedEvent{MenuEvent: m.eventBase(now)})
	return nil
}

func (m *Menu) Deactivate(clk clock.Clock) error {
	mustClock(clk)

	switch m.state {
	case StateActive:
	case StateNew, StatePublished, StateDeleted:
		return errs.Conflict(CodeMenuNotActive, "menu is not active")
	default:
		panic(unknownState(m.state))
	}

	now := clk.Now()
	m.state = StatePublished
	m.updatedAt = now
	m.record(MenuDeactivatedEvent{MenuEvent: m.eventBase(now)})
	return nil
}

// SoftDelete is idempotent: deleting a deleted menu succeeds without recording an event.
func (m *Menu) SoftDelete(clk clock.Clock) error {
	mustClock(clk)

	switch m.state {
	case StateDeleted:
		return nil
	case StateActive:
		return errs.Conflict(CodeMenuActiveNotDeletable, "active menu cannot be deleted")
	case StateNew, StatePublished:
	default:
		panic(unknownState(m.state))
	}

	now := clk.Now()
	m.state = StateDeleted
	m.updatedAt = now
	m.record(MenuDeletedEvent{MenuEvent: m.eventBase(now)})
	return nil
}

// Clone copies the menu under fresh ids into a new menu in the New state.
// An empty name keeps the source name.
func (m *Menu) Clone(name string, clk clock.Clock, ids idgen.Provider) (*Menu, error) {
	mustServices(clk, ids)

	switch m.state {
	case StateDeleted:
		return nil, errNotFound()
	case StateNew, StatePublished, StateActive:
	default:
		panic(unknownState(m.state))
	}

	if strings.TrimSpace(name) == "" {
		name = m.name
	}
	var c errs.Collector
	trimmed := validateName(name, &c)
	if err := c.Err(); err != nil {
		return nil, err
	}

	now := clk.Now()
	cp := &Menu{
		id:        ids.NewID(),
		cafeID:    m.cafeID,
		name:      trimmed,
		state:     StateNew,
		createdAt: now,
		updatedAt: now,
	}
	cp.sections = make([]*Section, len(m.sections))
	for i, s := range m.sections {
		cp.sections[i] = s.copyAs(ids.NewID(), cp.id, ids, now)
	}

	cp.record(MenuClonedEvent{MenuEvent: cp.eventBase(now), SourceMenuID: m.id})
	return cp, nil
}

func (m *Menu) reconcileSections(existing []*Section, inputs []SectionInput, ids idgen.Provider, now time.Time) ([]*Section, []errs.Detail) {
	return reconcile.Sync(existing, inputs, reconcile.Handler[*Section, SectionInput]{
		Label: labelSection,
		Path:  "sections",
		IDs:   ids,
		New: func(id uuid.UUID, now time.Time) *Section {
			return newSection(id, m.id, now)
		},
		Update: func(s *Section, in SectionInput, position int, now time.Time) error {
			var c errs.Collector
			c.Merge("", s.UpdateDetails(in.Name, position, in.AvailableFrom, in.AvailableTo, now))
			c.Merge("", s.SyncItems(in.Items, ids, now))
			return c.Err()
		},
	}, now)
}

func (m *Menu) ItemCount() int {
	n := 0
	for _, s := range m.sections {
		n += s.itemCount()
	}
	return n
}

func (m *Menu) DomainEvents() []DomainEvent {
	return append([]DomainEvent(nil), m.events...)
}

func (m *Menu) ClearDomainEvents() {
	m.events = nil
}

func (m *Menu) record(e DomainEvent) {
	m.events = append(m.events, e)
}

func (m *Menu) eventBase(now time.Time) MenuEvent {
	return MenuEvent{MenuID: m.id, CafeID: m.cafeID, MenuName: m.name, Timestamp: now}
}

func (m *Menu) IsDeleted() bool { return m.state == StateDeleted }
func (m *Menu) IsActive() bool  { return m.state == StateActive }

func (m *Menu) ID() uuid.UUID           { return m.id }
func (m *Menu) CafeID() uuid.UUID       { return m.cafeID }
func (m *Menu) Name() string            { return m.name }
func (m *Menu) State() State            { return m.state }
func (m *Menu) PublishedAt() *time.Time { return m.publishedAt }
func (m *Menu) ActivatedAt() *time.Time { return m.activatedAt }
func (m *Menu) Sections() []*Section    { return append([]*Section(nil), m.sections...) }
func (m *Menu) CreatedAt() time.Time    { return m.createdAt }
func (m *Menu) UpdatedAt() time.Time    { return m.updatedAt }

func validateName(name string, c *errs.Collector) string {
	t := strings.TrimSpace(name)
	switch {
	case t == "":
		c.Add("name", CodeMenuNameRequired, "menu name is required")
	case utf8.RuneCountInString(t) > MaxMenuNameLength:
		c.Add("name", CodeMenuNameTooLong, "menu name exceeds maximum length")
	}
	return t
}

// errNotFound reports a deleted menu as a NotFound-coded validation failure.
func errNotFound() error {
	return errs.Validation(errs.NewDetail("", CodeMenuNotFound, "menu not found"))
}

func mustClock(clk clock.Clock) {
	if clk == nil {
		panic("menu: nil clock")
	}
}

func mustServices(clk clock.Clock, ids idgen.Provider) {
	mustClock(clk)
	if ids == nil {
		panic("menu: nil id provider")
	}
}
