package commands

import (
	"context"
	"log/slog"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/pkg/clock"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/idgen"
	"cafe-menu-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuRequest struct {
	Name     string
	Sections []menu.SectionInput
}

type MenuResult struct {
	MenuID uuid.UUID
}

// MenuCommands scopes every operation to the caller's cafe. A menu owned by
// another cafe is reported as not found.
type MenuCommands interface {
	Create(ctx context.Context, cafeID uuid.UUID, req MenuRequest) (*MenuResult, error)
	Sync(ctx context.Context, cafeID, menuID uuid.UUID, req MenuRequest) error
	Publish(ctx context.Context, cafeID, menuID uuid.UUID) error
	// Activate deactivates the cafe's current active menu in the same transaction.
	Activate(ctx context.Context, cafeID, menuID uuid.UUID) error
	Deactivate(ctx context.Context, cafeID, menuID uuid.UUID) error
	Delete(ctx context.Context, cafeID, menuID uuid.UUID) error
	Clone(ctx context.Context, cafeID, menuID uuid.UUID, name string) (*MenuResult, error)
}

type menuCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	ids       idgen.Provider
}

func NewMenuCommands(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, ids idgen.Provider) MenuCommands {
	return &menuCommandsImpl{uow: uow, publisher: publisher, clock: clk, ids: ids}
}

func (uc *menuCommandsImpl) Create(ctx context.Context, cafeID uuid.UUID, req MenuRequest) (*MenuResult, error) {
	m, err := menu.Create(cafeID, req.Name, req.Sections, uc.clock, uc.ids)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return saveMenu(ctx, tx, m)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, m.DomainEvents())
	return &MenuResult{MenuID: m.ID()}, nil
}

func (uc *menuCommandsImpl) Sync(ctx context.Context, cafeID, menuID uuid.UUID, req MenuRequest) error {
	return uc.mutate(ctx, cafeID, menuID, func(m *menu.Menu) error {
		return m.Sync(req.Name, req.Sections, uc.clock, uc.ids)
	})
}

func (uc *menuCommandsImpl) Publish(ctx context.Context, cafeID, menuID uuid.UUID) error {
	return uc.mutate(ctx, cafeID, menuID, func(m *menu.Menu) error {
		return m.Publish(uc.clock)
	})
}

func (uc *menuCommandsImpl) Deactivate(ctx context.Context, cafeID, menuID uuid.UUID) error {
	return uc.mutate(ctx, cafeID, menuID, func(m *menu.Menu) error {
		if m.IsDeleted() {
			return menuNotFound()
		}
		return m.Deactivate(uc.clock)
	})
}

func (uc *menuCommandsImpl) Delete(ctx context.Context, cafeID, menuID uuid.UUID) error {
	return uc.mutate(ctx, cafeID, menuID, func(m *menu.Menu) error {
		return m.SoftDelete(uc.clock)
	})
}

func (uc *menuCommandsImpl) Activate(ctx context.Context, cafeID, menuID uuid.UUID) error {
	var events []menu.DomainEvent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events = nil

		target, err := loadMenu(ctx, tx, cafeID, menuID)
		if err != nil {
			return err
		}
		if target.IsDeleted() {
			return menuNotFound()
		}
		if err := target.Activate(uc.clock); err != nil {
			return translate(err)
		}

		current, err := tx.Menus().FindActiveByCafe(ctx, tx.DB(), cafeID)
		if err != nil {
			return err
		}
		// The previous menu is stored first so the active-per-cafe index never sees two rows.
		if current != nil && current.ID() != target.ID() {
			if err := current.Deactivate(uc.clock); err != nil {
				return translate(err)
			}
			if err := saveMenu(ctx, tx, current); err != nil {
				return err
			}
			events = append(events, current.DomainEvents()...)
		}

		if err := saveMenu(ctx, tx, target); err != nil {
			return err
		}
		events = append(events, target.DomainEvents()...)
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, events)
	return nil
}

func (uc *menuCommandsImpl) Clone(ctx context.Context, cafeID, menuID uuid.UUID, name string) (*MenuResult, error) {
	var cloned *menu.Menu
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		source, err := loadMenu(ctx, tx, cafeID, menuID)
		if err != nil {
			return err
		}
		cp, err := source.Clone(name, uc.clock, uc.ids)
		if err != nil {
			return translate(err)
		}
		if err := saveMenu(ctx, tx, cp); err != nil {
			return err
		}
		cloned = cp
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, cloned.DomainEvents())
	return &MenuResult{MenuID: cloned.ID()}, nil
}

// mutate loads the menu, applies op and stores the result when op recorded a change.
func (uc *menuCommandsImpl) mutate(ctx context.Context, cafeID, menuID uuid.UUID, op func(m *menu.Menu) error) error {
	var events []menu.DomainEvent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events = nil

		m, err := loadMenu(ctx, tx, cafeID, menuID)
		if err != nil {
			return err
		}
		if err := op(m); err != nil {
			return translate(err)
		}
		if len(m.DomainEvents()) == 0 {
			return nil
		}
		if err := saveMenu(ctx, tx, m); err != nil {
			return err
		}
		events = m.DomainEvents()
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, events)
	return nil
}

// publish is best effort: the state change is already committed.
func (uc *menuCommandsImpl) publish(ctx context.Context, events []menu.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := uc.publisher.Publish(ctx, events); err != nil {
		slog.Warn("failed to publish menu events",
			"aggregate_id", events[0].AggregateID().String(),
			"count", len(events),
			"error", err.Error())
	}
}

func loadMenu(ctx context.Context, tx shared.Tx, cafeID, menuID uuid.UUID) (*menu.Menu, error) {
	m, err := tx.Menus().FindByID(ctx, tx.DB(), menuID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, menuNotFound()
		}
		return nil, err
	}
	if m.CafeID() != cafeID {
		return nil, menuNotFound()
	}
	return m, nil
}

func saveMenu(ctx context.Context, tx shared.Tx, m *menu.Menu) error {
	err := tx.Menus().Save(ctx, tx.DB(), m)
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == infra.ConstraintActiveMenuPerCafe {
		return errs.Conflict(menu.CodeMenuActiveConflict, errs.ErrActiveMenuConflict.Error())
	}
	return err
}

// translate turns the aggregate's "menu.not_found" validation into a NotFound problem.
func translate(err error) error {
	if p, ok := errs.AsProblem(err); ok && p.Kind == errs.KindValidation && p.HasCode(menu.CodeMenuNotFound) {
		return menuNotFound()
	}
	return err
}

func menuNotFound() error {
	return errs.NotFound(menu.CodeMenuNotFound, errs.ErrMenuNotFound.Error())
}
