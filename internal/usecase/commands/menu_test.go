//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/infra/db"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/usecase/commands"
	"cafe-menu-service/internal/usecase/shared"
	"cafe-menu-service/tests/common/builder"
	commandsmock "cafe-menu-service/tests/mock/commands"
	sharedmock "cafe-menu-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *sharedmock.MockMenuRepository
	publisher *commandsmock.MockEventPublisher
	b         *builder.MenuBuilder
	uc        commands.MenuCommands

	saved     []*menu.Menu
	published []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	f := &fixture{
		repo:      sharedmock.NewMockMenuRepository(ctrl),
		publisher: commandsmock.NewMockEventPublisher(ctrl),
		b:         builder.NewMenuBuilder(),
	}

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Menus().Return(f.repo).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	f.uc = commands.NewMenuCommands(uow, f.publisher, f.b.Clock, f.b.IDs)
	return f
}

func (f *fixture) expectSave() {
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, m *menu.Menu) error {
			f.saved = append(f.saved, m)
			return nil
		})
}

func (f *fixture) expectPublish(err error) {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events []menu.DomainEvent) error {
			for _, e := range events {
				f.published = append(f.published, e.EventName())
			}
			return err
		})
}

func (f *fixture) expectFind(m *menu.Menu) {
	f.repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
}

func uniqueViolation(constraint string) error {
	return infra.WrapRepoErr("failed to upsert menu", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

func assertProblem(t *testing.T, err error, kind errs.Kind, code string) {
	t.Helper()
	require.Error(t, err)
	p, ok := errs.AsProblem(err)
	require.True(t, ok, "expected a problem, got %T (%v)", err, err)
	assert.Equal(t, kind, p.Kind)
	assert.True(t, p.HasCode(code), "expected code %s in %v", code, p.Details)
}

// =============================================================================
// Create Tests
// =============================================================================

func TestMenuCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: menu stored and created event published", func(t *testing.T) {
		f := newFixture(t)
		f.expectSave()
		f.expectPublish(nil)

		res, err := f.uc.Create(ctx, f.b.CafeID, f.b.BuildCommandRequest())

		require.NoError(t, err)
		require.Len(t, f.saved, 1)
		assert.Equal(t, f.saved[0].ID(), res.MenuID)
		assert.Equal(t, f.b.CafeID, f.saved[0].CafeID())
		assert.Equal(t, menu.StateNew, f.saved[0].State())
		assert.Equal(t, []string{menu.EventMenuCreated}, f.published)
	})

	t.Run("error: invalid request never opens a transaction", func(t *testing.T) {
		f := newFixture(t)
		req := f.b.BuildCommandRequest()
		req.Name = " "

		res, err := f.uc.Create(ctx, f.b.CafeID, req)

		assert.Nil(t, res)
		assertProblem(t, err, errs.KindValidation, menu.CodeMenuNameRequired)
	})

	t.Run("error: database failure is returned as is", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to upsert menu", errors.New("connection reset")))

		_, err := f.uc.Create(ctx, f.b.CafeID, f.b.BuildCommandRequest())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, errs.Kind(""), errs.KindOf(err))
	})

	t.Run("error: primary key collision is not an active menu conflict", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(uniqueViolation("menus_pkey"))

		res, err := f.uc.Create(ctx, f.b.CafeID, f.b.BuildCommandRequest())

		assert.Nil(t, res)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "menus_pkey", infra.ConstraintOf(err))
		_, isProblem := errs.AsProblem(err)
		assert.False(t, isProblem)
		assert.Empty(t, f.published)
	})

	t.Run("success: publish failure does not fail the command", func(t *testing.T) {
		f := newFixture(t)
		f.expectSave()
		f.expectPublish(errors.New("broker down"))

		res, err := f.uc.Create(ctx, f.b.CafeID, f.b.BuildCommandRequest())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.MenuID)
	})
}

// =============================================================================
// Sync Tests
// =============================================================================

func TestMenuCommands_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("success: unchanged ids are kept and new items get fresh ones", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.MustBuild()
		f.expectFind(m)
		f.expectSave()
		f.expectPublish(nil)

		sections := builder.MirrorInputs(m)
		sections[0].Items = append(sections[0].Items, builder.NewItemInput("Fries", "4.00"))
		err := f.uc.Sync(ctx, f.b.CafeID, m.ID(), commands.MenuRequest{Name: "Lunch v2", Sections: sections})

		require.NoError(t, err)
		require.Len(t, f.saved, 1)
		assert.Equal(t, "Lunch v2", f.saved[0].Name())
		items := f.saved[0].Sections()[0].Items()
		require.Len(t, items, 2)
		assert.Equal(t, *sections[0].Items[0].ID, items[0].ID())
		assert.Equal(t, 2, items[1].Position())
		assert.Equal(t, []string{menu.EventMenuUpdated}, f.published)
	})

	t.Run("error: validation failure leaves nothing stored", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.MustBuild()
		f.expectFind(m)

		sections := builder.MirrorInputs(m)
		sections[0].Name = ""
		err := f.uc.Sync(ctx, f.b.CafeID, m.ID(), commands.MenuRequest{Name: "Lunch", Sections: sections})

		assertProblem(t, err, errs.KindValidation, menu.CodeSectionNameRequired)
		assert.Empty(t, f.saved)
		assert.Equal(t, "Mains", m.Sections()[0].Name())
	})

	t.Run("error: unknown menu", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, infra.NotFound("menu"))

		err := f.uc.Sync(ctx, f.b.CafeID, id, f.b.BuildCommandRequest())

		assertProblem(t, err, errs.KindNotFound, menu.CodeMenuNotFound)
	})

	t.Run("error: menu owned by another cafe", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.MustBuild()
		f.expectFind(m)

		err := f.uc.Sync(ctx, uuid.New(), m.ID(), f.b.BuildCommandRequest())

		assertProblem(t, err, errs.KindNotFound, menu.CodeMenuNotFound)
	})

	t.Run("error: deleted menu reads as not found", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.BuildDeleted()
		f.expectFind(m)

		err := f.uc.Sync(ctx, f.b.CafeID, m.ID(), f.b.BuildCommandRequest())

		assertProblem(t, err, errs.KindNotFound, menu.CodeMenuNotFound)
	})
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestMenuCommands_Publish(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		build      func(*builder.MenuBuilder) *menu.Menu
		expectKind errs.Kind
		expectCode string
	}{
		{
			name:  "success: new menu published",
			build: (*builder.MenuBuilder).MustBuild,
		},
		{
			name:       "error: already published",
			build:      (*builder.MenuBuilder).BuildPublished,
			expectKind: errs.KindConflict,
			expectCode: menu.CodeMenuAlreadyPublished,
		},
		{
			name: "error: menu without items",
			build: func(b *builder.MenuBuilder) *menu.Menu {
				return b.With(func(b *builder.MenuBuilder) {
					b.Sections = []menu.SectionInput{builder.NewSectionInput("Drinks")}
				}).MustBuild()
			},
			expectKind: errs.KindValidation,
			expectCode: menu.CodeMenuNoItems,
		},
		{
			name:       "error: deleted menu",
			build:      (*builder.MenuBuilder).BuildDeleted,
			expectKind: errs.KindNotFound,
			expectCode: menu.CodeMenuNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			m := tc.build(f.b)
			f.expectFind(m)
			if tc.expectKind == "" {
				f.expectSave()
				f.expectPublish(nil)
			}

			err := f.uc.Publish(ctx, f.b.CafeID, m.ID())

			if tc.expectKind != "" {
				assertProblem(t, err, tc.expectKind, tc.expectCode)
				assert.Empty(t, f.saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, menu.StatePublished, f.saved[0].State())
			assert.Equal(t, []string{menu.EventMenuPublished}, f.published)
		})
	}
}

func TestMenuCommands_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: no menu active yet", func(t *testing.T) {
		f := newFixture(t)
		target := f.b.BuildPublished()
		f.expectFind(target)
		f.repo.EXPECT().FindActiveByCafe(gomock.Any(), gomock.Any(), f.b.CafeID).Return(nil, nil)
		f.expectSave()
		f.expectPublish(nil)

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		require.NoError(t, err)
		require.Len(t, f.saved, 1)
		assert.Equal(t, menu.StateActive, target.State())
		assert.Equal(t, []string{menu.EventMenuActivated}, f.published)
	})

	t.Run("success: previous active menu is deactivated first", func(t *testing.T) {
		f := newFixture(t)
		current := f.b.BuildActive()
		f.b.Clock.Add(time.Hour)
		target := f.b.BuildPublished()
		f.expectFind(target)
		f.repo.EXPECT().FindActiveByCafe(gomock.Any(), gomock.Any(), f.b.CafeID).Return(current, nil)
		gomock.InOrder(
			f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), current).Return(nil),
			f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target).Return(nil),
		)
		f.expectPublish(nil)

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		require.NoError(t, err)
		assert.Equal(t, menu.StatePublished, current.State())
		assert.Equal(t, menu.StateActive, target.State())
		assert.Equal(t, []string{menu.EventMenuDeactivated, menu.EventMenuActivated}, f.published)
	})

	t.Run("error: menu not published", func(t *testing.T) {
		f := newFixture(t)
		target := f.b.MustBuild()
		f.expectFind(target)

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		assertProblem(t, err, errs.KindConflict, menu.CodeMenuNotPublished)
	})

	t.Run("error: already active", func(t *testing.T) {
		f := newFixture(t)
		target := f.b.BuildActive()
		f.expectFind(target)

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		assertProblem(t, err, errs.KindConflict, menu.CodeMenuAlreadyActive)
	})

	t.Run("error: deleted menu", func(t *testing.T) {
		f := newFixture(t)
		target := f.b.BuildDeleted()
		f.expectFind(target)

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		assertProblem(t, err, errs.KindNotFound, menu.CodeMenuNotFound)
	})

	t.Run("error: concurrent activation hits the unique index", func(t *testing.T) {
		f := newFixture(t)
		target := f.b.BuildPublished()
		f.expectFind(target)
		f.repo.EXPECT().FindActiveByCafe(gomock.Any(), gomock.Any(), f.b.CafeID).Return(nil, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target).Return(uniqueViolation(infra.ConstraintActiveMenuPerCafe))

		err := f.uc.Activate(ctx, f.b.CafeID, target.ID())

		assertProblem(t, err, errs.KindConflict, menu.CodeMenuActiveConflict)
		assert.Empty(t, f.published)
	})
}

func TestMenuCommands_Deactivate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		build      func(*builder.MenuBuilder) *menu.Menu
		expectKind errs.Kind
		expectCode string
	}{
		{
			name:  "success: active menu deactivated",
			build: (*builder.MenuBuilder).BuildActive,
		},
		{
			name:       "error: menu not active",
			build:      (*builder.MenuBuilder).BuildPublished,
			expectKind: errs.KindConflict,
			expectCode: menu.CodeMenuNotActive,
		},
		{
			name:       "error: deleted menu",
			build:      (*builder.MenuBuilder).BuildDeleted,
			expectKind: errs.KindNotFound,
			expectCode: menu.CodeMenuNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			m := tc.build(f.b)
			f.expectFind(m)
			if tc.expectKind == "" {
				f.expectSave()
				f.expectPublish(nil)
			}

			err := f.uc.Deactivate(ctx, f.b.CafeID, m.ID())

			if tc.expectKind != "" {
				assertProblem(t, err, tc.expectKind, tc.expectCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, menu.StatePublished, f.saved[0].State())
			assert.Equal(t, []string{menu.EventMenuDeactivated}, f.published)
		})
	}
}

func TestMenuCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: published menu soft deleted", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.BuildPublished()
		f.expectFind(m)
		f.expectSave()
		f.expectPublish(nil)

		require.NoError(t, f.uc.Delete(ctx, f.b.CafeID, m.ID()))
		assert.Equal(t, menu.StateDeleted, f.saved[0].State())
		assert.Equal(t, []string{menu.EventMenuDeleted}, f.published)
	})

	t.Run("success: deleting twice stores nothing", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.BuildDeleted()
		f.expectFind(m)

		require.NoError(t, f.uc.Delete(ctx, f.b.CafeID, m.ID()))
		assert.Empty(t, f.saved)
		assert.Empty(t, f.published)
	})

	t.Run("error: active menu", func(t *testing.T) {
		f := newFixture(t)
		m := f.b.BuildActive()
		f.expectFind(m)

		err := f.uc.Delete(ctx, f.b.CafeID, m.ID())

		assertProblem(t, err, errs.KindConflict, menu.CodeMenuActiveNotDeletable)
	})
}

// =============================================================================
// Clone Tests
// =============================================================================

func TestMenuCommands_Clone(t *testing.T) {
	ctx := context.Background()

	t.Run("success: copy stored under fresh ids", func(t *testing.T) {
		f := newFixture(t)
		source := f.b.BuildActive()
		f.expectFind(source)
		f.expectSave()
		f.expectPublish(nil)

		res, err := f.uc.Clone(ctx, f.b.CafeID, source.ID(), "Lunch (copy)")

		require.NoError(t, err)
		require.Len(t, f.saved, 1)
		cp := f.saved[0]
		assert.Equal(t, cp.ID(), res.MenuID)
		assert.NotEqual(t, source.ID(), cp.ID())
		assert.Equal(t, "Lunch (copy)", cp.Name())
		assert.Equal(t, menu.StateNew, cp.State())
		assert.NotEqual(t, source.Sections()[0].ID(), cp.Sections()[0].ID())
		assert.Equal(t, menu.StateActive, source.State())
		assert.Equal(t, []string{menu.EventMenuCloned}, f.published)
	})

	t.Run("error: deleted source", func(t *testing.T) {
		f := newFixture(t)
		source := f.b.BuildDeleted()
		f.expectFind(source)

		res, err := f.uc.Clone(ctx, f.b.CafeID, source.ID(), "")

		assert.Nil(t, res)
		assertProblem(t, err, errs.KindNotFound, menu.CodeMenuNotFound)
	})
}
