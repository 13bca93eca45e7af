//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/infra"
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/infra/repository"
	"cafe-menu-service/tests/common/builder"
	repositorymock "cafe-menu-service/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestMenuRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	m := builder.NewMenuBuilder().WithRichContent().BuildPublished()
	row, sections, items := builder.BuildInfra(m)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockMenuWriteQueries, pgstore.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: aggregate rebuilt from rows",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().GetMenuForUpdate(ctx, tx, m.ID()).Return(row, nil)
				mock.EXPECT().ListSectionsByMenu(ctx, tx, m.ID()).Return(sections, nil)
				mock.EXPECT().ListItemsByMenu(ctx, tx, m.ID()).Return(items, nil)
			},
		},
		{
			name: "error: menu not found",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().GetMenuForUpdate(ctx, tx, m.ID()).Return(pgstore.Menus{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error while listing items",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().GetMenuForUpdate(ctx, tx, m.ID()).Return(row, nil)
				mock.EXPECT().ListSectionsByMenu(ctx, tx, m.ID()).Return(sections, nil)
				mock.EXPECT().ListItemsByMenu(ctx, tx, m.ID()).Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: corrupt rows",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				bad := row
				bad.State = "archived"
				mock.EXPECT().GetMenuForUpdate(ctx, tx, m.ID()).Return(bad, nil)
				mock.EXPECT().ListSectionsByMenu(ctx, tx, m.ID()).Return(sections, nil)
				mock.EXPECT().ListItemsByMenu(ctx, tx, m.ID()).Return(items, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			got, actualError := repo.FindByID(ctx, mockDB, m.ID())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, m.ID(), got.ID())
			assert.Equal(t, menu.StatePublished, got.State())
			require.Len(t, got.Sections(), 2)
			assert.Len(t, got.Sections()[0].Items(), 2)
			assert.Equal(t, m.ItemCount(), got.ItemCount())
		})
	}
}

func TestMenuRepository_FindActiveByCafe(t *testing.T) {
	ctx := context.Background()
	m := builder.NewMenuBuilder().BuildActive()
	row, sections, items := builder.BuildInfra(m)

	t.Run("success: no active menu", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetActiveMenuIDForUpdate(ctx, mockDB, m.CafeID()).Return(uuid.Nil, pgx.ErrNoRows)

		got, err := repository.NewMenuRepository(mockQueries).FindActiveByCafe(ctx, mockDB, m.CafeID())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("success: active menu loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		gomock.InOrder(
			mockQueries.EXPECT().GetActiveMenuIDForUpdate(ctx, mockDB, m.CafeID()).Return(m.ID(), nil),
			mockQueries.EXPECT().GetMenuForUpdate(ctx, mockDB, m.ID()).Return(row, nil),
		)
		mockQueries.EXPECT().ListSectionsByMenu(ctx, mockDB, m.ID()).Return(sections, nil)
		mockQueries.EXPECT().ListItemsByMenu(ctx, mockDB, m.ID()).Return(items, nil)

		got, err := repository.NewMenuRepository(mockQueries).FindActiveByCafe(ctx, mockDB, m.CafeID())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsActive())
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetActiveMenuIDForUpdate(ctx, mockDB, m.CafeID()).Return(uuid.Nil, errors.New("database connection error"))

		_, err := repository.NewMenuRepository(mockQueries).FindActiveByCafe(ctx, mockDB, m.CafeID())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Save Tests
// =============================================================================

func TestMenuRepository_Save(t *testing.T) {
	ctx := context.Background()
	m := builder.NewMenuBuilder().WithRichContent().MustBuild()
	row, sections, items := builder.BuildInfra(m)

	keepSections := []string{sections[0].ID.String(), sections[1].ID.String()}
	keepItems := []string{items[0].ID.String(), items[1].ID.String(), items[2].ID.String()}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockMenuWriteQueries, pgstore.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: deletes run before upserts",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				gomock.InOrder(
					mock.EXPECT().UpsertMenu(ctx, tx, row).Return(nil),
					mock.EXPECT().DeleteItemsNotIn(ctx, tx, m.ID(), keepItems).Return(nil),
					mock.EXPECT().DeleteSectionsNotIn(ctx, tx, m.ID(), keepSections).Return(nil),
					mock.EXPECT().UpsertContent(ctx, tx, sections, items).Return(nil),
				)
			},
		},
		{
			name: "error: second active menu for the cafe",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint", ConstraintName: "menus_one_active_per_cafe"}
				mock.EXPECT().UpsertMenu(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: content upsert fails",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().UpsertMenu(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().DeleteItemsNotIn(ctx, tx, m.ID(), gomock.Any()).Return(nil)
				mock.EXPECT().DeleteSectionsNotIn(ctx, tx, m.ID(), gomock.Any()).Return(nil)
				mock.EXPECT().UpsertContent(ctx, tx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: foreign key violation",
			setupMock: func(mock *repositorymock.MockMenuWriteQueries, tx pgstore.DBTX) {
				fk := &pgconn.PgError{Code: "23503", ConstraintName: "menu_items_section_id_fkey"}
				mock.EXPECT().UpsertMenu(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().DeleteItemsNotIn(ctx, tx, m.ID(), gomock.Any()).Return(nil)
				mock.EXPECT().DeleteSectionsNotIn(ctx, tx, m.ID(), gomock.Any()).Return(nil)
				mock.EXPECT().UpsertContent(ctx, tx, gomock.Any(), gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Save(ctx, mockDB, m)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}

func (m *mockDBTX) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("mockDBTX.SendBatch was called unexpectedly. Use the query mock instead.")
}
