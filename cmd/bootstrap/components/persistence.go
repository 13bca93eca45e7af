package components

import (
	"cafe-menu-service/internal/infra/pgstore"
	"cafe-menu-service/internal/infra/readstore"
	"cafe-menu-service/internal/infra/uow"
	"cafe-menu-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuViewQueries)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
	),
)

// The menu repository is built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgstore.Queries {
	return pgstore.New()
}

func NewDBTX(pool *pgxpool.Pool) pgstore.DBTX {
	return pool
}
