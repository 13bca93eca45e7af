package components

import (
	"cafe-menu-service/internal/pkg/clock"
	"cafe-menu-service/internal/pkg/idgen"
	"cafe-menu-service/internal/usecase/commands"
	"cafe-menu-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewUUIDv7Provider,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMenuCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
	),
)
