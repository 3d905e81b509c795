package components

import (
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/clock"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewRoomUseCase,
		commands.NewReviewUseCase,
		commands.NewUserUseCase,
		commands.NewContactUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
		queries.NewContactQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
