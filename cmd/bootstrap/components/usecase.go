package components

import (
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewRuntimeLuckyMachine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
	),
)
