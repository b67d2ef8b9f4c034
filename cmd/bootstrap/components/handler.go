package components

import (
	"raffle-engine/internal/handler"
	"raffle-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRaffleHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		func(r *api.RaffleHandler, res *api.ReservationHandler, p *api.PaymentHandler) handler.Handlers {
			return handler.Handlers{Raffles: r, Reservations: res, Payments: p}
		},
	),
	fx.Invoke(handler.NewRouter),
)
