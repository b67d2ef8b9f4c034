package commands

import (
	"context"
	"log/slog"
	"strings"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/reservation"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHoldLapsed        = errs.Mark(errs.New("reservation is no longer held for this buyer"), errs.ErrReservationExpired)
	ErrAlreadySettled    = errs.Mark(errs.New("reservation already settled"), errs.ErrInvalidState)
	ErrPaymentPending    = errs.Mark(errs.New("reservation already has a pending payment"), errs.ErrInvalidState)
	ErrReservationClosed = errs.Mark(errs.New("reservation of a pending payment is not active"), errs.ErrInvalidState)
)

type SubmitPaymentCommand struct {
	ReservationID uuid.UUID
	Amount        payment.Money
	Method        payment.Method
	BuyerRef      string
}

type ConfirmPaymentCommand struct {
	PaymentID uuid.UUID
	Notes     string
}

type RejectPaymentCommand struct {
	PaymentID uuid.UUID
	Reason    string
}

type PaymentCommands interface {
	Submit(ctx context.Context, cmd SubmitPaymentCommand) (*queries.PaymentView, error)
	Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (*queries.PaymentView, error)
	Reject(ctx context.Context, cmd RejectPaymentCommand) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewPaymentCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

func (c *paymentCommandsImpl) Submit(ctx context.Context, cmd SubmitPaymentCommand) (*queries.PaymentView, error) {
	buyer, err := reservation.NewBuyerRef(cmd.BuyerRef)
	if err != nil {
		return nil, err
	}
	if _, err := payment.NewMoney(cmd.Amount.Int64()); err != nil {
		return nil, err
	}
	if _, err := payment.ParseMethod(string(cmd.Method)); err != nil {
		return nil, err
	}
	raffleID, err := c.uow.CommandReads().RaffleOfReservation(ctx, cmd.ReservationID)
	if err != nil {
		return nil, shared.NotFoundAs(err, "reservation")
	}
	now := truncate(c.clock.Now())

	var view *queries.PaymentView
	err = runInRaffle(ctx, c.uow, c.logger, raffleID, now, func(ctx context.Context, rt *raffleTx) error {
		if _, err := rt.expireDue(ctx); err != nil {
			return err
		}
		res, err := rt.Reservations().FindByID(ctx, cmd.ReservationID)
		if err != nil {
			return shared.NotFoundAs(err, "reservation")
		}
		if err := c.checkHold(ctx, rt, res, buyer.String()); err != nil {
			return err
		}

		p, err := payment.New(payment.NewParams{
			RaffleID:      raffleID,
			ReservationID: res.ID(),
			TicketNumbers: res.TicketNumbers(),
			Amount:        cmd.Amount,
			Method:        cmd.Method,
			BuyerRef:      buyer.String(),
		}, now)
		if err != nil {
			return err
		}
		if err := rt.Payments().Create(ctx, p); err != nil {
			return err
		}
		view = queries.NewPaymentView(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("payment submitted",
		"raffle_id", raffleID,
		"payment_id", view.ID,
		"reservation_id", cmd.ReservationID,
		"amount_cents", view.AmountCents,
	)
	return view, nil
}

// checkHold verifies every ticket of res is still reserved under it for buyer
// and that no other payment is waiting on it.
func (c *paymentCommandsImpl) checkHold(ctx context.Context, rt *raffleTx, res *reservation.Reservation, buyer string) error {
	switch res.Status() {
	case reservation.StatusActive:
	case reservation.StatusSettled:
		return errs.Mark(errs.Newf("reservation %s", res.ID()), ErrAlreadySettled)
	default:
		return errs.Mark(errs.Newf("reservation %s is %s", res.ID(), res.Status()), ErrHoldLapsed)
	}
	if res.BuyerRef() != buyer {
		return errs.Mark(errs.Newf("reservation %s is not held for %q", res.ID(), buyer), ErrHoldLapsed)
	}

	tickets, err := rt.loadTickets(ctx, res.TicketNumbers())
	if err != nil {
		return err
	}
	for _, t := range tickets {
		if t.State() != ticket.StateReserved || t.ReservationID() != res.ID() || t.BuyerRef() != buyer {
			return errs.Mark(errs.Newf("ticket %d is no longer held by reservation %s", t.Number(), res.ID()), ErrHoldLapsed)
		}
	}

	existing, err := rt.Payments().ListByReservation(ctx, res.ID())
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.IsPending() {
			return errs.Mark(errs.Newf("payment %s is pending", p.ID()), ErrPaymentPending)
		}
	}
	return nil
}

func (c *paymentCommandsImpl) Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (*queries.PaymentView, error) {
	raffleID, err := c.uow.CommandReads().RaffleOfPayment(ctx, cmd.PaymentID)
	if err != nil {
		return nil, settlementErr(shared.NotFoundAs(err, "payment"))
	}
	now := truncate(c.clock.Now())

	var (
		view    *queries.PaymentView
		changed bool
	)
	err = runInRaffle(ctx, c.uow, c.logger, raffleID, now, func(ctx context.Context, rt *raffleTx) error {
		p, err := rt.Payments().FindByID(ctx, cmd.PaymentID)
		if err != nil {
			return shared.NotFoundAs(err, "payment")
		}
		if changed, err = p.Confirm(cmd.Notes, now); err != nil {
			return err
		}
		if changed {
			if err := c.settle(ctx, rt, p); err != nil {
				return err
			}
		}
		view = queries.NewPaymentView(p)
		return nil
	})
	if err != nil {
		return nil, settlementErr(err)
	}

	if changed {
		c.logger.Info("payment confirmed",
			"raffle_id", raffleID,
			"payment_id", cmd.PaymentID,
			"tickets", len(view.TicketNumbers),
		)
	}
	return view, nil
}

func (c *paymentCommandsImpl) settle(ctx context.Context, rt *raffleTx, p *payment.Payment) error {
	res, err := rt.Reservations().FindByID(ctx, p.ReservationID())
	if err != nil {
		return err
	}
	if !res.IsActive() {
		return errs.Mark(errs.Newf("reservation %s is %s", res.ID(), res.Status()), ErrReservationClosed)
	}
	if err := rt.settle(ctx, p); err != nil {
		return err
	}
	if err := res.MarkSettled(rt.now); err != nil {
		return err
	}
	if err := rt.Reservations().Save(ctx, res); err != nil {
		return err
	}
	return rt.Payments().Save(ctx, p)
}

func (c *paymentCommandsImpl) Reject(ctx context.Context, cmd RejectPaymentCommand) (*queries.PaymentView, error) {
	if strings.TrimSpace(cmd.Reason) == "" {
		return nil, payment.ErrEmptyReason
	}
	raffleID, err := c.uow.CommandReads().RaffleOfPayment(ctx, cmd.PaymentID)
	if err != nil {
		return nil, settlementErr(shared.NotFoundAs(err, "payment"))
	}
	now := truncate(c.clock.Now())

	var (
		view     *queries.PaymentView
		changed  bool
		released int
	)
	err = runInRaffle(ctx, c.uow, c.logger, raffleID, now, func(ctx context.Context, rt *raffleTx) error {
		p, err := rt.Payments().FindByID(ctx, cmd.PaymentID)
		if err != nil {
			return shared.NotFoundAs(err, "payment")
		}
		if changed, err = p.Reject(cmd.Reason, now); err != nil {
			return err
		}
		released = 0
		if changed {
			if released, err = c.releaseFor(ctx, rt, p); err != nil {
				return err
			}
		}
		view = queries.NewPaymentView(p)
		return nil
	})
	if err != nil {
		return nil, settlementErr(err)
	}

	if changed {
		c.logger.Info("payment rejected",
			"raffle_id", raffleID,
			"payment_id", cmd.PaymentID,
			"released_tickets", released,
		)
	}
	return view, nil
}

func (c *paymentCommandsImpl) releaseFor(ctx context.Context, rt *raffleTx, p *payment.Payment) (int, error) {
	res, err := rt.Reservations().FindByID(ctx, p.ReservationID())
	if err != nil {
		return 0, err
	}
	released := 0
	if res.IsActive() {
		if released, err = rt.release(ctx, res); err != nil {
			return 0, err
		}
		if err := res.MarkReleased(rt.now); err != nil {
			return 0, err
		}
		if err := rt.Reservations().Save(ctx, res); err != nil {
			return 0, err
		}
	}
	return released, rt.Payments().Save(ctx, p)
}
