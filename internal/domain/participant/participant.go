// Package participant builds the per-buyer view of a raffle from ticket and
// payment state. Nothing here is persisted.
package participant

import (
	"cmp"
	"slices"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/ticket"
)

type Participant struct {
	BuyerRef        string
	TicketNumbers   []int
	PaidTickets     int
	ReservedTickets int
	TotalPaid       payment.Money
	FirstPurchaseAt time.Time
	LastPurchaseAt  time.Time
}

func (p Participant) TotalTickets() int {
	return p.PaidTickets + p.ReservedTickets
}

// Build groups held tickets by buyer and sums the buyer's confirmed payments.
// Payments of buyers who no longer hold any ticket are ignored. The result is
// ordered by first purchase, then buyer reference.
func Build(tickets []*ticket.Ticket, payments []*payment.Payment) []Participant {
	byBuyer := make(map[string]*Participant)
	for _, t := range tickets {
		if !t.IsHeld() {
			continue
		}
		p, ok := byBuyer[t.BuyerRef()]
		if !ok {
			p = &Participant{BuyerRef: t.BuyerRef()}
			byBuyer[t.BuyerRef()] = p
		}
		p.TicketNumbers = append(p.TicketNumbers, t.Number())
		switch t.State() {
		case ticket.StateSold:
			p.PaidTickets++
		case ticket.StateReserved:
			p.ReservedTickets++
		}
		touch(p, t.ReservedAt())
		touch(p, t.PaidAt())
	}

	for _, pay := range payments {
		if pay.Status() != payment.StatusConfirmed {
			continue
		}
		if p, ok := byBuyer[pay.BuyerRef()]; ok {
			p.TotalPaid += pay.Amount()
		}
	}

	out := make([]Participant, 0, len(byBuyer))
	for _, p := range byBuyer {
		slices.Sort(p.TicketNumbers)
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b Participant) int {
		if c := a.FirstPurchaseAt.Compare(b.FirstPurchaseAt); c != 0 {
			return c
		}
		return cmp.Compare(a.BuyerRef, b.BuyerRef)
	})
	return out
}

func touch(p *Participant, at *time.Time) {
	if at == nil {
		return
	}
	if p.FirstPurchaseAt.IsZero() || at.Before(p.FirstPurchaseAt) {
		p.FirstPurchaseAt = *at
	}
	if at.After(p.LastPurchaseAt) {
		p.LastPurchaseAt = *at
	}
}
