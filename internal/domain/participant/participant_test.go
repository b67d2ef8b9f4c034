//go:build unit

package participant_test

import (
	"testing"
	"time"

	"raffle-engine/internal/domain/participant"
	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/ticket"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func at(min int) *time.Time {
	t := baseTime.Add(time.Duration(min) * time.Minute)
	return &t
}

func TestBuild(t *testing.T) {
	raffleID := uuid.New()
	resA, resB := uuid.New(), uuid.New()

	tickets := []*ticket.Ticket{
		ticket.Reconstruct(raffleID, 1, ticket.StateAvailable, "", uuid.Nil, nil, nil, nil, nil),
		ticket.Reconstruct(raffleID, 2, ticket.StateSold, "buyer-b", resB, at(5), nil, at(20), nil),
		ticket.Reconstruct(raffleID, 3, ticket.StateSold, "buyer-b", resB, at(5), nil, at(20), nil),
		ticket.Reconstruct(raffleID, 4, ticket.StateReserved, "buyer-a", resA, at(1), at(16), nil, nil),
		ticket.Reconstruct(raffleID, 5, ticket.StateReserved, "buyer-b", uuid.New(), at(30), at(45), nil, nil),
	}
	payments := []*payment.Payment{
		payment.Reconstruct(uuid.New(), raffleID, resB, []int{2, 3}, 200, payment.MethodCash, "buyer-b",
			payment.StatusConfirmed, *at(10), at(20), ""),
		payment.Reconstruct(uuid.New(), raffleID, resB, []int{2, 3}, 999, payment.MethodCash, "buyer-b",
			payment.StatusRejected, *at(6), at(8), "wrong amount"),
		payment.Reconstruct(uuid.New(), raffleID, resA, []int{4}, 100, payment.MethodCard, "buyer-a",
			payment.StatusPending, *at(2), nil, ""),
		payment.Reconstruct(uuid.New(), raffleID, uuid.New(), []int{1}, 100, payment.MethodCard, "buyer-gone",
			payment.StatusConfirmed, *at(2), at(3), ""),
	}

	got := participant.Build(tickets, payments)

	want := []participant.Participant{
		{
			BuyerRef:        "buyer-a",
			TicketNumbers:   []int{4},
			ReservedTickets: 1,
			FirstPurchaseAt: *at(1),
			LastPurchaseAt:  *at(1),
		},
		{
			BuyerRef:        "buyer-b",
			TicketNumbers:   []int{2, 3, 5},
			PaidTickets:     2,
			ReservedTickets: 1,
			TotalPaid:       200,
			FirstPurchaseAt: *at(5),
			LastPurchaseAt:  *at(30),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("participants mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmpty(t *testing.T) {
	got := participant.Build(nil, nil)
	if len(got) != 0 {
		t.Errorf("expected no participants, got %d", len(got))
	}
}
