package request

import (
	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitPaymentRequest struct {
	BuyerRef    string `json:"buyer_ref" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Method      string `json:"method" binding:"required,oneof=cash transfer card mobile"`
}

func (r *SubmitPaymentRequest) ToCommand(reservationID uuid.UUID) commands.SubmitPaymentCommand {
	return commands.SubmitPaymentCommand{
		ReservationID: reservationID,
		Amount:        payment.Money(r.AmountCents),
		Method:        payment.Method(r.Method),
		BuyerRef:      r.BuyerRef,
	}
}

type ConfirmPaymentRequest struct {
	Notes string `json:"notes,omitempty" binding:"max=500"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
