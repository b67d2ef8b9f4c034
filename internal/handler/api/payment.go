package api

import (
	"net/http"

	reqdto "raffle-engine/internal/handler/dto/request"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/httperr"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Submit payment
// @Description Record a payment claim against an active reservation of the same buyer
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SubmitPaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/payments [post]
func (h *PaymentHandler) Submit(c *gin.Context) {
	reservationID, ok := uuidParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	var req reqdto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(reservationID))
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid payment id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Confirm payment
// @Description Sell the reserved tickets. Confirming a confirmed payment returns it unchanged.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.ConfirmPaymentRequest false "Operator notes"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid payment id")
	if !ok {
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	view, err := h.cmds.Confirm(c.Request.Context(), commands.ConfirmPaymentCommand{PaymentID: id, Notes: req.Notes})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Reject payment
// @Description Reject a pending payment and release its reservation
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.RejectPaymentRequest true "Rejection reason"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/{id}/reject [post]
func (h *PaymentHandler) Reject(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid payment id")
	if !ok {
		return
	}
	var req reqdto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Reject(c.Request.Context(), commands.RejectPaymentCommand{PaymentID: id, Reason: req.Reason})
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
