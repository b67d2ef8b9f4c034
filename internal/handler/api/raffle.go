package api

import (
	"net/http"

	"raffle-engine/internal/domain/payment"
	reqdto "raffle-engine/internal/handler/dto/request"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/httperr"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RaffleHandler struct {
	inventory commands.InventoryCommands
	sweep     commands.SweepCommands
	q         queries.InventoryQueries
	payments  queries.PaymentQueries
}

func NewRaffleHandler(
	inventory commands.InventoryCommands,
	sweep commands.SweepCommands,
	q queries.InventoryQueries,
	payments queries.PaymentQueries,
) *RaffleHandler {
	return &RaffleHandler{
		inventory: inventory,
		sweep:     sweep,
		q:         q,
		payments:  payments,
	}
}

// @Summary Initialize raffle inventory
// @Description Create tickets 1..N for a raffle. A raffle is initialized once.
// @Tags raffles
// @Accept json
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Param request body reqdto.InitializeInventoryRequest true "Inventory request"
// @Success 201 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /raffles/{raffleId}/inventory [post]
func (h *RaffleHandler) Initialize(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	var req reqdto.InitializeInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	snapshot, err := h.inventory.Initialize(c.Request.Context(), req.ToCommand(raffleID))
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInventorySnapshot(snapshot))
}

// @Summary Change raffle status
// @Tags raffles
// @Accept json
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /raffles/{raffleId}/status [patch]
func (h *RaffleHandler) ChangeStatus(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	snapshot, err := h.inventory.ChangeStatus(c.Request.Context(), req.ToCommand(raffleID))
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventorySnapshot(snapshot))
}

// @Summary Get inventory snapshot
// @Description Counters and status as of the last committed write
// @Tags raffles
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 404 {object} httperr.Response
// @Router /raffles/{raffleId}/inventory [get]
func (h *RaffleHandler) Inventory(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	snapshot, err := h.q.GetSnapshot(c.Request.Context(), raffleID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventorySnapshot(snapshot))
}

// @Summary List participants
// @Description Buyers holding reserved or sold tickets, earliest purchase first
// @Tags raffles
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Success 200 {array} resdto.ParticipantResponse
// @Failure 404 {object} httperr.Response
// @Router /raffles/{raffleId}/participants [get]
func (h *RaffleHandler) Participants(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	views, err := h.q.GetParticipants(c.Request.Context(), raffleID)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromParticipantViews(views))
}

// @Summary List payments
// @Description Payments of a raffle in submission order, optionally filtered by status
// @Tags raffles
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Param status query string false "pending, confirmed or rejected"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /raffles/{raffleId}/payments [get]
func (h *RaffleHandler) Payments(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	var status *payment.Status
	if raw := c.Query("status"); raw != "" {
		s, err := payment.ParseStatus(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		status = &s
	}
	views, err := h.payments.ListByRaffle(c.Request.Context(), raffleID, status)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Sweep expired reservations
// @Description Release every reservation of the raffle whose hold has lapsed
// @Tags raffles
// @Accept json
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Param request body reqdto.SweepRequest false "Sweep time override"
// @Success 200 {object} resdto.SweepResponse
// @Failure 404 {object} httperr.Response
// @Router /raffles/{raffleId}/sweep [post]
func (h *RaffleHandler) Sweep(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SweepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := h.sweep.SweepRaffle(c.Request.Context(), raffleID, req.SweepTime())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}

func raffleIDParam(c *gin.Context) (uuid.UUID, bool) {
	return uuidParam(c, "raffleId", "Invalid raffle id")
}

func uuidParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
