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

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve tickets
// @Description Hold specific numbers, or a count of numbers picked lowest-first or at random. All or nothing.
// @Tags reservations
// @Accept json
// @Produce json
// @Param raffleId path string true "Raffle ID"
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /raffles/{raffleId}/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	raffleID, ok := raffleIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(raffleID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	view, err := h.cmds.Reserve(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Release the tickets of an active reservation. Closed reservations are returned unchanged.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "Invalid reservation id")
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
