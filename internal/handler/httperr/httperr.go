package httperr

import (
	"net/http"

	"raffle-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithEngineError answers with the status that matches the error's kind.
func AbortWithEngineError(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithEngineError: err cannot be nil")
	}

	kind := errs.KindOf(err)
	resp := Response{Status: StatusOf(kind)}
	resp.Error.Code = string(kind)
	resp.Error.Message = messageOf(kind, err)

	abort(c, err, resp)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindTicketUnavailable, errs.KindInsufficientInventory,
		errs.KindAlreadyDecided, errs.KindAlreadyInitialized:
		return http.StatusConflict
	case errs.KindInvalidState:
		return http.StatusUnprocessableEntity
	case errs.KindReservationExpired:
		return http.StatusGone
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindSettlementFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Internal failures never leak their cause to the client.
func messageOf(kind errs.Kind, err error) string {
	switch kind {
	case errs.KindInvariantViolation, errs.KindUnknown:
		return "Internal server error"
	case errs.KindSettlementFailed:
		return "Settlement did not complete, retry later"
	default:
		return err.Error()
	}
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
