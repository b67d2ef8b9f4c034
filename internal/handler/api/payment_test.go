//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/handler/api"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/middleware"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/tests/common/builder"
	"raffle-engine/tests/common/httptest"
	"raffle-engine/tests/common/testutil"
	commandsmock "raffle-engine/tests/mock/commands"
	queriesmock "raffle-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations/:id/payments", s.handler.Submit)
	s.router.GET("/payments/:id", s.handler.Get)
	s.router.POST("/payments/:id/confirm", s.handler.Confirm)
	s.router.POST("/payments/:id/reject", s.handler.Reject)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *PaymentHandlerTestSuite) TestSubmit() {
	b := builder.NewPaymentBuilder()
	url := "/reservations/" + b.ReservationID.String() + "/payments"
	reqBody := b.BuildSubmitRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitPaymentCommand{
			ReservationID: b.ReservationID,
			Amount:        payment.Money(1500),
			Method:        payment.MethodTransfer,
			BuyerRef:      "buyer-001",
		}).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal("pending", resp.Status)
		s.Nil(resp.DecidedAt)
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing buyer", testutil.Field("buyer_ref", nil)},
		{"zero amount", testutil.Field("amount_cents", 0)},
		{"negative amount", testutil.Field("amount_cents", -10)},
		{"unknown method", testutil.Field("method", "cheque")},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("lapsed hold maps to 410", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("expired"), errs.ErrReservationExpired))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusGone, string(errs.KindReservationExpired))
	})

	s.Run("pending payment maps to 422", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("pending"), errs.ErrInvalidState))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, string(errs.KindInvalidState))
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *PaymentHandlerTestSuite) TestConfirm() {
	b := builder.NewPaymentBuilder()
	url := "/payments/" + b.ID.String() + "/confirm"
	confirmed := builder.NewPaymentBuilder().With(func(c *builder.PaymentBuilder) { c.ID = b.ID }).
		Decided(payment.StatusConfirmed, "bank ok").BuildView()

	s.Run("success with notes", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), commands.ConfirmPaymentCommand{PaymentID: b.ID, Notes: "bank ok"}).
			Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"notes": "bank ok"})

		var resp resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
		s.Equal("bank ok", resp.DecisionNote)
		s.NotNil(resp.DecidedAt)
	})

	s.Run("success without body", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), commands.ConfirmPaymentCommand{PaymentID: b.ID}).
			Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("notes too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"notes": strings.Repeat("n", 501)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("already rejected maps to 409", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("rejected"), errs.ErrAlreadyDecided))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindAlreadyDecided))
	})

	s.Run("settlement failure maps to 503 without leaking the cause", func() {
		cause := errors.New("connection reset by peer")
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.Wrap(cause, "settlement did not complete"), errs.ErrSettlementFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, string(errs.KindSettlementFailed))
		s.NotContains(rec.Body.String(), "connection reset")
	})

	s.Run("counter drift maps to 500", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("drift"), errs.ErrInvariantViolation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestReject / TestGet
// ================================================================================

func (s *PaymentHandlerTestSuite) TestReject() {
	b := builder.NewPaymentBuilder()
	url := "/payments/" + b.ID.String() + "/reject"

	s.Run("success", func() {
		rejected := builder.NewPaymentBuilder().Decided(payment.StatusRejected, "illegible proof").BuildView()
		s.mockCommands.EXPECT().Reject(gomock.Any(), commands.RejectPaymentCommand{PaymentID: b.ID, Reason: "illegible proof"}).
			Return(rejected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "illegible proof"})

		var resp resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("rejected", resp.Status)
		s.Equal("illegible proof", resp.DecisionNote)
	})

	s.Run("reason required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("blank reason from the engine maps to 400", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), gomock.Any()).Return(nil, payment.ErrEmptyReason)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "  "})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidArgument))
	})
}

func (s *PaymentHandlerTestSuite) TestGet() {
	view := builder.NewPaymentBuilder().BuildView()

	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+view.ID.String(), nil)

	var resp resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(view.ReservationID, resp.ReservationID)
	s.Equal(int64(1500), resp.AmountCents)
	s.Equal("transfer", resp.Method)
}
