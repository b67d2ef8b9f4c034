//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"raffle-engine/internal/domain/payment"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/handler/api"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/middleware"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/tests/common/builder"
	"raffle-engine/tests/common/httptest"
	"raffle-engine/tests/common/testutil"
	commandsmock "raffle-engine/tests/mock/commands"
	queriesmock "raffle-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RaffleHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockInventory *commandsmock.MockInventoryCommands
	mockSweep     *commandsmock.MockSweepCommands
	mockQueries   *queriesmock.MockInventoryQueries
	mockPayments  *queriesmock.MockPaymentQueries
	handler       *api.RaffleHandler
}

func (s *RaffleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockInventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockSweep = commandsmock.NewMockSweepCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewRaffleHandler(s.mockInventory, s.mockSweep, s.mockQueries, s.mockPayments)

	s.router.POST("/raffles/:raffleId/inventory", s.handler.Initialize)
	s.router.GET("/raffles/:raffleId/inventory", s.handler.Inventory)
	s.router.PATCH("/raffles/:raffleId/status", s.handler.ChangeStatus)
	s.router.GET("/raffles/:raffleId/participants", s.handler.Participants)
	s.router.GET("/raffles/:raffleId/payments", s.handler.Payments)
	s.router.POST("/raffles/:raffleId/sweep", s.handler.Sweep)
}

func (s *RaffleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRaffleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RaffleHandlerTestSuite))
}

type testCaseRaffle struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestInitialize
// ================================================================================

func (s *RaffleHandlerTestSuite) TestInitialize() {
	b := builder.NewRaffleBuilder()
	url := "/raffles/" + b.RaffleID.String() + "/inventory"
	reqBody := b.BuildInitializeRequestDTO()

	validation := []testCaseRaffle{
		{name: "missing total_tickets", mutate: testutil.Field("total_tickets", nil), expectCode: http.StatusBadRequest},
		{name: "zero total_tickets", mutate: testutil.Field("total_tickets", 0), expectCode: http.StatusBadRequest},
		{name: "unknown initial status", mutate: testutil.Field("status", "sold_out"), expectCode: http.StatusBadRequest},
		{name: "zero reservation time", mutate: testutil.Field("reservation_time_minutes", 0), expectCode: http.StatusBadRequest},
		{name: "negative price", mutate: testutil.Field("ticket_price_cents", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: settings reach the command", func() {
		s.mockInventory.EXPECT().Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.InitializeInventoryCommand) (*queries.InventorySnapshot, error) {
				s.Equal(b.BuildInitializeCommand(), cmd)
				return b.BuildSnapshot(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.RaffleID, resp.RaffleID)
		s.Equal(100, resp.Available)
		s.Equal("active", resp.Status)
	})

	s.Run("success: omitted settings stay zero", func() {
		s.mockInventory.EXPECT().Initialize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.InitializeInventoryCommand) (*queries.InventorySnapshot, error) {
				s.Equal(raffle.Settings{}, cmd.Settings)
				s.Equal(raffle.Status(""), cmd.Status)
				return b.BuildSnapshot(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"total_tickets": 100})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	for _, tc := range validation {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	s.Run("invalid raffle id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/raffles/not-a-uuid/inventory", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid raffle id")
	})

	s.Run("already initialized maps to 409", func() {
		s.mockInventory.EXPECT().Initialize(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("raffle exists"), errs.ErrAlreadyInitialized))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindAlreadyInitialized))
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *RaffleHandlerTestSuite) TestChangeStatus() {
	b := builder.NewRaffleBuilder().With(func(b *builder.RaffleBuilder) { b.Status = raffle.StatusPaused })
	url := "/raffles/" + b.RaffleID.String() + "/status"

	s.Run("success", func() {
		s.mockInventory.EXPECT().ChangeStatus(gomock.Any(), commands.ChangeStatusCommand{
			RaffleID: b.RaffleID,
			Status:   raffle.StatusPaused,
		}).Return(b.BuildSnapshot(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paused"})

		var resp resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("paused", resp.Status)
	})

	s.Run("missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("forbidden transition maps to 422", func() {
		s.mockInventory.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("completed -> active"), errs.ErrInvalidState))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "active"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, string(errs.KindInvalidState))
	})
}

// ================================================================================
// TestInventory / TestParticipants
// ================================================================================

func (s *RaffleHandlerTestSuite) TestInventory() {
	b := builder.NewRaffleBuilder().With(func(b *builder.RaffleBuilder) {
		b.Available, b.Reserved, b.Sold = 90, 7, 3
	})
	url := "/raffles/" + b.RaffleID.String() + "/inventory"

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), b.RaffleID).Return(b.BuildSnapshot(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var resp resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(90, resp.Available)
		s.Equal(7, resp.Reserved)
		s.Equal(3, resp.Sold)
		s.Equal(15, resp.ReservationMinutes)
	})

	s.Run("unknown raffle maps to 404", func() {
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), b.RaffleID).
			Return(nil, errs.Mark(errs.New("raffle not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *RaffleHandlerTestSuite) TestParticipants() {
	raffleID := uuid.New()
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	views := []*queries.ParticipantView{
		{BuyerRef: "ana", TicketNumbers: []int{1, 2}, TotalTickets: 2, PaidTickets: 2, TotalPaidCents: 1000, FirstPurchaseAt: first, LastPurchaseAt: first},
		{BuyerRef: "bo", TicketNumbers: []int{7}, TotalTickets: 1, ReservedTickets: 1, FirstPurchaseAt: first.Add(time.Minute), LastPurchaseAt: first.Add(time.Minute)},
	}

	s.mockQueries.EXPECT().GetParticipants(gomock.Any(), raffleID).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/raffles/"+raffleID.String()+"/participants", nil)

	var resp []resdto.ParticipantResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Equal("ana", resp[0].BuyerRef)
	s.Equal([]int{1, 2}, resp[0].TicketNumbers)
	s.Equal(int64(1000), resp[0].TotalPaidCents)
	s.Equal(1, resp[1].ReservedTickets)
	s.True(first.Equal(resp[0].FirstPurchaseAt))
}

// ================================================================================
// TestPayments
// ================================================================================

func (s *RaffleHandlerTestSuite) TestPayments() {
	raffleID := uuid.New()
	url := "/raffles/" + raffleID.String() + "/payments"
	pending := builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) { b.RaffleID = raffleID }).BuildView()

	s.Run("no filter", func() {
		s.mockPayments.EXPECT().ListByRaffle(gomock.Any(), raffleID, (*payment.Status)(nil)).
			Return([]*queries.PaymentView{pending}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var resp []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(pending.ID, resp[0].ID)
	})

	s.Run("status filter", func() {
		s.mockPayments.EXPECT().ListByRaffle(gomock.Any(), raffleID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, status *payment.Status) ([]*queries.PaymentView, error) {
				s.Require().NotNil(status)
				s.Equal(payment.StatusPending, *status)
				return []*queries.PaymentView{pending}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=lost", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}

// ================================================================================
// TestSweep
// ================================================================================

func (s *RaffleHandlerTestSuite) TestSweep() {
	raffleID := uuid.New()
	url := "/raffles/" + raffleID.String() + "/sweep"
	expired := uuid.New()
	result := &commands.SweepResult{RaffleID: raffleID, ReleasedTickets: 2, ExpiredReservations: []uuid.UUID{expired}}

	s.Run("without body sweeps at server time", func() {
		s.mockSweep.EXPECT().SweepRaffle(gomock.Any(), raffleID, time.Time{}).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(2, resp.ReleasedTickets)
		s.Equal([]uuid.UUID{expired}, resp.ExpiredReservations)
	})

	s.Run("explicit time", func() {
		at := time.Date(2025, 3, 1, 12, 16, 0, 0, time.UTC)
		s.mockSweep.EXPECT().SweepRaffle(gomock.Any(), raffleID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, now time.Time) (*commands.SweepResult, error) {
				s.True(at.Equal(now))
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"now": at})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
