//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"viajes-backoffice/internal/handler/api"
	reqdto "viajes-backoffice/internal/handler/dto/request"
	resdto "viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/tests/common/httptest"
	"viajes-backoffice/tests/common/testutil"
	commandsmock "viajes-backoffice/tests/mock/commands"
	queriesmock "viajes-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommissionCommands
	mockQueries  *queriesmock.MockCommissionQueries
	handler      *api.CommissionHandler
	sellerID     uuid.UUID
}

func (s *CommissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommissionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCommissionQueries(s.mockCtrl)
	s.handler = api.NewCommissionHandler(s.mockCommands, s.mockQueries)
	s.sellerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("seller_id", s.sellerID)
		c.Set("seller_role", "seller")
		c.Next()
	}

	s.router.POST("/commissions/settle", authMiddleware, s.handler.SettleCommissions)
	s.router.GET("/commissions", authMiddleware, s.handler.ListEntries)
}

func (s *CommissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommissionHandlerTestSuite))
}

// ================================================================================
// TestSettleCommissions
// ================================================================================

func (s *CommissionHandlerTestSuite) TestSettleCommissions() {
	url := "/commissions/settle"

	reqBody := reqdto.SettleCommissionsRequest{
		SaleIDs: []uuid.UUID{uuid.New(), uuid.New()},
		Method:  "transfer",
		Note:    "july batch",
	}

	s.Run("success: closes the batch and reports the entries", func() {
		result := &commands.SettleCommissionsResult{
			EntryIDs:    []uuid.UUID{uuid.New(), uuid.New()},
			SalesClosed: 2,
		}
		s.mockCommands.EXPECT().SettleCommissions(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SettleCommissionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.EntryIDs, 2)
		s.Equal(2, body.SalesClosed)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: sale_ids", mutate: testutil.Field("sale_ids", nil)},
			{name: "empty sale_ids", mutate: testutil.Field("sale_ids", []string{})},
			{name: "missing field: method", mutate: testutil.Field("method", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: command failures map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "sale not found", err: errs.ErrSaleNotFound, expectCode: http.StatusNotFound},
			{
				name:       "sale already closed carried as a mark",
				err:        errs.Mark(errs.New("sale is closed"), errs.ErrSaleClosed),
				expectCode: http.StatusNotFound,
			},
			{
				name:       "sale not settled carried as a mark",
				err:        errs.Mark(errs.New("sale is not settled"), errs.ErrSaleNotSettled),
				expectCode: http.StatusNotFound,
			},
			{name: "concurrency conflict", err: errs.ErrConcurrencyConflict, expectCode: http.StatusConflict},
			{
				name:       "invalid payout method carried as a mark",
				err:        errs.Mark(errs.New("invalid payout method"), errs.ErrDomainValidation),
				expectCode: http.StatusUnprocessableEntity,
			},
			{name: "unexpected failure", err: errs.New("boom"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SettleCommissions(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestListEntries
// ================================================================================

func (s *CommissionHandlerTestSuite) TestListEntries() {
	url := "/commissions"

	s.Run("success: returns the seller's payout ledger", func() {
		note := "july batch"
		views := []*queries.CommissionEntryView{
			{
				ID:       uuid.New(),
				SellerID: s.sellerID,
				SaleID:   uuid.New(),
				Amount:   decimal.RequireFromString("15.00"),
				Method:   "transfer",
				PaidAt:   time.Now(),
				Note:     &note,
			},
		}
		s.mockQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CommissionEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("transfer", body[0].Method)
		s.Equal("15", body[0].Amount.String())
	})

	s.Run("success: an empty ledger is an empty array", func() {
		s.mockQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CommissionEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}
