//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/handler/api"
	resdto "viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/tests/common/builder"
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

type SaleHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockSaleCommands    *commandsmock.MockSaleCommands
	mockPaymentCommands *commandsmock.MockPaymentCommands
	mockSaleQueries     *queriesmock.MockSaleQueries
	mockPaymentQueries  *queriesmock.MockPaymentQueries
	handler             *api.SaleHandler
	sellerID            uuid.UUID
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSaleCommands = commandsmock.NewMockSaleCommands(s.mockCtrl)
	s.mockPaymentCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockSaleQueries = queriesmock.NewMockSaleQueries(s.mockCtrl)
	s.mockPaymentQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockSaleCommands, s.mockPaymentCommands, s.mockSaleQueries, s.mockPaymentQueries)
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

	s.router.POST("/sales", authMiddleware, s.handler.CreateSale)
	s.router.GET("/sales", authMiddleware, s.handler.ListSales)
	s.router.GET("/sales/:id", authMiddleware, s.handler.GetSale)
	s.router.POST("/sales/:id/payments", authMiddleware, s.handler.RecordPayment)
	s.router.GET("/sales/:id/payments", authMiddleware, s.handler.ListPayments)
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

// ================================================================================
// TestCreateSale
// ================================================================================

func (s *SaleHandlerTestSuite) TestCreateSale() {
	url := "/sales"

	reqBody := builder.NewSaleBuilder().BuildCreateRequestDTO()
	returnView := builder.NewSaleBuilder().BuildView()

	s.Run("success: returns 201 Created for a new sale", func() {
		s.mockSaleCommands.EXPECT().CreateSale(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
			Return(&commands.CreateSaleResult{Sale: returnView}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var body resdto.CreateSaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.Sale.ID)
		s.False(body.Replayed)
	})

	s.Run("success: a replayed request returns 200 OK", func() {
		s.mockSaleCommands.EXPECT().CreateSale(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
			Return(&commands.CreateSaleResult{Sale: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var body resdto.CreateSaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 without an Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 on a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: kind", mutate: testutil.Field("kind", nil)},
			{name: "missing field: adults", mutate: testutil.Field("adults", nil)},
			{name: "missing field: room_type", mutate: testutil.Field("room_type", nil)},
			{name: "adults is not a number", mutate: testutil.Field("adults", "two")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", idempotencyHeader())
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
			{name: "pool not found", err: errs.ErrPoolNotFound, expectCode: http.StatusNotFound},
			{name: "inventory exhausted", err: errs.ErrInventoryExhausted, expectCode: http.StatusConflict},
			{name: "duplicate request", err: errs.ErrDuplicateRequest, expectCode: http.StatusConflict},
			{name: "request in progress", err: errs.ErrIdempotencyInProgress, expectCode: http.StatusConflict},
			{name: "concurrency conflict", err: errs.ErrConcurrencyConflict, expectCode: http.StatusConflict},
			{
				name:       "rate unknown carried as a mark",
				err:        errs.Mark(errs.New("both rate sources failed"), errs.ErrRateUnknown),
				expectCode: http.StatusUnprocessableEntity,
			},
			{
				name:       "domain validation carried as a mark",
				err:        errs.Mark(errs.New("too many children for the room"), errs.ErrDomainValidation),
				expectCode: http.StatusUnprocessableEntity,
			},
			{
				name:       "overpaying initial deposit carried as a mark",
				err:        errs.Mark(errs.New("payment would exceed the total price"), errs.ErrOverpayment),
				expectCode: http.StatusUnprocessableEntity,
			},
			{name: "unexpected failure", err: errs.New("boom"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockSaleCommands.EXPECT().CreateSale(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestRecordPayment
// ================================================================================

func (s *SaleHandlerTestSuite) TestRecordPayment() {
	saleID := uuid.New()
	url := "/sales/" + saleID.String() + "/payments"

	reqBody := builder.NewPaymentBuilder().BuildRequestDTO()
	result := &commands.RecordPaymentResult{
		PaymentID: uuid.New(),
		Balance:   money.New(decimal.RequireFromString("600.00")),
		Status:    sale.StatusActive,
	}

	s.Run("success: returns 201 Created with the new balance", func() {
		s.mockPaymentCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var body resdto.RecordPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.PaymentID, body.PaymentID)
		s.Equal("600", body.Balance.String())
		s.Equal("active", body.Status)
		s.False(body.Replayed)
	})

	s.Run("success: a settling payment reports the new status", func() {
		settling := &commands.RecordPaymentResult{
			PaymentID: uuid.New(),
			Balance:   money.Zero(),
			Status:    sale.StatusSettled,
		}
		s.mockPaymentCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
			Return(settling, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var body resdto.RecordPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("settled", body.Status)
	})

	s.Run("success: a replayed payment returns 200 OK", func() {
		replayed := &commands.RecordPaymentResult{
			PaymentID:  result.PaymentID,
			Balance:    result.Balance,
			Status:     result.Status,
			IsReplayed: true,
		}
		s.mockPaymentCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
			Return(replayed, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var body resdto.RecordPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 400 on a malformed sale id", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/sales/garbage/payments", reqBody, "bearer-token", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sale ID")
	})

	s.Run("error: 400 without an Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: amount", mutate: testutil.Field("amount", nil)},
			{name: "missing field: currency", mutate: testutil.Field("currency", nil)},
			{name: "missing field: method", mutate: testutil.Field("method", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", idempotencyHeader())
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
				name:       "sale closed carried as a mark",
				err:        errs.Mark(errs.New("sale is closed"), errs.ErrSaleClosed),
				expectCode: http.StatusConflict,
			},
			{
				name:       "overpayment carried as a mark",
				err:        errs.Mark(errs.New("payment would exceed the total price"), errs.ErrOverpayment),
				expectCode: http.StatusUnprocessableEntity,
			},
			{
				name:       "rate unknown carried as a mark",
				err:        errs.Mark(errs.New("both rate sources failed"), errs.ErrRateUnknown),
				expectCode: http.StatusUnprocessableEntity,
			},
			{name: "duplicate request", err: errs.ErrDuplicateRequest, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockPaymentCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGetSale / TestListSales / TestListPayments
// ================================================================================

func (s *SaleHandlerTestSuite) TestGetSale() {
	returnView := builder.NewSaleBuilder().BuildView()
	url := "/sales/" + returnView.ID.String()

	s.Run("success: returns the sale with its balance", func() {
		s.mockSaleQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.True(returnView.Balance.Equal(body.Balance))
	})

	s.Run("error: 404 when the sale does not exist", func() {
		s.mockSaleQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrSaleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sale not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sale ID")
	})
}

func (s *SaleHandlerTestSuite) TestListSales() {
	url := "/sales"

	s.Run("success: lists the seller's sales without a next page", func() {
		items := []*queries.SaleListItem{
			builder.NewSaleBuilder().BuildListItem(),
			builder.NewSaleBuilder().WithStatus("settled").BuildListItem(),
		}
		s.mockSaleQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID, gomock.Nil(), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.SaleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Nil(body.NextCursor)
	})

	s.Run("success: a full page carries an opaque cursor", func() {
		items := []*queries.SaleListItem{builder.NewSaleBuilder().BuildListItem()}
		next := &queries.Cursor{LastCreatedAt: items[0].CreatedAt, LastID: items[0].ID}
		s.mockSaleQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID, gomock.Nil(), 1).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, "bearer-token")

		var body resdto.SaleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.NextCursor)
		s.NotEmpty(*body.NextCursor)
	})

	s.Run("success: a returned cursor pages forward", func() {
		items := []*queries.SaleListItem{builder.NewSaleBuilder().BuildListItem()}
		next := &queries.Cursor{LastCreatedAt: items[0].CreatedAt, LastID: items[0].ID}
		s.mockSaleQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID, gomock.Nil(), 1).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, "bearer-token")
		var first resdto.SaleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &first)

		s.mockSaleQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID, gomock.Not(gomock.Nil()), 1).
			Return(nil, nil, nil).Times(1)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1&cursor="+*first.NextCursor, nil, "bearer-token")
		var second resdto.SaleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &second)
		s.Empty(second.Items)
	})

	s.Run("error: 400 on a cursor that is not base64", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=!!not-base64!!", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *SaleHandlerTestSuite) TestListPayments() {
	saleID := uuid.New()
	url := "/sales/" + saleID.String() + "/payments"

	s.Run("success: returns the ledger newest entries included", func() {
		views := []*queries.PaymentView{
			builder.NewPaymentBuilder().WithSaleID(saleID).BuildView(),
			builder.NewPaymentBuilder().WithSaleID(saleID).WithRate("17", "banxico").BuildView(),
		}
		s.mockPaymentQueries.EXPECT().History(gomock.Any(), saleID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Nil(body[0].RateSource)
		s.NotNil(body[1].RateSource)
		s.Equal("banxico", *body[1].RateSource)
	})

	s.Run("error: 404 when the sale does not exist", func() {
		s.mockPaymentQueries.EXPECT().History(gomock.Any(), saleID).
			Return(nil, errs.ErrSaleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sale not found")
	})
}
