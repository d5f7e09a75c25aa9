package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	reqdto "viajes-backoffice/internal/handler/dto/request"
	resdto "viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/internal/handler/middleware"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct {
	saleCommands    commands.SaleCommands
	paymentCommands commands.PaymentCommands
	saleQueries     queries.SaleQueries
	paymentQueries  queries.PaymentQueries
}

func NewSaleHandler(
	saleCommands commands.SaleCommands,
	paymentCommands commands.PaymentCommands,
	saleQueries queries.SaleQueries,
	paymentQueries queries.PaymentQueries,
) *SaleHandler {
	return &SaleHandler{
		saleCommands:    saleCommands,
		paymentCommands: paymentCommands,
		saleQueries:     saleQueries,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Create sale
// @Description Register a sale, optionally reserving an inventory unit and recording an initial deposit
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateSaleRequest true "Sale request"
// @Success 201 {object} resdto.CreateSaleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	sellerID, ok := middleware.GetSellerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.CreateSaleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.saleCommands.CreateSale(c.Request.Context(), req.ToParams(), sellerID, idempotencyKey)
	if err != nil {
		h.respondSaleError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCreateSaleResult(result))
}

// @Summary Record payment
// @Description Append a payment to a sale's ledger with the exchange rate locked at receipt
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param id path string true "Sale ID"
// @Param request body reqdto.PaymentRequest true "Payment request"
// @Success 201 {object} resdto.RecordPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sales/{id}/payments [post]
func (h *SaleHandler) RecordPayment(c *gin.Context) {
	sellerID, ok := middleware.GetSellerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID format"})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.PaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.paymentCommands.RecordPayment(c.Request.Context(), req.ToParams(saleID), sellerID, idempotencyKey)
	if err != nil {
		h.respondSaleError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRecordPaymentResult(result))
}

// @Summary Get sale
// @Description Get sale by ID with current balance and commission state
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID format"})
		return
	}

	view, err := h.saleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrSaleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary List sales
// @Description List the current seller's sales, newest first, cursor-paged
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} resdto.SaleListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sellerID, ok := middleware.GetSellerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cursor, err := decodeCursor(c.Query("cursor"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	items, next, err := h.saleQueries.ListBySeller(c.Request.Context(), sellerID, cursor, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := resdto.SaleListResponse{
		Items: make([]*resdto.SaleListItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = resdto.FromSaleListItem(item)
	}
	if next != nil {
		encoded := encodeCursor(*next)
		response.NextCursor = &encoded
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Payment history
// @Description List every payment recorded against a sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sales/{id}/payments [get]
func (h *SaleHandler) ListPayments(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID format"})
		return
	}

	views, err := h.paymentQueries.History(c.Request.Context(), saleID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrSaleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	response := make([]*resdto.PaymentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPaymentView(view)
	}
	c.JSON(http.StatusOK, response)
}

func (h *SaleHandler) respondSaleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory pool not found"})
	case errs.Is(err, errs.ErrSaleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errs.Is(err, errs.ErrInventoryExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": "No inventory units available"})
	case errs.Is(err, errs.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate request with different parameters"})
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Request is currently being processed"})
	case errs.Is(err, errs.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent update conflict, retry the request"})
	case errs.Is(err, errs.ErrSaleClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Sale is already closed"})
	case errs.Is(err, errs.ErrOverpayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment exceeds the outstanding balance"})
	case errs.Is(err, errs.ErrRateUnknown):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Exchange rate unavailable, supply manual_rate"})
	case errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}

func encodeCursor(cursor queries.Cursor) string {
	data, _ := json.Marshal(cursor)
	return base64.URLEncoding.EncodeToString(data)
}

func decodeCursor(raw string) (*queries.Cursor, error) {
	if raw == "" {
		return nil, nil
	}
	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	var cursor queries.Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, err
	}
	return &cursor, nil
}
