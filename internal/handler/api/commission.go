package api

import (
	"net/http"

	reqdto "viajes-backoffice/internal/handler/dto/request"
	resdto "viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/internal/handler/middleware"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	commissionCommands commands.CommissionCommands
	commissionQueries  queries.CommissionQueries
}

func NewCommissionHandler(
	commissionCommands commands.CommissionCommands,
	commissionQueries queries.CommissionQueries,
) *CommissionHandler {
	return &CommissionHandler{
		commissionCommands: commissionCommands,
		commissionQueries:  commissionQueries,
	}
}

// @Summary Settle commissions
// @Description Pay out the frozen commission of settled sales and close them, all or nothing
// @Tags commissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SettleCommissionsRequest true "Settlement request"
// @Success 200 {object} resdto.SettleCommissionsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /commissions/settle [post]
func (h *CommissionHandler) SettleCommissions(c *gin.Context) {
	sellerID, ok := middleware.GetSellerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SettleCommissionsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commissionCommands.SettleCommissions(c.Request.Context(), req.ToParams(sellerID))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrSaleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		// Only settled sales are payable; anything else in the batch is
		// answered as not found.
		case errs.Is(err, errs.ErrSaleClosed):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale is already closed"})
		case errs.Is(err, errs.ErrSaleNotSettled):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale is not settled"})
		case errs.Is(err, errs.ErrConcurrencyConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Concurrent update conflict, retry the request"})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettleCommissionsResult(result))
}

// @Summary List commission entries
// @Description List the current seller's commission payout ledger, newest first
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CommissionEntryResponse
// @Failure 401 {object} map[string]string
// @Router /commissions [get]
func (h *CommissionHandler) ListEntries(c *gin.Context) {
	sellerID, ok := middleware.GetSellerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.commissionQueries.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.CommissionEntryResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCommissionEntryView(view)
	}
	c.JSON(http.StatusOK, response)
}
