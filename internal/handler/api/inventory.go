package api

import (
	"net/http"
	"time"

	reqdto "viajes-backoffice/internal/handler/dto/request"
	resdto "viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(
	inventoryCommands commands.InventoryCommands,
	inventoryQueries queries.InventoryQueries,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Create inventory pool
// @Description Register a pre-purchased block, group allotment or trip departure
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePoolRequest true "Pool request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inventory/pools [post]
func (h *InventoryHandler) CreatePool(c *gin.Context) {
	var req reqdto.CreatePoolRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.inventoryCommands.CreatePool(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List available inventory
// @Description List sellable pools of one kind overlapping a date range
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param kind query string true "Pool kind (block, group, national, international)"
// @Param from query string true "Range start (RFC 3339 date)"
// @Param to query string true "Range end (RFC 3339 date)"
// @Success 200 {array} resdto.PoolResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /inventory [get]
func (h *InventoryHandler) ListAvailable(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind query parameter is required"})
		return
	}

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before to"})
		return
	}

	views, err := h.inventoryQueries.ListAvailable(c.Request.Context(), kind, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.PoolResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPoolView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get inventory pool
// @Description Get pool by ID with committed and available counts
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} resdto.PoolResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/pools/{id} [get]
func (h *InventoryHandler) GetPool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	view, err := h.inventoryQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPoolView(view))
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
