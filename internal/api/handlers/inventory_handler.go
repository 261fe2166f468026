package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voltworks/inventory-engine/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrSnapshotNotLoaded) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": message, "details": err.Error()})
}

func (h *InventoryHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch inventory summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *InventoryHandler) GetHealth(c *gin.Context) {
	records, err := h.service.Health(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch stock health")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}

func (h *InventoryHandler) GetStockoutForecast(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 {
		days = 30
	}

	risks, err := h.service.StockoutForecast(c.Request.Context(), days)
	if err != nil {
		respondError(c, err, "failed to fetch stockout forecast")
		return
	}
	c.JSON(http.StatusOK, gin.H{"horizon_days": days, "at_risk": risks})
}

func (h *InventoryHandler) GetReorderRecommendations(c *gin.Context) {
	recommendations, err := h.service.ReorderRecommendations(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch reorder recommendations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

func (h *InventoryHandler) OptimizeParameters(c *gin.Context) {
	partID := strings.TrimSpace(c.Param("part_id"))
	if partID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "part_id is required"})
		return
	}

	result, err := h.service.OptimizeParameters(c.Request.Context(), partID)
	if err != nil {
		respondError(c, err, "failed to optimize dispatch parameters")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) GetSupplierPerformance(c *gin.Context) {
	performance, err := h.service.SupplierPerformance(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch supplier performance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": performance})
}

func (h *InventoryHandler) GetDemand(c *gin.Context) {
	partID := strings.TrimSpace(c.Param("part_id"))
	if partID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "part_id is required"})
		return
	}

	demand, err := h.service.Demand(c.Request.Context(), partID)
	if err != nil {
		respondError(c, err, "failed to fetch demand")
		return
	}
	c.JSON(http.StatusOK, demand)
}

func (h *InventoryHandler) Reload(c *gin.Context) {
	if err := h.service.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload snapshot", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
