package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voltworks/inventory-engine/internal/service"
)

type CapacityHandler struct {
	service *service.InventoryService
}

func NewCapacityHandler(service *service.InventoryService) *CapacityHandler {
	return &CapacityHandler{service: service}
}

func (h *CapacityHandler) GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.service.Models()})
}

func (h *CapacityHandler) GetBuildCapacity(c *gin.Context) {
	model := strings.TrimSpace(c.Param("model"))
	if model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
		return
	}

	result, err := h.service.BuildCapacity(c.Request.Context(), model)
	if err != nil {
		respondError(c, err, "failed to calculate build capacity")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CapacityHandler) GetMaterialRequirements(c *gin.Context) {
	model := strings.TrimSpace(c.Param("model"))
	if model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
		return
	}

	quantity, err := strconv.ParseFloat(c.DefaultQuery("quantity", "1"), 64)
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive number"})
		return
	}

	requirements, err := h.service.MaterialRequirements(c.Request.Context(), model, quantity)
	if err != nil {
		respondError(c, err, "failed to calculate material requirements")
		return
	}
	if requirements == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no BOM found for model " + model})
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": model, "quantity": quantity, "requirements": requirements})
}
