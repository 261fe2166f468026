package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/voltworks/inventory-engine/internal/api/handlers"
	"github.com/voltworks/inventory-engine/internal/api/middleware"
	"github.com/voltworks/inventory-engine/internal/service"
)

// NewRouter wires the inventory API.
func NewRouter(inventoryService *service.InventoryService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")

	if inventoryService != nil {
		inventoryHandler := handlers.NewInventoryHandler(inventoryService)
		inventoryGroup := apiGroup.Group("/inventory")
		{
			inventoryGroup.GET("/summary", inventoryHandler.GetSummary)
			inventoryGroup.GET("/health", inventoryHandler.GetHealth)
			inventoryGroup.GET("/stockout_forecast", inventoryHandler.GetStockoutForecast)
			inventoryGroup.GET("/reorder_recommendations", inventoryHandler.GetReorderRecommendations)
			inventoryGroup.GET("/parts/:part_id/optimize", inventoryHandler.OptimizeParameters)
			inventoryGroup.GET("/parts/:part_id/demand", inventoryHandler.GetDemand)
			inventoryGroup.GET("/suppliers/performance", inventoryHandler.GetSupplierPerformance)
			inventoryGroup.POST("/reload", inventoryHandler.Reload)
		}

		capacityHandler := handlers.NewCapacityHandler(inventoryService)
		productionGroup := apiGroup.Group("/production")
		{
			productionGroup.GET("/models", capacityHandler.GetModels)
			productionGroup.GET("/models/:model/capacity", capacityHandler.GetBuildCapacity)
			productionGroup.GET("/models/:model/requirements", capacityHandler.GetMaterialRequirements)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
