package handlers

import (
	"errors"
	"net/http"

	"reservas/models"
	"reservas/services/availability"
	"reservas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the booking-flow availability query.
type AvailabilityHandler struct {
	Catalog  availability.Catalog
	Resolver availability.Resolver
	Logger   *zap.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(catalog availability.Catalog, resolver availability.Resolver, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Catalog: catalog, Resolver: resolver, Logger: logger}
}

// GetAvailableServices handles POST /api/booking/available-services.
func (h *AvailabilityHandler) GetAvailableServices(c *gin.Context) {
	var query models.AvailabilityQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		h.Logger.Error("GetAvailableServices: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	services, err := h.Catalog.LoadActive()
	if err != nil {
		h.Logger.Error("GetAvailableServices: failed to load active services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to load services",
			"message": err.Error(),
		})
		return
	}

	matches, err := h.Resolver.Resolve(query, services)
	if err != nil {
		var invalid *utils.InvalidQueryError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid query",
				"message": invalid.Error(),
			})
			return
		}
		h.Logger.Error("GetAvailableServices: resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to resolve availability",
			"message": err.Error(),
		})
		return
	}

	out := make([]models.AvailableService, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ToAvailable())
	}
	c.JSON(http.StatusOK, out)
}
