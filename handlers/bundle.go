package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	GetAvailableServices gin.HandlerFunc

	// Admin agency-service endpoints
	SaveAgencyService       gin.HandlerFunc
	GetAgencyService        gin.HandlerFunc
	DeactivateAgencyService gin.HandlerFunc
	ListAgencyServices      gin.HandlerFunc
}
