package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/antarcticsurvey/amlr-backend-go/internal/service"
	"github.com/antarcticsurvey/amlr-backend-go/pkg/response"
)

// StationHandler handles HTTP requests for survey stations
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// ListStations handles GET /api/v1/stations
func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.service.ListStations()
	if err != nil {
		response.InternalError(c, "Failed to list stations")
		return
	}

	response.Success(c, gin.H{
		"data":  stations,
		"count": len(stations),
	})
}
