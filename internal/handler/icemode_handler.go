package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/service"
	"github.com/antarcticsurvey/amlr-backend-go/pkg/response"
)

// IceModeHandler handles HTTP requests for ice-mode summaries
type IceModeHandler struct {
	service *service.IceModeService
}

// NewIceModeHandler creates a new ice mode handler
func NewIceModeHandler(service *service.IceModeService) *IceModeHandler {
	return &IceModeHandler{service: service}
}

// GetModes handles GET /api/v1/ice/modes
func (h *IceModeHandler) GetModes(c *gin.Context) {
	var filter models.IceModeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summaries, err := h.service.GetModeSummaries(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  summaries,
		"count": len(summaries),
	})
}
