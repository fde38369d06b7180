package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/antarcticsurvey/amlr-backend-go/internal/service"
	"github.com/antarcticsurvey/amlr-backend-go/pkg/response"
)

// EffortHandler handles HTTP requests for effort summaries
type EffortHandler struct {
	service *service.EffortService
}

// NewEffortHandler creates a new effort handler
func NewEffortHandler(service *service.EffortService) *EffortHandler {
	return &EffortHandler{service: service}
}

// GetSummary handles GET /api/v1/effort/summary
func (h *EffortHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary()
	if err != nil {
		response.InternalError(c, "Failed to compute effort summary")
		return
	}

	response.Success(c, summary)
}
