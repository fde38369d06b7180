package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/service"
	"github.com/antarcticsurvey/amlr-backend-go/pkg/response"
)

// RasterHandler handles HTTP requests for derived raster layers
type RasterHandler struct {
	service *service.RasterService
}

// NewRasterHandler creates a new raster handler
func NewRasterHandler(service *service.RasterService) *RasterHandler {
	return &RasterHandler{service: service}
}

// GetCells handles GET /api/v1/raster/cells
func (h *RasterHandler) GetCells(c *gin.Context) {
	var filter models.RasterFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	cells, err := h.service.GetCells(filter)
	if err != nil {
		response.InternalError(c, "Failed to get raster cells")
		return
	}

	response.Success(c, gin.H{
		"data":  cells,
		"count": len(cells),
	})
}

// Recompute handles POST /api/v1/analysis/raster
func (h *RasterHandler) Recompute(c *gin.Context) {
	task, err := h.service.Recompute()
	if err != nil {
		response.InternalError(c, "Failed to recompute raster layers")
		return
	}

	response.Success(c, task)
}

// GetTask handles GET /api/v1/analysis/tasks/:id
func (h *RasterHandler) GetTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid task id")
		return
	}

	task, err := h.service.GetTask(id)
	if err != nil {
		response.InternalError(c, "Failed to get task")
		return
	}
	if task == nil {
		response.NotFound(c, "Task not found")
		return
	}

	response.Success(c, task)
}
