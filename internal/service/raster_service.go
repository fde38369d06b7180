package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/antarcticsurvey/amlr-backend-go/internal/analysis/raster"
	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
	"github.com/antarcticsurvey/amlr-backend-go/internal/spatial"
)

// TowSpeciesLabel is the category label under which zooplankton tow
// locations are rasterized (one tow, count one).
const TowSpeciesLabel = "zooplankton_tow"

// RasterService derives and serves the raster layers. All layers share one
// projection and extent so their cell boundaries are identical.
type RasterService struct {
	sightingRepo *repository.SightingRepository
	towRepo      *repository.TowRepository
	rasterRepo   *repository.RasterRepository
	taskRepo     *repository.TaskRepository

	projection *spatial.EqualAreaProjection
	extent     spatial.Extent
	resolution float64
}

// NewRasterService creates a new raster service
func NewRasterService(
	sightingRepo *repository.SightingRepository,
	towRepo *repository.TowRepository,
	rasterRepo *repository.RasterRepository,
	taskRepo *repository.TaskRepository,
	projection *spatial.EqualAreaProjection,
	extent spatial.Extent,
	resolution float64,
) *RasterService {
	return &RasterService{
		sightingRepo: sightingRepo,
		towRepo:      towRepo,
		rasterRepo:   rasterRepo,
		taskRepo:     taskRepo,
		projection:   projection,
		extent:       extent,
		resolution:   resolution,
	}
}

// GetCells retrieves derived raster cells with filtering
func (s *RasterService) GetCells(filter models.RasterFilter) ([]models.RasterCell, error) {
	return s.rasterRepo.Query(filter)
}

// GetTask retrieves one recompute task
func (s *RasterService) GetTask(id int64) (*models.AnalysisTask, error) {
	return s.taskRepo.GetByID(id)
}

// Recompute rebuilds every raster layer from the current input tables and
// replaces the derived table wholesale, recording an analysis task for the
// run. Points outside the configured extent are dropped, not errors.
func (s *RasterService) Recompute() (*models.AnalysisTask, error) {
	task := &models.AnalysisTask{TaskType: models.TaskTypeRaster}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	if err := s.taskRepo.MarkRunning(task.ID); err != nil {
		return nil, err
	}

	cells, pointCount, err := s.buildCells()
	if err != nil {
		if markErr := s.taskRepo.MarkFailed(task.ID, err.Error()); markErr != nil {
			log.Printf("[RasterService] Failed to mark task %d as failed: %v", task.ID, markErr)
		}
		return nil, err
	}

	if err := s.rasterRepo.ReplaceAll(cells); err != nil {
		if markErr := s.taskRepo.MarkFailed(task.ID, err.Error()); markErr != nil {
			log.Printf("[RasterService] Failed to mark task %d as failed: %v", task.ID, markErr)
		}
		return nil, err
	}

	summary := map[string]interface{}{
		"cell_count":  len(cells),
		"point_count": pointCount,
		"resolution":  s.resolution,
	}
	summaryJSON, _ := json.Marshal(summary)

	if err := s.taskRepo.MarkCompleted(task.ID, string(summaryJSON)); err != nil {
		return nil, err
	}

	log.Printf("[RasterService] Recompute completed: %d cells from %d points", len(cells), pointCount)
	return s.taskRepo.GetByID(task.ID)
}

// buildCells loads the point tables, projects them and rasterizes
func (s *RasterService) buildCells() ([]models.RasterCell, int, error) {
	sightings, err := s.sightingRepo.List("", 0)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load sightings: %w", err)
	}

	tows, err := s.towRepo.List()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load tows: %w", err)
	}

	points := make([]raster.Point, 0, len(sightings)+len(tows))
	for _, sighting := range sightings {
		x, y := s.projection.Project(sighting.Latitude, sighting.Longitude)
		points = append(points, raster.Point{
			X:       x,
			Y:       y,
			Species: sighting.Species,
			Year:    sighting.Year,
			Count:   sighting.Count,
		})
	}
	for _, tow := range tows {
		x, y := s.projection.Project(tow.Latitude, tow.Longitude)
		points = append(points, raster.Point{
			X:       x,
			Y:       y,
			Species: TowSpeciesLabel,
			Year:    tow.Year,
			Count:   1,
		})
	}

	cells, err := raster.Rasterize(points, s.extent, s.resolution)
	if err != nil {
		return nil, 0, err
	}

	return cells, len(points), nil
}
