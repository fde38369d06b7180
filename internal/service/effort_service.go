package service

import (
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/analysis/effort"
	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
)

// EffortSummaryResult is the full effort / ice-composition table: one row
// per survey year plus the pooled Total row.
type EffortSummaryResult struct {
	Years []models.EffortYearSummary `json:"years"`
	Total models.EffortYearSummary   `json:"total"`
}

// EffortService handles business logic for effort summaries
type EffortService struct {
	stationRepo *repository.StationRepository
	iceRepo     *repository.IceRepository
}

// NewEffortService creates a new effort service
func NewEffortService(stationRepo *repository.StationRepository, iceRepo *repository.IceRepository) *EffortService {
	return &EffortService{
		stationRepo: stationRepo,
		iceRepo:     iceRepo,
	}
}

// GetSummary computes the per-year and pooled effort / ice-composition
// summaries from the current input tables
func (s *EffortService) GetSummary() (*EffortSummaryResult, error) {
	stations, err := s.stationRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	observations, err := s.iceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load ice observations: %w", err)
	}

	years, total := effort.Summarize(stations, observations)
	return &EffortSummaryResult{Years: years, Total: total}, nil
}
