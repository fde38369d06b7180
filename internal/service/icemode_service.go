package service

import (
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/analysis/icemode"
	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
)

// IceModeService handles business logic for per-station ice-mode summaries
type IceModeService struct {
	stationRepo *repository.StationRepository
	iceRepo     *repository.IceRepository
}

// NewIceModeService creates a new ice mode service
func NewIceModeService(stationRepo *repository.StationRepository, iceRepo *repository.IceRepository) *IceModeService {
	return &IceModeService{
		stationRepo: stationRepo,
		iceRepo:     iceRepo,
	}
}

// GetModeSummaries computes per-station ice-mode summaries, optionally
// filtered by classification. Stations without neighborhood observations
// never appear.
func (s *IceModeService) GetModeSummaries(filter models.IceModeFilter) ([]models.IceModeSummary, error) {
	if filter.Classification != "" {
		switch filter.Classification {
		case icemode.ClassUniform, icemode.ClassMixed, icemode.ClassIntermediate:
		default:
			return nil, fmt.Errorf("unknown classification: %q", filter.Classification)
		}
	}

	stations, err := s.stationRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	observations, err := s.iceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load ice observations: %w", err)
	}

	summaries := icemode.Summarize(stations, observations, icemode.NeighborhoodRadiusMeters)

	if filter.Classification == "" {
		return summaries, nil
	}

	filtered := make([]models.IceModeSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.Classification == filter.Classification {
			filtered = append(filtered, summary)
		}
	}
	return filtered, nil
}
