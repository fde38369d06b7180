package service

import (
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
)

// StationService handles business logic for survey stations
type StationService struct {
	stationRepo *repository.StationRepository
}

// NewStationService creates a new station service
func NewStationService(stationRepo *repository.StationRepository) *StationService {
	return &StationService{stationRepo: stationRepo}
}

// ListStations retrieves all survey stations
func (s *StationService) ListStations() ([]models.Station, error) {
	stations, err := s.stationRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return stations, nil
}
