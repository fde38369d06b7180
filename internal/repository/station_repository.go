package repository

import (
	"database/sql"
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// StationRepository handles database operations for survey stations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// List retrieves all stations ordered by station code
func (r *StationRepository) List() ([]models.Station, error) {
	query := `SELECT station_code, latitude, longitude, survey_nmi
		FROM stations
		ORDER BY station_code`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.StationCode, &s.Latitude, &s.Longitude, &s.SurveyNmi); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}

	return stations, rows.Err()
}

// GetByCode retrieves a single station, or nil when absent
func (r *StationRepository) GetByCode(code string) (*models.Station, error) {
	query := `SELECT station_code, latitude, longitude, survey_nmi
		FROM stations WHERE station_code = ?`

	var s models.Station
	err := r.db.QueryRow(query, code).Scan(&s.StationCode, &s.Latitude, &s.Longitude, &s.SurveyNmi)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	return &s, nil
}

// Create inserts a station
func (r *StationRepository) Create(s *models.Station) error {
	query := `INSERT INTO stations (station_code, latitude, longitude, survey_nmi)
		VALUES (?, ?, ?, ?)`

	if _, err := r.db.Exec(query, s.StationCode, s.Latitude, s.Longitude, s.SurveyNmi); err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}
