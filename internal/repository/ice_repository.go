package repository

import (
	"database/sql"
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// IceRepository handles database operations for sea-ice observations
type IceRepository struct {
	db *sql.DB
}

// NewIceRepository creates a new ice repository
func NewIceRepository(db *sql.DB) *IceRepository {
	return &IceRepository{db: db}
}

// List retrieves all ice observations
func (r *IceRepository) List() ([]models.IceObservation, error) {
	query := `SELECT id, station_code, latitude, longitude, ice_type, coverage
		FROM ice_observations
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ice observations: %w", err)
	}
	defer rows.Close()

	var observations []models.IceObservation
	for rows.Next() {
		var obs models.IceObservation
		var typeCode string
		if err := rows.Scan(&obs.ID, &obs.StationCode, &obs.Latitude, &obs.Longitude, &typeCode, &obs.Coverage); err != nil {
			return nil, fmt.Errorf("failed to scan ice observation: %w", err)
		}

		iceType, err := models.ParseIceType(typeCode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ice observation %d: %w", obs.ID, err)
		}
		obs.IceType = iceType

		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// Create inserts an ice observation
func (r *IceRepository) Create(obs *models.IceObservation) error {
	query := `INSERT INTO ice_observations (station_code, latitude, longitude, ice_type, coverage)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query, obs.StationCode, obs.Latitude, obs.Longitude, obs.IceType.Code(), obs.Coverage)
	if err != nil {
		return fmt.Errorf("failed to create ice observation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	obs.ID = id
	return nil
}
