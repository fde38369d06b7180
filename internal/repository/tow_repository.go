package repository

import (
	"database/sql"
	"fmt"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// TowRepository handles database operations for zooplankton tows
type TowRepository struct {
	db *sql.DB
}

// NewTowRepository creates a new tow repository
func NewTowRepository(db *sql.DB) *TowRepository {
	return &TowRepository{db: db}
}

// List retrieves all zooplankton tows
func (r *TowRepository) List() ([]models.ZooplanktonTow, error) {
	query := `SELECT id, latitude, longitude, time_of_day, year
		FROM zooplankton_tows
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tows: %w", err)
	}
	defer rows.Close()

	var tows []models.ZooplanktonTow
	for rows.Next() {
		var t models.ZooplanktonTow
		if err := rows.Scan(&t.ID, &t.Latitude, &t.Longitude, &t.TimeOfDay, &t.Year); err != nil {
			return nil, fmt.Errorf("failed to scan tow: %w", err)
		}
		tows = append(tows, t)
	}

	return tows, rows.Err()
}

// Create inserts a zooplankton tow
func (r *TowRepository) Create(t *models.ZooplanktonTow) error {
	query := `INSERT INTO zooplankton_tows (latitude, longitude, time_of_day, year)
		VALUES (?, ?, ?, ?)`

	result, err := r.db.Exec(query, t.Latitude, t.Longitude, t.TimeOfDay, t.Year)
	if err != nil {
		return fmt.Errorf("failed to create tow: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	t.ID = id
	return nil
}
