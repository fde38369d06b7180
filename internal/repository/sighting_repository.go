package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// SightingRepository handles database operations for predator sightings
type SightingRepository struct {
	db *sql.DB
}

// NewSightingRepository creates a new sighting repository
func NewSightingRepository(db *sql.DB) *SightingRepository {
	return &SightingRepository{db: db}
}

// List retrieves predator sightings, optionally filtered by species and year
// (zero values mean no filter)
func (r *SightingRepository) List(species string, year int) ([]models.PredatorSighting, error) {
	query := `SELECT id, species, latitude, longitude, count, year
		FROM predator_sightings`

	var conditions []string
	var args []interface{}

	if species != "" {
		conditions = append(conditions, "species = ?")
		args = append(args, species)
	}
	if year > 0 {
		conditions = append(conditions, "year = ?")
		args = append(args, year)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sightings: %w", err)
	}
	defer rows.Close()

	var sightings []models.PredatorSighting
	for rows.Next() {
		var s models.PredatorSighting
		if err := rows.Scan(&s.ID, &s.Species, &s.Latitude, &s.Longitude, &s.Count, &s.Year); err != nil {
			return nil, fmt.Errorf("failed to scan sighting: %w", err)
		}
		sightings = append(sightings, s)
	}

	return sightings, rows.Err()
}

// Create inserts a predator sighting
func (r *SightingRepository) Create(s *models.PredatorSighting) error {
	query := `INSERT INTO predator_sightings (species, latitude, longitude, count, year)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query, s.Species, s.Latitude, s.Longitude, s.Count, s.Year)
	if err != nil {
		return fmt.Errorf("failed to create sighting: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	s.ID = id
	return nil
}
