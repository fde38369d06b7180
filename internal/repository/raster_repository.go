package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/antarcticsurvey/amlr-backend-go/internal/database"
	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// RasterRepository handles database operations for derived raster cells
type RasterRepository struct {
	db *sql.DB
}

// NewRasterRepository creates a new raster repository
func NewRasterRepository(db *sql.DB) *RasterRepository {
	return &RasterRepository{db: db}
}

// Query retrieves raster cells with filtering
func (r *RasterRepository) Query(filter models.RasterFilter) ([]models.RasterCell, error) {
	query := `SELECT id, cell_x, cell_y, species, year, total_count,
		min_x, min_y, max_x, max_y
		FROM raster_cells`

	var conditions []string
	var args []interface{}

	if filter.Species != "" {
		conditions = append(conditions, "species = ?")
		args = append(args, filter.Species)
	}
	if filter.Year > 0 {
		conditions = append(conditions, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.MinCount > 0 {
		conditions = append(conditions, "total_count >= ?")
		args = append(args, filter.MinCount)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY species, year, cell_y, cell_x"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query raster cells: %w", err)
	}
	defer rows.Close()

	var cells []models.RasterCell
	for rows.Next() {
		var c models.RasterCell
		err := rows.Scan(
			&c.ID, &c.CellX, &c.CellY, &c.Species, &c.Year, &c.TotalCount,
			&c.MinX, &c.MinY, &c.MaxX, &c.MaxY,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raster cell: %w", err)
		}
		cells = append(cells, c)
	}

	return cells, rows.Err()
}

// ReplaceAll atomically replaces the whole derived table with a fresh run's
// cells
func (r *RasterRepository) ReplaceAll(cells []models.RasterCell) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM raster_cells"); err != nil {
			return fmt.Errorf("failed to clear raster cells: %w", err)
		}

		insertQuery := `INSERT INTO raster_cells (
			cell_x, cell_y, species, year, total_count,
			min_x, min_y, max_x, max_y
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

		stmt, err := tx.Prepare(insertQuery)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, c := range cells {
			_, err := stmt.Exec(
				c.CellX, c.CellY, c.Species, c.Year, c.TotalCount,
				c.MinX, c.MinY, c.MaxX, c.MaxY,
			)
			if err != nil {
				return fmt.Errorf("failed to insert raster cell: %w", err)
			}
		}

		return nil
	})
}
