package raster

import (
	"fmt"
	"math"
	"sort"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/spatial"
)

// DefaultResolutionMeters is the report's raster cell size in projected
// metres.
const DefaultResolutionMeters = 25000.0

// Point is one projected, categorized observation to be binned.
type Point struct {
	X       float64
	Y       float64
	Species string
	Year    int
	Count   int
}

// cellKey identifies one (cell, species, year) combination.
type cellKey struct {
	cellX   int
	cellY   int
	species string
	year    int
}

// Rasterize bins points into resolution-sized cells inside extent and sums
// counts per (cell, species, year). Cell intervals are half-open: a point on
// a shared boundary always lands in the cell whose min edge it touches.
// Points outside the extent contribute to no cell. Only occupied cells are
// returned; a missing combination means "no observations", never zero.
// Output order is deterministic for identical input.
func Rasterize(points []Point, extent spatial.Extent, resolution float64) ([]models.RasterCell, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %v", resolution)
	}

	cells := make(map[cellKey]int)
	for _, p := range points {
		if !extent.Contains(p.X, p.Y) {
			continue
		}

		key := cellKey{
			cellX:   int(math.Floor((p.X - extent.MinX) / resolution)),
			cellY:   int(math.Floor((p.Y - extent.MinY) / resolution)),
			species: p.Species,
			year:    p.Year,
		}
		cells[key] += p.Count
	}

	result := make([]models.RasterCell, 0, len(cells))
	for key, total := range cells {
		result = append(result, models.RasterCell{
			CellX:      key.cellX,
			CellY:      key.cellY,
			Species:    key.species,
			Year:       key.year,
			TotalCount: total,
			MinX:       extent.MinX + float64(key.cellX)*resolution,
			MinY:       extent.MinY + float64(key.cellY)*resolution,
			MaxX:       extent.MinX + float64(key.cellX+1)*resolution,
			MaxY:       extent.MinY + float64(key.cellY+1)*resolution,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Species != b.Species {
			return a.Species < b.Species
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.CellY != b.CellY {
			return a.CellY < b.CellY
		}
		return a.CellX < b.CellX
	})

	return result, nil
}
