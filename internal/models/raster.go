package models

// RasterCell is one occupied cell of a derived raster layer: the summed
// sighting count for a (cell, species, year) combination. Cells with no
// observations are never stored; absence means "no data", not zero.
// Cell coordinates and bounds are in the projected planar system shared by
// every layer, so maps built from different species or years line up.
type RasterCell struct {
	ID int64 `json:"id" db:"id"`

	CellX   int    `json:"cell_x" db:"cell_x"`
	CellY   int    `json:"cell_y" db:"cell_y"`
	Species string `json:"species" db:"species"`
	Year    int    `json:"year" db:"year"`

	TotalCount int `json:"total_count" db:"total_count"`

	// Cell bounds in projected metres, half-open on the max edges.
	MinX float64 `json:"min_x" db:"min_x"`
	MinY float64 `json:"min_y" db:"min_y"`
	MaxX float64 `json:"max_x" db:"max_x"`
	MaxY float64 `json:"max_y" db:"max_y"`
}
