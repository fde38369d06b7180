package models

// RasterFilter holds query parameters for derived raster cells.
type RasterFilter struct {
	Species  string `form:"species"`
	Year     int    `form:"year"`
	MinCount int    `form:"min_count"`
}

// IceModeFilter holds query parameters for ice-mode summaries.
type IceModeFilter struct {
	Classification string `form:"classification"`
}
