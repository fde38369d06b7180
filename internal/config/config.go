package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	MigrationsPath string

	// Projection center for the survey region (degrees). All raster
	// layers of a report share this center so cells line up.
	CenterLat float64
	CenterLon float64

	// ExtentRadiusMeters is the half-width of the square raster extent
	// around the projection center, in projected metres.
	ExtentRadiusMeters float64

	// RasterResolutionMeters is the raster cell size in projected metres.
	RasterResolutionMeters float64
}

// Load reads configuration from environment variables with defaults for the
// South Shetland Islands survey region.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/survey.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	return &Config{
		Port:                   port,
		DBPath:                 dbPath,
		JWTSecret:              jwtSecret,
		MigrationsPath:         migrationsPath,
		CenterLat:              envFloat("CENTER_LAT", -62.0),
		CenterLon:              envFloat("CENTER_LON", -60.0),
		ExtentRadiusMeters:     envFloat("EXTENT_RADIUS_M", 500000),
		RasterResolutionMeters: envFloat("RASTER_RESOLUTION_M", 25000),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
