package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarcticsurvey/amlr-backend-go/internal/config"
	"github.com/antarcticsurvey/amlr-backend-go/internal/database"
	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/repository"
)

func testServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrations := database.NewMigrationManager(db, "../../migrations")
	require.NoError(t, migrations.Apply())

	stationRepo := repository.NewStationRepository(db)
	require.NoError(t, stationRepo.Create(&models.Station{
		StationCode: "AMLR2015-01", Latitude: -62.0, Longitude: -60.0, SurveyNmi: 10,
	}))
	require.NoError(t, stationRepo.Create(&models.Station{
		StationCode: "AMLR2015-02", Latitude: -62.1, Longitude: -60.1, SurveyNmi: 20,
	}))

	sightingRepo := repository.NewSightingRepository(db)
	require.NoError(t, sightingRepo.Create(&models.PredatorSighting{
		Species: "fur_seal", Latitude: -62.0, Longitude: -60.0, Count: 3, Year: 2015,
	}))

	iceRepo := repository.NewIceRepository(db)
	require.NoError(t, iceRepo.Create(&models.IceObservation{
		StationCode: "AMLR2015-01", Latitude: -62.0, Longitude: -60.0,
		IceType: models.IceMultiYear, Coverage: 0.8,
	}))

	cfg := &config.Config{
		Port:                   ":0",
		JWTSecret:              "test-secret",
		CenterLat:              -62.0,
		CenterLon:              -60.0,
		ExtentRadiusMeters:     500000,
		RasterResolutionMeters: 25000,
	}

	return SetupRouter(cfg, db), cfg
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "report-builder",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	r, cfg := testServer(t)

	t.Run("health", func(t *testing.T) {
		w := get(r, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stations", func(t *testing.T) {
		w := get(r, "/api/v1/stations")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AMLR2015-01")
		assert.Contains(t, w.Body.String(), "AMLR2015-02")
	})

	t.Run("effort summary", func(t *testing.T) {
		w := get(r, "/api/v1/effort/summary")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data struct {
				Years []models.EffortYearSummary `json:"years"`
				Total models.EffortYearSummary   `json:"total"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.Years, 1)
		assert.Equal(t, "2015", body.Data.Years[0].Label)
		assert.Equal(t, 2, body.Data.Years[0].StationCount)
		require.NotNil(t, body.Data.Years[0].MeanSurveyNmi)
		assert.Equal(t, 15.0, *body.Data.Years[0].MeanSurveyNmi)
		assert.Equal(t, "Total", body.Data.Total.Label)
	})

	t.Run("ice modes", func(t *testing.T) {
		w := get(r, "/api/v1/ice/modes")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AMLR2015-01")
		assert.Contains(t, w.Body.String(), `"MY"`)
	})

	t.Run("recompute requires auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/raster", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("recompute then query cells", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/raster", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), models.TaskStatusCompleted)

		cells := get(r, "/api/v1/raster/cells?species=fur_seal&year=2015")
		require.Equal(t, http.StatusOK, cells.Code)
		assert.Contains(t, cells.Body.String(), `"total_count":3`)
	})
}
