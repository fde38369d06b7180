package icemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// station sits at the origin of the test neighborhood; obs helper drops
// observations either right next to it or far outside the radius.
func testStation(code string) models.Station {
	return models.Station{StationCode: code, Latitude: -62.0, Longitude: -60.0}
}

func nearObs(code string, iceType models.IceType) models.IceObservation {
	return models.IceObservation{
		StationCode: code,
		Latitude:    -62.01, // roughly 1.1 km from the station
		Longitude:   -60.0,
		IceType:     iceType,
	}
}

func farObs(iceType models.IceType) models.IceObservation {
	return models.IceObservation{
		Latitude:  -63.0, // > 100 km away
		Longitude: -60.0,
		IceType:   iceType,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("two multi-year and one first-year", func(t *testing.T) {
		station := testStation("AMLR2015-01")
		obs := []models.IceObservation{
			nearObs("AMLR2015-01", models.IceMultiYear),
			nearObs("AMLR2015-01", models.IceMultiYear),
			nearObs("AMLR2015-01", models.IceFirstYear),
		}

		summaries := Summarize([]models.Station{station}, obs, NeighborhoodRadiusMeters)
		require.Len(t, summaries, 1)

		s := summaries[0]
		assert.Equal(t, 3, s.ObservationCount)
		assert.Equal(t, models.IceMultiYear, s.ModeType)
		assert.Equal(t, 2, s.ModeCount)
		assert.InDelta(t, 2.0/3.0, s.Agreement, 1e-12)
		assert.Equal(t, ClassIntermediate, s.Classification)
	})

	t.Run("tie goes to the thicker category", func(t *testing.T) {
		station := testStation("AMLR2015-02")
		obs := []models.IceObservation{
			nearObs("AMLR2015-02", models.IceOpenWater),
			nearObs("AMLR2015-02", models.IceFirstYear),
		}

		summaries := Summarize([]models.Station{station}, obs, NeighborhoodRadiusMeters)
		require.Len(t, summaries, 1)
		assert.Equal(t, models.IceFirstYear, summaries[0].ModeType)
		assert.Equal(t, 1, summaries[0].ModeCount)
	})

	t.Run("empty neighborhood excludes the station", func(t *testing.T) {
		station := testStation("AMLR2015-03")
		obs := []models.IceObservation{farObs(models.IceMultiYear)}

		summaries := Summarize([]models.Station{station}, obs, NeighborhoodRadiusMeters)
		assert.Empty(t, summaries)
	})

	t.Run("distant observations do not qualify", func(t *testing.T) {
		station := testStation("AMLR2015-04")
		obs := []models.IceObservation{
			nearObs("AMLR2015-04", models.IceThin),
			farObs(models.IceMultiYear),
			farObs(models.IceMultiYear),
		}

		summaries := Summarize([]models.Station{station}, obs, NeighborhoodRadiusMeters)
		require.Len(t, summaries, 1)
		assert.Equal(t, 1, summaries[0].ObservationCount)
		assert.Equal(t, models.IceThin, summaries[0].ModeType)
		assert.Equal(t, 1.0, summaries[0].Agreement)
		assert.Equal(t, ClassUniform, summaries[0].Classification)
	})

	t.Run("output sorted by station code", func(t *testing.T) {
		stations := []models.Station{testStation("AMLR2015-09"), testStation("AMLR2015-01")}
		obs := []models.IceObservation{nearObs("", models.IceOpenWater)}

		summaries := Summarize(stations, obs, NeighborhoodRadiusMeters)
		require.Len(t, summaries, 2)
		assert.Equal(t, "AMLR2015-01", summaries[0].StationCode)
		assert.Equal(t, "AMLR2015-09", summaries[1].StationCode)
	})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassUniform, Classify(0.90))
	assert.Equal(t, ClassUniform, Classify(1.0))
	assert.Equal(t, ClassIntermediate, Classify(0.667))
	assert.Equal(t, ClassIntermediate, Classify(0.50))
	assert.Equal(t, ClassMixed, Classify(0.49))
}
