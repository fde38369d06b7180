package effort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

func station(code string, nmi float64) models.Station {
	return models.Station{StationCode: code, SurveyNmi: nmi}
}

func iceObs(code string, iceType models.IceType, coverage float64) models.IceObservation {
	return models.IceObservation{StationCode: code, IceType: iceType, Coverage: coverage}
}

func findCategory(t *testing.T, row models.EffortYearSummary, iceType models.IceType) models.IceCategorySummary {
	t.Helper()
	for _, cat := range row.IceComposition {
		if cat.IceType == iceType {
			return cat
		}
	}
	t.Fatalf("category %s not present in row %s", iceType, row.Label)
	return models.IceCategorySummary{}
}

func TestSummarize(t *testing.T) {
	t.Run("single year effort statistics", func(t *testing.T) {
		stations := []models.Station{
			station("AMLR2015-01", 10.0),
			station("AMLR2015-02", 20.0),
		}

		years, total := Summarize(stations, nil)
		require.Len(t, years, 1)

		row := years[0]
		assert.Equal(t, "2015", row.Label)
		assert.Equal(t, 2, row.StationCount)
		require.NotNil(t, row.MeanSurveyNmi)
		assert.Equal(t, 15.0, *row.MeanSurveyNmi)
		require.NotNil(t, row.SDSurveyNmi)
		assert.InDelta(t, 7.0711, *row.SDSurveyNmi, 0.0001)

		assert.Equal(t, "Total", total.Label)
		assert.Equal(t, 2, total.StationCount)
	})

	t.Run("total row pools raw records, not per-year means", func(t *testing.T) {
		// 2014 has one station at 30 nmi, 2015 has three at 10 nmi.
		// Mean of per-year means would be 20; the pooled mean is 15.
		stations := []models.Station{
			station("AMLR2014-01", 30.0),
			station("AMLR2015-01", 10.0),
			station("AMLR2015-02", 10.0),
			station("AMLR2015-03", 10.0),
		}

		years, total := Summarize(stations, nil)
		require.Len(t, years, 2)

		require.NotNil(t, total.MeanSurveyNmi)
		assert.Equal(t, 15.0, *total.MeanSurveyNmi)
		assert.Equal(t, 4, total.StationCount)
	})

	t.Run("unparseable codes excluded per-year but pooled into total", func(t *testing.T) {
		stations := []models.Station{
			station("AMLR2015-01", 10.0),
			station("UNKNOWN-99", 50.0),
		}

		years, total := Summarize(stations, nil)
		require.Len(t, years, 1)
		assert.Equal(t, 1, years[0].StationCount)

		assert.Equal(t, 2, total.StationCount)
		require.NotNil(t, total.MeanSurveyNmi)
		assert.Equal(t, 30.0, *total.MeanSurveyNmi)
	})

	t.Run("single station has undefined spread", func(t *testing.T) {
		years, _ := Summarize([]models.Station{station("AMLR2015-01", 10.0)}, nil)
		require.Len(t, years, 1)
		assert.NotNil(t, years[0].MeanSurveyNmi)
		assert.Nil(t, years[0].SDSurveyNmi)
	})

	t.Run("ice composition with binomial standard error", func(t *testing.T) {
		obs := []models.IceObservation{
			iceObs("AMLR2015-01", models.IceMultiYear, 0.8),
			iceObs("AMLR2015-02", models.IceMultiYear, 0.4),
			iceObs("AMLR2015-03", models.IceFirstYear, 0.5),
		}

		years, _ := Summarize(nil, obs)
		require.Len(t, years, 1)

		row := years[0]
		assert.Equal(t, "2015", row.Label)
		require.Len(t, row.IceComposition, 4)

		my := findCategory(t, row, models.IceMultiYear)
		assert.Equal(t, 2, my.ObservationCount)
		require.NotNil(t, my.MeanCoverage)
		assert.InDelta(t, 0.6, *my.MeanCoverage, 1e-12)
		require.NotNil(t, my.StdError)
		// sqrt(0.6*0.4/2)
		assert.InDelta(t, 0.34641, *my.StdError, 0.0001)

		// Present category with no observations: zero count, undefined stats
		ow := findCategory(t, row, models.IceOpenWater)
		assert.Equal(t, 0, ow.ObservationCount)
		assert.Nil(t, ow.MeanCoverage)
		assert.Nil(t, ow.StdError)
	})

	t.Run("empty input yields no year rows and an empty total", func(t *testing.T) {
		years, total := Summarize(nil, nil)
		assert.Empty(t, years)
		assert.Equal(t, 0, total.StationCount)
		assert.Nil(t, total.MeanSurveyNmi)
		assert.Nil(t, total.SDSurveyNmi)
	})
}
