package effort

import (
	"fmt"
	"sort"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/stats"
)

// TotalLabel is the label of the pooled summary row.
const TotalLabel = "Total"

// Summarize computes the per-year effort / ice-composition table and the
// pooled Total row.
//
// Per-year rows cover only records whose station code yields a valid year;
// records with unparseable codes are excluded from year grouping but still
// pool into the Total row, which is recomputed from the raw values with the
// same formulas (never a weighted average of the per-year rows).
//
// Effort spread is the sample (n-1) standard deviation, nil below two
// stations. Ice composition reports, per category, the observation count,
// the mean coverage fraction and its binomial standard error
// sqrt(p*(1-p)/n); both are nil for empty categories rather than NaN.
func Summarize(stations []models.Station, observations []models.IceObservation) ([]models.EffortYearSummary, models.EffortYearSummary) {
	effortByYear := make(map[int][]float64)
	var effortPool []float64

	for _, st := range stations {
		effortPool = append(effortPool, st.SurveyNmi)
		year, err := ParseStationYear(st.StationCode)
		if err != nil {
			continue
		}
		effortByYear[year] = append(effortByYear[year], st.SurveyNmi)
	}

	coverageByYear := make(map[int]map[models.IceType][]float64)
	coveragePool := make(map[models.IceType][]float64)

	for _, obs := range observations {
		coveragePool[obs.IceType] = append(coveragePool[obs.IceType], obs.Coverage)
		year, err := ParseStationYear(obs.StationCode)
		if err != nil {
			continue
		}
		if coverageByYear[year] == nil {
			coverageByYear[year] = make(map[models.IceType][]float64)
		}
		coverageByYear[year][obs.IceType] = append(coverageByYear[year][obs.IceType], obs.Coverage)
	}

	years := make(map[int]bool)
	for y := range effortByYear {
		years[y] = true
	}
	for y := range coverageByYear {
		years[y] = true
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	rows := make([]models.EffortYearSummary, 0, len(sorted))
	for _, y := range sorted {
		rows = append(rows, summarizeGroup(fmt.Sprintf("%d", y), effortByYear[y], coverageByYear[y]))
	}

	total := summarizeGroup(TotalLabel, effortPool, coveragePool)
	return rows, total
}

// summarizeGroup applies the row formulas to one group of raw values.
func summarizeGroup(label string, efforts []float64, coverage map[models.IceType][]float64) models.EffortYearSummary {
	row := models.EffortYearSummary{
		Label:        label,
		StationCount: len(efforts),
	}

	if len(efforts) > 0 {
		mean := stats.Mean(efforts)
		row.MeanSurveyNmi = &mean
	}
	if len(efforts) > 1 {
		sd := stats.StdDev(efforts)
		row.SDSurveyNmi = &sd
	}

	for _, t := range models.IceTypes() {
		values := coverage[t]
		cat := models.IceCategorySummary{
			IceType:          t,
			ObservationCount: len(values),
		}
		if len(values) > 0 {
			p := stats.Mean(values)
			cat.MeanCoverage = &p
			if se, ok := stats.BinomialStdErr(p, len(values)); ok {
				cat.StdError = &se
			}
		}
		row.IceComposition = append(row.IceComposition, cat)
	}

	return row
}
