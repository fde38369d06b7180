package icemode

import (
	"sort"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
	"github.com/antarcticsurvey/amlr-backend-go/internal/spatial"
)

// NeighborhoodRadiusMeters is the fixed radius used to associate ice
// observations with a station.
const NeighborhoodRadiusMeters = 15000.0

// Report thresholds on the agreement fraction.
const (
	UniformThreshold = 0.90
	MixedThreshold   = 0.50
)

// Classification labels
const (
	ClassUniform      = "uniform"
	ClassMixed        = "mixed"
	ClassIntermediate = "intermediate"
)

// Classify maps an agreement fraction to its report classification.
func Classify(agreement float64) string {
	switch {
	case agreement >= UniformThreshold:
		return ClassUniform
	case agreement < MixedThreshold:
		return ClassMixed
	default:
		return ClassIntermediate
	}
}

// Summarize computes, for each station, the modal ice category among all
// observations within radiusMeters of the station, together with the
// agreement fraction (modal count over total count). Ties are broken by ice
// thickness: multi-year beats first-year beats thin beats open water.
// Stations with no qualifying observations are omitted, never reported with
// an undefined mode. Output is sorted by station code.
func Summarize(stations []models.Station, observations []models.IceObservation, radiusMeters float64) []models.IceModeSummary {
	var summaries []models.IceModeSummary

	for _, station := range stations {
		counts := make(map[models.IceType]int)
		total := 0

		for _, obs := range observations {
			d := spatial.HaversineDistance(station.Latitude, station.Longitude, obs.Latitude, obs.Longitude)
			if d > radiusMeters {
				continue
			}
			counts[obs.IceType]++
			total++
		}

		if total == 0 {
			continue
		}

		// Walk categories from thickest to thinnest so the thicker
		// category wins a tie.
		types := models.IceTypes()
		mode := types[len(types)-1]
		modeCount := 0
		for i := len(types) - 1; i >= 0; i-- {
			if counts[types[i]] > modeCount {
				mode = types[i]
				modeCount = counts[types[i]]
			}
		}

		agreement := float64(modeCount) / float64(total)
		summaries = append(summaries, models.IceModeSummary{
			StationCode:      station.StationCode,
			ObservationCount: total,
			ModeType:         mode,
			ModeCount:        modeCount,
			Agreement:        agreement,
			Classification:   Classify(agreement),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StationCode < summaries[j].StationCode
	})

	return summaries
}
