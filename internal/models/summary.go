package models

// IceModeSummary describes the dominant sea-ice category around one station.
// Stations with no qualifying observations are excluded from mode output
// entirely, so ObservationCount is always at least 1.
type IceModeSummary struct {
	StationCode      string  `json:"station_code"`
	ObservationCount int     `json:"observation_count"`
	ModeType         IceType `json:"mode_type"`
	ModeCount        int     `json:"mode_count"`

	// Agreement is ModeCount / ObservationCount.
	Agreement float64 `json:"agreement"`

	// Classification is "uniform", "mixed" or "intermediate" per the
	// report thresholds.
	Classification string `json:"classification"`
}

// IceCategorySummary holds per-category ice composition statistics for one
// summary row. A category with no observations keeps its zero count but has
// nil mean and standard error: undefined, not 0 and not NaN.
type IceCategorySummary struct {
	IceType          IceType  `json:"ice_type"`
	ObservationCount int      `json:"observation_count"`
	MeanCoverage     *float64 `json:"mean_coverage,omitempty"`
	StdError         *float64 `json:"std_error,omitempty"`
}

// EffortYearSummary is one row of the effort / ice-composition table: either
// a single survey year or the pooled "Total" row. The Total row is computed
// from the pooled raw records with the same formulas, never averaged from
// the per-year rows.
type EffortYearSummary struct {
	// Label is the 4-digit year, or "Total" for the pooled row.
	Label string `json:"label"`

	StationCount  int      `json:"station_count"`
	MeanSurveyNmi *float64 `json:"mean_survey_nmi,omitempty"`

	// SDSurveyNmi is the sample (n-1) standard deviation; nil when fewer
	// than two stations contribute.
	SDSurveyNmi *float64 `json:"sd_survey_nmi,omitempty"`

	IceComposition []IceCategorySummary `json:"ice_composition"`
}
