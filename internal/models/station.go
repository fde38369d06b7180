package models

// Station represents a fixed survey location visited during a field season.
// The station code embeds the survey year (e.g. "AMLR2015-01"); the year is
// extracted by the effort analysis, never stored redundantly.
type Station struct {
	StationCode string  `json:"station_code" db:"station_code"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`

	// SurveyNmi is the transect distance surveyed from this station,
	// in nautical miles.
	SurveyNmi float64 `json:"survey_nmi" db:"survey_nmi"`
}
