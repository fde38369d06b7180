package models

// PredatorSighting is an aggregated predator observation: a species seen at
// a point with a total individual count for a survey year.
type PredatorSighting struct {
	ID        int64   `json:"id" db:"id"`
	Species   string  `json:"species" db:"species"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Count     int     `json:"count" db:"count"`
	Year      int     `json:"year" db:"year"`
}

// ZooplanktonTow is a single net tow: a point with a time-of-day class
// (day or night) and a survey year.
type ZooplanktonTow struct {
	ID        int64   `json:"id" db:"id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	TimeOfDay string  `json:"time_of_day" db:"time_of_day"`
	Year      int     `json:"year" db:"year"`
}

// IceObservation is one sea-ice classification interval recorded along a
// station's transect. Coverage is the observed ice concentration as a
// fraction in [0, 1].
type IceObservation struct {
	ID          int64   `json:"id" db:"id"`
	StationCode string  `json:"station_code" db:"station_code"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`
	IceType     IceType `json:"ice_type" db:"ice_type"`
	Coverage    float64 `json:"coverage" db:"coverage"`
}
