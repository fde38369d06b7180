package effort

import (
	"fmt"
	"strconv"
)

// StationCodePrefix is the literal prefix every campaign station code
// carries, immediately followed by the 4-digit survey year.
const StationCodePrefix = "AMLR"

// ParseStationYear extracts the survey year from a station code such as
// "AMLR2015-01": the code must start with the AMLR prefix followed by a run
// of exactly four digits. Anything else is an error; a failed parse never
// yields a zero year that could leak into arithmetic.
func ParseStationYear(code string) (int, error) {
	if len(code) < len(StationCodePrefix)+4 {
		return 0, fmt.Errorf("station code %q too short for %s prefix and year", code, StationCodePrefix)
	}
	if code[:len(StationCodePrefix)] != StationCodePrefix {
		return 0, fmt.Errorf("station code %q missing %s prefix", code, StationCodePrefix)
	}

	digits := code[len(StationCodePrefix) : len(StationCodePrefix)+4]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("station code %q has no 4-digit year after %s prefix", code, StationCodePrefix)
		}
	}

	// A fifth consecutive digit means the year run is longer than four
	// digits, which no campaign code uses.
	if len(code) > len(StationCodePrefix)+4 {
		next := code[len(StationCodePrefix)+4]
		if next >= '0' && next <= '9' {
			return 0, fmt.Errorf("station code %q year run exceeds 4 digits", code)
		}
	}

	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("failed to parse year from station code %q: %w", code, err)
	}

	return year, nil
}
