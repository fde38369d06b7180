package effort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStationYear(t *testing.T) {
	t.Run("valid codes", func(t *testing.T) {
		for code, want := range map[string]int{
			"AMLR2015-01": 2015,
			"AMLR1998-12": 1998,
			"AMLR2020":    2020,
			"AMLR2003-A":  2003,
		} {
			year, err := ParseStationYear(code)
			require.NoError(t, err, code)
			assert.Equal(t, want, year, code)
		}
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, code := range []string{
			"",
			"AMLR",
			"AMLR15-01",    // too few digits
			"AMLR20155-01", // five-digit run
			"XXLR2015-01",  // wrong prefix
			"2015AMLR-01",  // prefix not leading
			"AMLRabcd-01",  // not digits
		} {
			_, err := ParseStationYear(code)
			assert.Error(t, err, code)
		}
	})
}
