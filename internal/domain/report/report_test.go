// internal/domain/report/report_test.go
package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveRangeDefaultsToLastThirtyDays(t *testing.T) {
	from, to, err := ResolveRange("", "")
	require.NoError(t, err)

	require.Equal(t, 30, int(to.Sub(from).Hours()/24))
	require.True(t, to.After(time.Now().UTC()))
}

func TestResolveRangeParsesExplicitDates(t *testing.T) {
	from, to, err := ResolveRange("2026-08-01", "2026-08-15")
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
	// end date is inclusive, so the half-open bound lands on the next day
	require.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveRangeRejectsInvertedRange(t *testing.T) {
	_, _, err := ResolveRange("2026-08-15", "2026-08-01")
	require.Error(t, err)
}

func TestResolveRangeRejectsMalformedDate(t *testing.T) {
	_, _, err := ResolveRange("15/08/2026", "")
	require.Error(t, err)
}
