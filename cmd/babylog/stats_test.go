package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportStatsString(t *testing.T) {
	s := Stats{Messages: 10, Imported: 6, Duplicates: 3, Skipped: 1}
	require.Equal(t, "messages=10 imported=6 duplicates=3 skipped=1", s.String())
}

func TestAvgPerDay(t *testing.T) {
	require.Equal(t, 7.0, avgPerDay(21, 3))
	require.Equal(t, 0.0, avgPerDay(0, 5))
	require.InDelta(t, 2.33, avgPerDay(7, 3), 0.01)
}
