package prices

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_RoundTrip(t *testing.T) {
	store := NewHistoryStore(t.TempDir(), zerolog.Nop())

	err := store.SaveDailyCloses("BRK.B", []DailyClose{
		{Date: "2024-01-02", Close: 101},
		{Date: "2024-01-01", Close: 100},
		{Date: "2024-01-03", Close: 102},
	})
	require.NoError(t, err)

	closes, err := store.DailyCloses("BRK.B", 30)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 101, 102}, closes)

	latest, err := store.LatestClose("BRK.B")
	require.NoError(t, err)
	require.InDelta(t, 102, latest, 1e-9)

	// Upsert overwrites an existing date.
	err = store.SaveDailyCloses("BRK.B", []DailyClose{{Date: "2024-01-03", Close: 103}})
	require.NoError(t, err)
	latest, err = store.LatestClose("BRK.B")
	require.NoError(t, err)
	require.InDelta(t, 103, latest, 1e-9)
}

func TestHistoryStore_LimitReturnsNewestTail(t *testing.T) {
	store := NewHistoryStore(t.TempDir(), zerolog.Nop())

	require.NoError(t, store.SaveDailyCloses("AAPL", []DailyClose{
		{Date: "2024-01-01", Close: 1},
		{Date: "2024-01-02", Close: 2},
		{Date: "2024-01-03", Close: 3},
	}))

	closes, err := store.DailyCloses("AAPL", 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, closes)
}

func TestHistoryStore_UnknownSymbol(t *testing.T) {
	store := NewHistoryStore(t.TempDir(), zerolog.Nop())

	_, err := store.DailyCloses("NOPE", 10)
	require.Error(t, err)

	_, err = store.LatestClose("NOPE")
	require.Error(t, err)
}
