package prices

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristeidis/portfolio-risk/internal/database"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func TestQuoteRepositoryUpsertAndGet(t *testing.T) {
	repo := NewQuoteRepository(testDB(t), zerolog.Nop())

	require.NoError(t, repo.Upsert("AAPL", 195.50, "alphavantage"))

	price, source, err := repo.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 195.50, price)
	assert.Equal(t, "alphavantage", source)

	// Upsert replaces the previous quote.
	require.NoError(t, repo.Upsert("AAPL", 197.25, "store"))
	price, source, err = repo.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 197.25, price)
	assert.Equal(t, "store", source)
}

func TestQuoteRepositoryGetUnknownSymbol(t *testing.T) {
	repo := NewQuoteRepository(testDB(t), zerolog.Nop())

	_, _, err := repo.Get("ZZZZ")
	assert.Error(t, err)
}

func TestWatchlistRepositorySeedAddAll(t *testing.T) {
	repo := NewWatchlistRepository(testDB(t), zerolog.Nop())

	require.NoError(t, repo.Seed([]string{"spy", " AAPL ", ""}))
	// Re-seeding existing symbols is a no-op.
	require.NoError(t, repo.Seed([]string{"SPY"}))
	require.NoError(t, repo.Add("msft"))

	symbols, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "SPY"}, symbols)
}
