package prices

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/database"
)

// QuoteRepository stores the last synced quote per symbol in the app
// database. Only raw market data lives here, never computed metrics.
type QuoteRepository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *database.DB, log zerolog.Logger) *QuoteRepository {
	return &QuoteRepository{
		db:  db,
		log: log.With().Str("repo", "quotes").Logger(),
	}
}

// Upsert stores the latest quote for a symbol.
func (r *QuoteRepository) Upsert(symbol string, price float64, source string) error {
	_, err := r.db.Exec(`
		INSERT INTO quotes (symbol, price, source, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			price = excluded.price,
			source = excluded.source,
			updated_at = excluded.updated_at
	`, symbol, price, source, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert quote for %s: %w", symbol, err)
	}
	return nil
}

// Get returns the stored price and source for a symbol.
func (r *QuoteRepository) Get(symbol string) (float64, string, error) {
	var price float64
	var source string
	err := r.db.QueryRow(`SELECT price, source FROM quotes WHERE symbol = ?`, symbol).Scan(&price, &source)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", fmt.Errorf("no quote stored for %s", symbol)
	}
	if err != nil {
		return 0, "", fmt.Errorf("failed to query quote for %s: %w", symbol, err)
	}
	return price, source, nil
}
