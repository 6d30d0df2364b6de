package prices

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/database"
)

// WatchlistRepository manages the set of symbols the sync job keeps fresh.
type WatchlistRepository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *database.DB, log zerolog.Logger) *WatchlistRepository {
	return &WatchlistRepository{
		db:  db,
		log: log.With().Str("repo", "watchlist").Logger(),
	}
}

// Seed inserts symbols that are not already present.
func (r *WatchlistRepository) Seed(symbols []string) error {
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" {
			continue
		}
		if _, err := r.db.Exec(
			`INSERT INTO watchlist (symbol) VALUES (?) ON CONFLICT(symbol) DO NOTHING`,
			symbol,
		); err != nil {
			return fmt.Errorf("failed to seed watchlist symbol %s: %w", symbol, err)
		}
	}
	return nil
}

// Add inserts one symbol.
func (r *WatchlistRepository) Add(symbol string) error {
	return r.Seed([]string{symbol})
}

// All returns every watched symbol, alphabetically.
func (r *WatchlistRepository) All() ([]string, error) {
	rows, err := r.db.Query(`SELECT symbol FROM watchlist ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist: %w", err)
	}
	return symbols, nil
}
