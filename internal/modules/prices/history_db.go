package prices

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog"
)

// HistoryStore persists daily closing prices, one SQLite file per symbol.
type HistoryStore struct {
	historyDir string
	log        zerolog.Logger
}

// NewHistoryStore creates a history store rooted at historyDir.
func NewHistoryStore(historyDir string, log zerolog.Logger) *HistoryStore {
	return &HistoryStore{
		historyDir: historyDir,
		log:        log.With().Str("component", "history_store").Logger(),
	}
}

// DailyClose is one stored price point.
type DailyClose struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// SaveDailyCloses upserts a batch of closes for a symbol.
func (h *HistoryStore) SaveDailyCloses(symbol string, closes []DailyClose) error {
	db, err := h.openHistoryDB(symbol, true)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO daily_prices (date, close_price)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET close_price = excluded.close_price
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range closes {
		if _, err := stmt.Exec(c.Date, c.Close); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert close for %s on %s: %w", symbol, c.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history for %s: %w", symbol, err)
	}

	h.log.Debug().Str("symbol", symbol).Int("points", len(closes)).Msg("Saved daily closes")
	return nil
}

// DailyCloses fetches up to `limit` closes for a symbol, oldest to newest.
func (h *HistoryStore) DailyCloses(symbol string, limit int) ([]float64, error) {
	db, err := h.openHistoryDB(symbol, false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT close_price
		FROM daily_prices
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily closes: %w", err)
	}
	defer rows.Close()

	var newestFirst []float64
	for rows.Next() {
		var close float64
		if err := rows.Scan(&close); err != nil {
			return nil, fmt.Errorf("failed to scan daily close: %w", err)
		}
		newestFirst = append(newestFirst, close)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily closes: %w", err)
	}

	// Reverse into chronological order.
	closes := make([]float64, len(newestFirst))
	for i, v := range newestFirst {
		closes[len(newestFirst)-1-i] = v
	}
	return closes, nil
}

// LatestClose returns the most recent stored close for a symbol.
func (h *HistoryStore) LatestClose(symbol string) (float64, error) {
	db, err := h.openHistoryDB(symbol, false)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var close float64
	err = db.QueryRow(`SELECT close_price FROM daily_prices ORDER BY date DESC LIMIT 1`).Scan(&close)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no stored prices for %s", symbol)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query latest close for %s: %w", symbol, err)
	}
	return close, nil
}

// openHistoryDB opens the per-symbol database, optionally creating it.
func (h *HistoryStore) openHistoryDB(symbol string, create bool) (*sql.DB, error) {
	// Convert symbol format: BRK.B -> BRK_B
	dbSymbol := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(symbol)), ".", "_")
	dbPath := filepath.Join(h.historyDir, dbSymbol+".db")

	if create {
		if err := os.MkdirAll(h.historyDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	} else if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no history database for %s", symbol)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database for %s: %w", symbol, err)
	}

	if create {
		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS daily_prices (
				date TEXT PRIMARY KEY,
				close_price REAL NOT NULL
			)
		`); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create history schema for %s: %w", symbol, err)
		}
	}

	return db, nil
}
