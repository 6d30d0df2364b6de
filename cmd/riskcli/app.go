package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/clients/alphavantage"
	"github.com/aristeidis/portfolio-risk/internal/config"
	"github.com/aristeidis/portfolio-risk/internal/database"
	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
	"github.com/aristeidis/portfolio-risk/pkg/logger"
)

// app bundles the configuration and logger shared by every subcommand.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs,
	})
	logger.SetGlobalLogger(log)

	return &app{cfg: cfg, log: log}, nil
}

// provider builds the configured price provider. The returned cleanup
// function closes any database the provider opened.
func (a *app) provider() (prices.Provider, func(), error) {
	noop := func() {}

	switch a.cfg.PriceSource {
	case config.SourceLive:
		client := alphavantage.NewClient(a.cfg.AlphaVantageURL, a.cfg.AlphaVantageKey, a.log)
		return prices.NewLiveProvider(client, prices.NewDefaultTableProvider(), a.log), noop, nil

	case config.SourceStore:
		db, err := a.openDatabase()
		if err != nil {
			return nil, nil, err
		}
		store := prices.NewHistoryStore(a.cfg.HistoryDir, a.log)
		quotes := prices.NewQuoteRepository(db, a.log)
		return prices.NewStoreProvider(store, quotes, a.log), func() { _ = db.Close() }, nil

	default:
		return prices.NewDefaultTableProvider(), noop, nil
	}
}

func (a *app) openDatabase() (*database.DB, error) {
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := database.New(filepath.Join(a.cfg.DataDir, "portfolio.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// loadHoldings reads a JSON array of holdings from path, or stdin when path
// is empty or "-". Every entry is validated before analysis.
func loadHoldings(path string) ([]domain.Holding, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open holdings file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var raw []domain.Holding
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse holdings JSON: %w", err)
	}

	holdings := make([]domain.Holding, 0, len(raw))
	for _, h := range raw {
		validated, err := domain.NewHolding(h.Symbol, h.Quantity, h.PurchasePrice, h.PurchaseDate)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, validated)
	}
	return holdings, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
