package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "table source needs no key",
			cfg:     Config{PriceSource: SourceTable, HistoryDays: 30},
			wantErr: false,
		},
		{
			name:    "live source without key rejected",
			cfg:     Config{PriceSource: SourceLive, HistoryDays: 30},
			wantErr: true,
		},
		{
			name:    "live source with key accepted",
			cfg:     Config{PriceSource: SourceLive, AlphaVantageKey: "demo", HistoryDays: 30},
			wantErr: false,
		},
		{
			name:    "unknown source rejected",
			cfg:     Config{PriceSource: "yahoo", HistoryDays: 30},
			wantErr: true,
		},
		{
			name:    "too few history days rejected",
			cfg:     Config{PriceSource: SourceTable, HistoryDays: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_WATCHLIST", "aapl, msft ,,spy")
	got := getEnvAsList("TEST_WATCHLIST", nil)
	want := []string{"AAPL", "MSFT", "SPY"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}
