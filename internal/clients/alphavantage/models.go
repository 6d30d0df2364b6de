package alphavantage

// Quote is a parsed GLOBAL_QUOTE result.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent string  `json:"change_percent"`
	Volume        int64   `json:"volume"`
	PreviousClose float64 `json:"previous_close"`
}

// DailyBar is one day's closing price from TIME_SERIES_DAILY.
type DailyBar struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// globalQuoteResponse mirrors the GLOBAL_QUOTE payload. Alpha Vantage keys
// its fields with numeric prefixes and reports all values as strings.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Volume        string `json:"06. volume"`
		PreviousClose string `json:"08. previous close"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
	Note        string `json:"Note,omitempty"`
	Information string `json:"Information,omitempty"`
}

// dailySeriesResponse mirrors the TIME_SERIES_DAILY payload.
type dailySeriesResponse struct {
	TimeSeries  map[string]dailyBar `json:"Time Series (Daily)"`
	Note        string              `json:"Note,omitempty"`
	Information string              `json:"Information,omitempty"`
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
