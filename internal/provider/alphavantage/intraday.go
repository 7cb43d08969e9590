package alphavantage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// IntradayEntry is one bucket of the TIME_SERIES_INTRADAY response.
type IntradayEntry struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// IntradaySeries maps "2006-01-02 15:04:05" timestamps to intraday entries.
type IntradaySeries map[string]IntradayEntry

type intradayResponse struct {
	TimeSeries IntradaySeries `json:"Time Series (60min)"`
}

// Intraday fetches the 60-minute intraday series for a symbol. A reachable
// upstream that returns no series yields ErrNoTimeSeries.
func (c *Client) Intraday(ctx context.Context, symbol string) (IntradaySeries, error) {
	var body intradayResponse
	extra := url.Values{"interval": []string{"60min"}}
	if err := c.get(ctx, "TIME_SERIES_INTRADAY", symbol, extra, &body); err != nil {
		return nil, fmt.Errorf("intraday %q: %w", symbol, err)
	}
	if len(body.TimeSeries) == 0 {
		return nil, fmt.Errorf("intraday %q: %w", symbol, ErrNoTimeSeries)
	}
	return body.TimeSeries, nil
}

// LatestClose returns the closing price of the newest bucket. Timestamps are
// zero-padded, so the lexicographically greatest key is the newest. A close
// that fails to parse counts as 0 rather than an error; an empty series
// reports ok=false.
func (s IntradaySeries) LatestClose() (float64, bool) {
	latest := ""
	for ts := range s {
		if ts > latest {
			latest = ts
		}
	}
	if latest == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(s[latest].Close, 64)
	if err != nil {
		return 0, true
	}
	return price, true
}
