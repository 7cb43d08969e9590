package alphavantage

import (
	"context"
	"fmt"
)

// DailyEntry is one day of the TIME_SERIES_DAILY_ADJUSTED response. All
// values are string-encoded numbers, exactly as the provider sends them.
type DailyEntry struct {
	Open             string `json:"1. open"`
	High             string `json:"2. high"`
	Low              string `json:"3. low"`
	Close            string `json:"4. close"`
	AdjustedClose    string `json:"5. adjusted close"`
	Volume           string `json:"6. volume"`
	DividendAmount   string `json:"7. dividend amount"`
	SplitCoefficient string `json:"8. split coefficient"`
}

// DailySeries maps ISO dates (2006-01-02) to daily entries.
type DailySeries map[string]DailyEntry

type dailyResponse struct {
	TimeSeries DailySeries `json:"Time Series (Daily)"`
}

// DailyAdjusted fetches the adjusted daily series for a symbol. A reachable
// upstream that returns no series yields ErrNoTimeSeries.
func (c *Client) DailyAdjusted(ctx context.Context, symbol string) (DailySeries, error) {
	var body dailyResponse
	if err := c.get(ctx, "TIME_SERIES_DAILY_ADJUSTED", symbol, nil, &body); err != nil {
		return nil, fmt.Errorf("daily adjusted %q: %w", symbol, err)
	}
	if len(body.TimeSeries) == 0 {
		return nil, fmt.Errorf("daily adjusted %q: %w", symbol, ErrNoTimeSeries)
	}
	return body.TimeSeries, nil
}
