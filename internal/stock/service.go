package stock

import (
    "context"
    "errors"
    "fmt"
    "log"
    "time"

    "stockprices/internal/cache"
    "stockprices/internal/provider/alphavantage"
    "stockprices/internal/series"
)

// ErrNoData reports that the upstream was reachable but had no series for
// the ticker. Callers surface it as "not found" rather than a server fault.
var ErrNoData = errors.New("no data for ticker")

// MarketData is the upstream surface the service needs.
type MarketData interface {
    DailyAdjusted(ctx context.Context, symbol string) (alphavantage.DailySeries, error)
    Intraday(ctx context.Context, symbol string) (alphavantage.IntradaySeries, error)
}

// Response is the payload for one stock query.
type Response struct {
    Stock      string            `json:"stock"`
    Currency   string            `json:"currency"` // fixed for now, future development
    TimeSeries series.TimeSeries `json:"timeSeries"`
}

// Service answers stock queries: cached-or-fetched daily series, normalized
// and topped up with the latest intraday close.
type Service struct {
    client MarketData
    daily  *cache.Store[alphavantage.DailySeries]
    now    func() time.Time
}

func New(client MarketData, daily *cache.Store[alphavantage.DailySeries]) *Service {
    return &Service{client: client, daily: daily, now: time.Now}
}

// Query builds the normalized time series for ticker from startingFrom on.
// The daily series is served from cache when fresh; a successful fetch
// refreshes the cache. The intraday call is best effort: its failure is
// logged and the response is built from daily data alone.
func (s *Service) Query(ctx context.Context, ticker, startingFrom string) (Response, error) {
    raw, ok := s.daily.Get(ticker)
    if !ok {
        fetched, err := s.client.DailyAdjusted(ctx, ticker)
        if err != nil {
            if errors.Is(err, alphavantage.ErrNoTimeSeries) {
                log.Printf("stock: no daily series for %s: %v", ticker, err)
                return Response{}, fmt.Errorf("ticker %s: %w", ticker, ErrNoData)
            }
            log.Printf("stock: daily fetch failed for %s: %v", ticker, err)
            return Response{}, fmt.Errorf("daily fetch %s: %w", ticker, err)
        }
        s.daily.Put(ticker, fetched)
        raw = fetched
    }

    ts := series.Normalize(raw, startingFrom)

    var latest *float64
    intraday, err := s.client.Intraday(ctx, ticker)
    if err != nil {
        // Best effort: the daily series still answers the request.
        log.Printf("stock: intraday fetch failed for %s: %v", ticker, err)
    } else if price, ok := intraday.LatestClose(); ok {
        latest = &price
    }

    today := s.now().Format("2006-01-02")
    return Response{
        Stock:      ticker,
        Currency:   "USD",
        TimeSeries: series.MergeLatest(ts, latest, today),
    }, nil
}
