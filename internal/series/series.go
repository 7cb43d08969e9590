package series

import (
    "sort"
    "strconv"

    "stockprices/internal/provider/alphavantage"
)

// PricePoint is one (date, price) pair of a normalized series.
type PricePoint struct {
    Date  string  `json:"date"`
    Price float64 `json:"price"`
    // Malformed marks a point whose adjusted close failed to parse and was
    // defaulted to zero. Not part of the response payload.
    Malformed bool `json:"-"`
}

// TimeSeries is a normalized price series ordered descending by date
// (most recent first). At most one point per date.
type TimeSeries []PricePoint

// Normalize converts a raw daily series into a TimeSeries, keeping only
// dates >= startingFrom. Dates are zero-padded ISO strings, so plain string
// comparison is a date comparison. Raw map order is meaningless, so the
// result is sorted explicitly.
func Normalize(raw alphavantage.DailySeries, startingFrom string) TimeSeries {
    dates := make([]string, 0, len(raw))
    for date := range raw {
        if date >= startingFrom {
            dates = append(dates, date)
        }
    }
    sort.Sort(sort.Reverse(sort.StringSlice(dates)))

    out := make(TimeSeries, 0, len(dates))
    for _, date := range dates {
        price, err := strconv.ParseFloat(raw[date].AdjustedClose, 64)
        if err != nil {
            // Keep the point with a zero price rather than dropping the day.
            out = append(out, PricePoint{Date: date, Malformed: true})
            continue
        }
        out = append(out, PricePoint{Date: date, Price: price})
    }
    return out
}

// MergeLatest returns a copy of ts with the point for today replaced by the
// latest intraday price. A nil latest leaves the series unchanged. If the
// series has no point for today, today's price is dropped rather than
// appended: the daily series has not closed that day yet.
func MergeLatest(ts TimeSeries, latest *float64, today string) TimeSeries {
    out := make(TimeSeries, len(ts))
    copy(out, ts)
    if latest == nil {
        return out
    }
    for i := range out {
        if out[i].Date == today {
            out[i].Price = *latest
            out[i].Malformed = false
            break
        }
    }
    return out
}
