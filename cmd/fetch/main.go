package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"stockprices/internal/cache"
	"stockprices/internal/config"
	"stockprices/internal/httpx"
	"stockprices/internal/provider/alphavantage"
	"stockprices/internal/stock"

	"github.com/joho/godotenv"
)

// fetch runs one query through the same pipeline the server uses and prints
// the response as JSON. Handy for checking an API key or eyeballing a series.
func main() {
	var ticker string
	var from string
	var timeout int
	var configPath string

	flag.StringVar(&ticker, "ticker", getenv("TICKER", "AAPL"), "ticker symbol")
	flag.StringVar(&from, "from", getenv("STARTING_FROM", "2021-01-01"), "inclusive start date (2006-01-02)")
	flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	opts := []alphavantage.ClientOption{alphavantage.WithHTTPClient(httpClient)}
	if cfg.AlphaVantage.Endpoint != "" {
		opts = append(opts, alphavantage.WithBaseURL(cfg.AlphaVantage.Endpoint))
	}
	client, err := alphavantage.NewClient(cfg.AlphaVantage.APIKey, opts...)
	if err != nil {
		log.Fatalf("alphavantage client: %v", err)
	}

	svc := stock.New(client, cache.New[alphavantage.DailySeries](time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec+5)*time.Second)
	defer cancel()

	resp, err := svc.Query(ctx, ticker, from)
	if err != nil {
		log.Fatalf("query: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Fatalf("encode: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
