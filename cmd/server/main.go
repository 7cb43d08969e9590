package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockprices/internal/cache"
	"stockprices/internal/config"
	"stockprices/internal/handler"
	"stockprices/internal/httpx"
	"stockprices/internal/provider/alphavantage"
	"stockprices/internal/ratelimit"
	"stockprices/internal/stock"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AlphaVantage.APIKey == "" {
		log.Println("warning: ALPHAVANTAGE_API_KEY not set; upstream calls will fail")
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	opts := []alphavantage.ClientOption{alphavantage.WithHTTPClient(httpClient)}
	if cfg.AlphaVantage.Endpoint != "" {
		opts = append(opts, alphavantage.WithBaseURL(cfg.AlphaVantage.Endpoint))
	}
	if cfg.AlphaVantage.MaxRequestsPerMinute > 0 {
		burst := cfg.AlphaVantage.Burst
		if burst <= 0 {
			burst = 1
		}
		opts = append(opts, alphavantage.WithLimiter(ratelimit.PerMinute(cfg.AlphaVantage.MaxRequestsPerMinute, burst)))
	}
	client, err := alphavantage.NewClient(cfg.AlphaVantage.APIKey, opts...)
	if err != nil {
		log.Fatalf("alphavantage client: %v", err)
	}

	dailyCache := cache.New[alphavantage.DailySeries](time.Duration(cfg.AlphaVantage.CacheTTLMinutes) * time.Minute)
	stocks := stock.New(client, dailyCache)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())
	handler.New(stocks).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
