package config

import (
    "testing"
)

func TestDefaults(t *testing.T) {
    cfg := Default()
    if cfg.Server.Port != "8080" {
        t.Fatalf("unexpected default port: %s", cfg.Server.Port)
    }
    if cfg.AlphaVantage.CacheTTLMinutes != 60 {
        t.Fatalf("unexpected default cache TTL: %d", cfg.AlphaVantage.CacheTTLMinutes)
    }
    if cfg.AlphaVantage.APIKey != "" {
        t.Fatal("API key must not have a default")
    }
}

func TestLoad_EnvOverrides(t *testing.T) {
    t.Setenv("PORT", "9090")
    t.Setenv("ALPHAVANTAGE_API_KEY", "secret")
    t.Setenv("CACHE_TTL_MIN", "5")

    cfg, err := Load("")
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if cfg.Server.Port != "9090" {
        t.Fatalf("PORT override ignored: %s", cfg.Server.Port)
    }
    if cfg.AlphaVantage.APIKey != "secret" {
        t.Fatal("API key override ignored")
    }
    if cfg.AlphaVantage.CacheTTLMinutes != 5 {
        t.Fatalf("CACHE_TTL_MIN override ignored: %d", cfg.AlphaVantage.CacheTTLMinutes)
    }
}

func TestLoad_LegacyKeyAlias(t *testing.T) {
    t.Setenv("STOCK_API_KEY", "legacy")

    cfg, err := Load("")
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if cfg.AlphaVantage.APIKey != "legacy" {
        t.Fatal("STOCK_API_KEY alias ignored")
    }
}
