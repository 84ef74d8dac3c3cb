package config

import (
	"strings"
	"testing"
	"time"

	"github.com/goalwatch/goalwatch/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "goalwatch-web" {
		t.Fatalf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DataProvider != ProviderLive {
		t.Fatalf("DataProvider = %q, want %q", cfg.DataProvider, ProviderLive)
	}
	if cfg.OpenLigaLeague != "gb1" {
		t.Fatalf("OpenLigaLeague = %q", cfg.OpenLigaLeague)
	}
	if cfg.OpenLigaSeason != 0 {
		t.Fatalf("OpenLigaSeason = %d, want 0", cfg.OpenLigaSeason)
	}
	if cfg.SportsDBAPIKey != "3" {
		t.Fatalf("SportsDBAPIKey = %q", cfg.SportsDBAPIKey)
	}
	if !cfg.PageCacheEnabled {
		t.Fatal("PageCacheEnabled = false, want true")
	}
	if cfg.PageCacheTTL != time.Hour {
		t.Fatalf("PageCacheTTL = %v, want 1h", cfg.PageCacheTTL)
	}
	if cfg.LogoWorkers != 8 {
		t.Fatalf("LogoWorkers = %d, want 8", cfg.LogoWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("DATA_PROVIDER", "fixture")
	t.Setenv("OPENLIGA_LEAGUE", "bl1")
	t.Setenv("OPENLIGA_SEASON", "2025")
	t.Setenv("OPENLIGA_MAX_RETRIES", "3")
	t.Setenv("PAGE_CACHE_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.DataProvider != ProviderFixture {
		t.Fatalf("DataProvider = %q, want %q", cfg.DataProvider, ProviderFixture)
	}
	if cfg.OpenLigaLeague != "bl1" {
		t.Fatalf("OpenLigaLeague = %q", cfg.OpenLigaLeague)
	}
	if cfg.OpenLigaSeason != 2025 {
		t.Fatalf("OpenLigaSeason = %d", cfg.OpenLigaSeason)
	}
	if cfg.OpenLigaMaxRetries != 3 {
		t.Fatalf("OpenLigaMaxRetries = %d", cfg.OpenLigaMaxRetries)
	}
	if cfg.PageCacheTTL != 30*time.Minute {
		t.Fatalf("PageCacheTTL = %v", cfg.PageCacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "bad app env", key: "APP_ENV", value: "local", want: "APP_ENV"},
		{name: "bad provider", key: "DATA_PROVIDER", value: "memory", want: "DATA_PROVIDER"},
		{name: "negative season", key: "OPENLIGA_SEASON", value: "-1", want: "OPENLIGA_SEASON"},
		{name: "bad retries", key: "OPENLIGA_MAX_RETRIES", value: "lots", want: "OPENLIGA_MAX_RETRIES"},
		{name: "zero cache ttl", key: "PAGE_CACHE_TTL", value: "0s", want: "PAGE_CACHE_TTL"},
		{name: "zero workers", key: "LOGO_WORKERS", value: "0", want: "LOGO_WORKERS"},
		{name: "bad timeout", key: "OPENLIGA_TIMEOUT", value: "soon", want: "OPENLIGA_TIMEOUT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load accepted %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %s", err, tc.want)
			}
		})
	}
}

func TestLoadRequiresDSNWhenUptraceEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted UPTRACE_ENABLED without UPTRACE_DSN")
	}
}
