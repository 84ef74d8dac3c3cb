package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goalwatch/goalwatch/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	ProviderLive    = "live"
	ProviderFixture = "fixture"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	DataProvider string

	OpenLigaBaseURL               string
	OpenLigaLeague                string
	OpenLigaSeason                int
	OpenLigaTimeout               time.Duration
	OpenLigaMaxRetries            int
	OpenLigaCircuitEnabled        bool
	OpenLigaCircuitFailureCount   int
	OpenLigaCircuitOpenTimeout    time.Duration
	OpenLigaCircuitHalfOpenMaxReq int

	SportsDBBaseURL               string
	SportsDBAPIKey                string
	SportsDBTimeout               time.Duration
	SportsDBMaxRetries            int
	SportsDBCircuitEnabled        bool
	SportsDBCircuitFailureCount   int
	SportsDBCircuitOpenTimeout    time.Duration
	SportsDBCircuitHalfOpenMaxReq int

	LogoWorkers int

	PageCacheEnabled bool
	PageCacheTTL     time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataProvider := strings.ToLower(strings.TrimSpace(getEnv("DATA_PROVIDER", ProviderLive)))
	switch dataProvider {
	case ProviderLive, ProviderFixture:
	default:
		return Config{}, fmt.Errorf("invalid DATA_PROVIDER %q: valid values are %s, %s", dataProvider, ProviderLive, ProviderFixture)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	openLigaSeason, err := getEnvAsInt("OPENLIGA_SEASON", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_SEASON: %w", err)
	}
	if openLigaSeason < 0 {
		return Config{}, fmt.Errorf("OPENLIGA_SEASON must be >= 0")
	}
	openLigaTimeout, err := time.ParseDuration(getEnv("OPENLIGA_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_TIMEOUT: %w", err)
	}
	if openLigaTimeout <= 0 {
		return Config{}, fmt.Errorf("OPENLIGA_TIMEOUT must be > 0")
	}
	openLigaMaxRetries, err := getEnvAsInt("OPENLIGA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_MAX_RETRIES: %w", err)
	}
	if openLigaMaxRetries < 0 {
		return Config{}, fmt.Errorf("OPENLIGA_MAX_RETRIES must be >= 0")
	}
	openLigaCircuitEnabled, err := strconv.ParseBool(getEnv("OPENLIGA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_CIRCUIT_ENABLED: %w", err)
	}
	openLigaCircuitFailureCount, err := getEnvAsInt("OPENLIGA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if openLigaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("OPENLIGA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	openLigaCircuitOpenTimeout, err := time.ParseDuration(getEnv("OPENLIGA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if openLigaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("OPENLIGA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	openLigaCircuitHalfOpenMaxReq, err := getEnvAsInt("OPENLIGA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPENLIGA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if openLigaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("OPENLIGA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	sportsDBTimeout, err := time.ParseDuration(getEnv("SPORTSDB_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_TIMEOUT: %w", err)
	}
	if sportsDBTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDB_TIMEOUT must be > 0")
	}
	sportsDBMaxRetries, err := getEnvAsInt("SPORTSDB_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_MAX_RETRIES: %w", err)
	}
	if sportsDBMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTSDB_MAX_RETRIES must be >= 0")
	}
	sportsDBCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTSDB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_ENABLED: %w", err)
	}
	sportsDBCircuitFailureCount, err := getEnvAsInt("SPORTSDB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sportsDBCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sportsDBCircuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTSDB_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sportsDBCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sportsDBCircuitHalfOpenMaxReq, err := getEnvAsInt("SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sportsDBCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	logoWorkers, err := getEnvAsInt("LOGO_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOGO_WORKERS: %w", err)
	}
	if logoWorkers < 1 {
		return Config{}, fmt.Errorf("LOGO_WORKERS must be >= 1")
	}

	pageCacheEnabled, err := strconv.ParseBool(getEnv("PAGE_CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAGE_CACHE_ENABLED: %w", err)
	}
	// Whole-page data revalidates on this interval rather than per request.
	pageCacheTTL, err := time.ParseDuration(getEnv("PAGE_CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PAGE_CACHE_TTL: %w", err)
	}
	if pageCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PAGE_CACHE_TTL must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "goalwatch-web"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		DataProvider: dataProvider,

		OpenLigaBaseURL:               strings.TrimSpace(getEnv("OPENLIGA_BASE_URL", "https://api.openligadb.de")),
		OpenLigaLeague:                strings.TrimSpace(getEnv("OPENLIGA_LEAGUE", "gb1")),
		OpenLigaSeason:                openLigaSeason,
		OpenLigaTimeout:               openLigaTimeout,
		OpenLigaMaxRetries:            openLigaMaxRetries,
		OpenLigaCircuitEnabled:        openLigaCircuitEnabled,
		OpenLigaCircuitFailureCount:   openLigaCircuitFailureCount,
		OpenLigaCircuitOpenTimeout:    openLigaCircuitOpenTimeout,
		OpenLigaCircuitHalfOpenMaxReq: openLigaCircuitHalfOpenMaxReq,

		SportsDBBaseURL:               strings.TrimSpace(getEnv("SPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json")),
		SportsDBAPIKey:                strings.TrimSpace(getEnv("SPORTSDB_API_KEY", "3")),
		SportsDBTimeout:               sportsDBTimeout,
		SportsDBMaxRetries:            sportsDBMaxRetries,
		SportsDBCircuitEnabled:        sportsDBCircuitEnabled,
		SportsDBCircuitFailureCount:   sportsDBCircuitFailureCount,
		SportsDBCircuitOpenTimeout:    sportsDBCircuitOpenTimeout,
		SportsDBCircuitHalfOpenMaxReq: sportsDBCircuitHalfOpenMaxReq,

		LogoWorkers: logoWorkers,

		PageCacheEnabled: pageCacheEnabled,
		PageCacheTTL:     pageCacheTTL,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if cfg.OpenLigaLeague == "" {
		return Config{}, fmt.Errorf("OPENLIGA_LEAGUE cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
