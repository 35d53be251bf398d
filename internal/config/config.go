package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nkoroi/county-league/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	StoreBackend string
	DBURL        string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	UploadDir      string
	MaxUploadBytes int64

	CORSAllowedOrigins []string

	AuditWorkers int

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "county-league"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		UploadDir:      getEnv("APP_UPLOAD_DIR", "uploads"),
	}

	cfg.ReadTimeout, err = time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	cfg.WriteTimeout, err = time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", StorePostgres)))
	switch cfg.StoreBackend {
	case StorePostgres, StoreMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q: valid values are %s, %s", cfg.StoreBackend, StorePostgres, StoreMemory)
	}

	cfg.DBURL = strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if cfg.StoreBackend == StorePostgres && cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", StorePostgres)
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET_KEY", ""))
	if cfg.JWTSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("JWT_SECRET_KEY is required when APP_ENV=%s", EnvProd)
		}
		cfg.JWTSecret = "dev-only-secret"
	}

	cfg.AccessTTL, err = time.ParseDuration(getEnv("JWT_ACCESS_TTL", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_ACCESS_TTL: %w", err)
	}
	cfg.RefreshTTL, err = time.ParseDuration(getEnv("JWT_REFRESH_TTL", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_REFRESH_TTL: %w", err)
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return Config{}, fmt.Errorf("token TTLs must be > 0")
	}

	maxUploadMB, err := getEnvAsInt("APP_MAX_UPLOAD_MB", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_MAX_UPLOAD_MB: %w", err)
	}
	if maxUploadMB <= 0 {
		return Config{}, fmt.Errorf("APP_MAX_UPLOAD_MB must be > 0")
	}
	cfg.MaxUploadBytes = int64(maxUploadMB) << 20

	cfg.CORSAllowedOrigins = splitCSV(getEnv("APP_CORS_ALLOWED_ORIGINS", "*"))

	cfg.AuditWorkers, err = getEnvAsInt("AUDIT_LOG_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUDIT_LOG_WORKERS: %w", err)
	}
	if cfg.AuditWorkers <= 0 {
		return Config{}, fmt.Errorf("AUDIT_LOG_WORKERS must be > 0")
	}

	cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))

	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(v))
	switch normalized {
	case EnvDev, EnvStage, EnvProd:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	level, err := logging.ParseLevel(v)
	if err != nil {
		return logging.LevelInfo
	}
	return level
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
