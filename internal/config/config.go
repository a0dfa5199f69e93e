package config

import (
	"crypto/rsa"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	MaxUploadBytes   int64
}

type DatabaseConfig struct {
	// Enabled switches persistence to postgres; otherwise the server keeps
	// profiles, analyses and budgets in memory
	Enabled         bool
	// AutoMigrate applies db/migrations at startup; SeedSQL then runs db/seeds
	AutoMigrate     bool
	SeedSQL         bool
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	SessionTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	// AuditRetention is how long audit entries are kept; zero keeps them forever
	AuditRetention time.Duration
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
}

// Enabled reports whether LLM calls are configured. Without a key every
// request takes the heuristic path.
func (c *GeminiConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type StorageConfig struct {
	Bucket string
	Prefix string
}

// Enabled reports whether uploaded statements are archived
func (c *StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

type AnalysisConfig struct {
	LLMCategorization     bool
	MaxTransactionsForLLM int
	Timeout               time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           envString("SERVER_PORT", "8080"),
			Host:           envString("SERVER_HOST", "localhost"),
			Environment:    envString("APP_ENV", "development"),
			ReadTimeout:    envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   envDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 5<<20),
		},
		Database: DatabaseConfig{
			Enabled:         envBool("DB_ENABLED", false),
			AutoMigrate:     envBool("AUTO_MIGRATE", false),
			SeedSQL:         envBool("SEED_DATABASE", false),
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "finn"),
			Password:        envString("DB_PASSWORD", "finn_password"),
			Name:            envString("DB_NAME", "finn"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 10),
			AuditRetention:     envDuration("AUDIT_RETENTION", 90*24*time.Hour),
		},
		JWT: JWTConfig{
			SessionTokenDuration: envDuration("JWT_SESSION_TOKEN_DURATION", 30*24*time.Hour),
			Issuer:               envString("JWT_ISSUER", "finn-budget"),
		},
		Gemini: GeminiConfig{
			APIKey:         envString("GEMINI_API_KEY", ""),
			Model:          envString("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:        envDuration("GEMINI_TIMEOUT", 30*time.Second),
			MaxRetries:     envInt("GEMINI_MAX_RETRIES", 2),
			InitialBackoff: envDuration("GEMINI_INITIAL_BACKOFF", time.Second),
		},
		Storage: StorageConfig{
			Bucket: envString("STATEMENT_BUCKET", ""),
			Prefix: envString("STATEMENT_PREFIX", "statements"),
		},
		Analysis: AnalysisConfig{
			LLMCategorization:     envBool("ANALYSIS_LLM_CATEGORIZATION", true),
			MaxTransactionsForLLM: envInt("ANALYSIS_MAX_LLM_TRANSACTIONS", 200),
			Timeout:               envDuration("ANALYSIS_TIMEOUT", 45*time.Second),
		},
	}
	cfg.Server.CORSAllowOrigins = splitOrigins(os.Getenv("CORS_ALLOW_ORIGINS"))
	if cfg.IsProduction() && cfg.Server.CORSAllowOrigins[0] == "*" {
		log.Println("WARNING: CORS_ALLOW_ORIGINS is unset in production; every origin is allowed")
	}

	priv, pub, err := signingKeys(os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY"), cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to load RSA keys: ", err)
	}
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey = priv, pub

	return cfg
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

func (c *Config) IsDevelopment() bool { return c.Server.Environment == "development" }
func (c *Config) IsProduction() bool  { return c.Server.Environment == "production" }
func (c *Config) IsTesting() bool     { return c.Server.Environment == "testing" }

// splitOrigins parses a comma separated origin list; empty means any origin.
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// lookup returns the parsed value of key, or fallback when the variable is
// unset, empty or unparsable.
func lookup[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

func envString(key, fallback string) string {
	return lookup(key, fallback, func(s string) (string, error) { return s, nil })
}

func envInt(key string, fallback int) int {
	return lookup(key, fallback, strconv.Atoi)
}

func envInt64(key string, fallback int64) int64 {
	return lookup(key, fallback, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
}

func envBool(key string, fallback bool) bool {
	return lookup(key, fallback, strconv.ParseBool)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return lookup(key, fallback, time.ParseDuration)
}
