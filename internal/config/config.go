package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Embedding EmbeddingConfig
	Matching  MatchingConfig
	Research  ResearchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
	SlowQueryThreshold    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type JWTConfig struct {
	Secret    string
	Issuer    string
	ExpiresIn time.Duration
}

type EmbeddingConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (e EmbeddingConfig) Enabled() bool {
	return e.APIKey != ""
}

type MatchingConfig struct {
	SemanticWeight float64
	MinScore       float64
	CacheTTL       time.Duration
	MaxTrends      int
	Concurrency    int
	DefaultLimit   int
	MaxLimit       int
}

type ResearchConfig struct {
	UserAgent        string
	HeadlessFallback bool
	Workers          int
	RateLimit        time.Duration
	RequestTimeout   time.Duration
	LookbackYears    int
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func DefaultMatching() MatchingConfig {
	return MatchingConfig{
		SemanticWeight: 0.6,
		MinScore:       10.0,
		CacheTTL:       24 * time.Hour,
		MaxTrends:      3,
		Concurrency:    8,
		DefaultLimit:   10,
		MaxLimit:       100,
	}
}

func DefaultResearch() ResearchConfig {
	return ResearchConfig{
		UserAgent:      "mentor-match-research/1.0",
		Workers:        4,
		RateLimit:      time.Second,
		RequestTimeout: 30 * time.Second,
		LookbackYears:  3,
	}
}

func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv so alternative sources
// (flags, config files) can supply the same keys.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogJSON:     optBool("LOG_JSON", false),
		LogDebug:    optBool("LOG_DEBUG", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		SlowQueryThreshold:    optDuration("DB_SLOW_QUERY_THRESHOLD", 500*time.Millisecond),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		Issuer:    optDefault("JWT_ISSUER", "mentor-match"),
		ExpiresIn: optDuration("JWT_EXPIRES_IN", time.Hour),
	}

	cfg.Embedding = EmbeddingConfig{
		APIKey:  opt("GEMINI_API_KEY"),
		Model:   optDefault("EMBEDDING_MODEL", "text-embedding-004"),
		Timeout: optDuration("EMBEDDING_TIMEOUT", 10*time.Second),
	}

	m := DefaultMatching()
	cfg.Matching = MatchingConfig{
		SemanticWeight: optFloat("MATCH_SEMANTIC_WEIGHT", m.SemanticWeight),
		MinScore:       optFloat("MATCH_MIN_SCORE", m.MinScore),
		CacheTTL:       optDuration("MATCH_CACHE_TTL", m.CacheTTL),
		MaxTrends:      optInt("MATCH_MAX_TRENDS", m.MaxTrends),
		Concurrency:    optInt("MATCH_CONCURRENCY", m.Concurrency),
		DefaultLimit:   optInt("MATCH_DEFAULT_LIMIT", m.DefaultLimit),
		MaxLimit:       optInt("MATCH_MAX_LIMIT", m.MaxLimit),
	}
	if cfg.Matching.Concurrency <= 0 {
		invalid = append(invalid, "MATCH_CONCURRENCY")
	}
	if cfg.Matching.SemanticWeight < 0 {
		invalid = append(invalid, "MATCH_SEMANTIC_WEIGHT")
	}

	r := DefaultResearch()
	cfg.Research = ResearchConfig{
		UserAgent:        optDefault("RESEARCH_USER_AGENT", r.UserAgent),
		HeadlessFallback: optBool("RESEARCH_HEADLESS_FALLBACK", r.HeadlessFallback),
		Workers:          optInt("RESEARCH_WORKERS", r.Workers),
		RateLimit:        optDuration("RESEARCH_RATE_LIMIT", r.RateLimit),
		RequestTimeout:   optDuration("RESEARCH_REQUEST_TIMEOUT", r.RequestTimeout),
		LookbackYears:    optInt("RESEARCH_LOOKBACK_YEARS", r.LookbackYears),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
