package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores route service settings.
type Config struct {
	Port      int
	LogLevel  string
	DB        DB
	Parties   Parties
	Route     Route
	Auth      Auth
	Redis     Redis
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
}

// DB holds Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Parties configures the driver and vehicle service clients.
type Parties struct {
	DriverURL   string
	VehicleURL  string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Route configures the route service.
type Route struct {
	OperationTimeout time.Duration
	// DisplayOffset shifts created_at/updated_at in responses only.
	DisplayOffset time.Duration
	// RevertDriverOnSyncFailure restores the driver record when the vehicle
	// update fails during route creation.
	RevertDriverOnSyncFailure bool
	// EnrichReads attaches live driver and vehicle records to GET responses.
	EnrichReads bool
}

// Auth configures bearer token verification. An empty secret disables it.
type Auth struct {
	JWTSecret string
}

// Redis configures the route read cache. An empty Addr disables it.
type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Kafka configures route event publishing. No brokers disables it.
type Kafka struct {
	Brokers []string
	Topic   string
}

// RateLimit configures the per-caller token bucket on /api/routes.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof configures the profiling listener. Remote callers need User/Pass.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:     defaultPort,
		LogLevel: envOr("LOG_LEVEL", defaultLogLevel),
		DB: DB{
			Host: envOr("POSTGRES_HOST", defaultDB.Host),
			Port: envOr("POSTGRES_PORT", defaultDB.Port),
			User: envOr("POSTGRES_USER", defaultDB.User),
			Pass: envOr("POSTGRES_PASSWORD", defaultDB.Pass),
			Name: envOr("POSTGRES_DB", defaultDB.Name),
		},
		Parties: Parties{
			DriverURL:  strings.TrimRight(envOr("DRIVER_SERVICE_URL", defaultParties.DriverURL), "/"),
			VehicleURL: strings.TrimRight(envOr("VEHICLE_SERVICE_URL", defaultParties.VehicleURL), "/"),
		},
		Auth: Auth{JWTSecret: os.Getenv("AUTH_JWT_SECRET")},
		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Kafka: Kafka{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   envOr("KAFKA_ROUTE_TOPIC", defaultKafkaTopic),
		},
		Pprof: Pprof{
			Addr: envOr("PPROF_ADDR", defaultPprof.Addr),
			User: os.Getenv("PPROF_USER"),
			Pass: os.Getenv("PPROF_PASS"),
		},
	}

	var err error
	if cfg.Port, err = envInt("PORT", defaultPort); err != nil {
		return nil, err
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	if cfg.Parties.Timeout, err = envDuration("PARTY_TIMEOUT", defaultParties.Timeout); err != nil {
		return nil, err
	}
	if cfg.Parties.MaxAttempts, err = envInt("PARTY_MAX_ATTEMPTS", defaultParties.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.Parties.BaseDelay, err = envDuration("PARTY_BASE_DELAY", defaultParties.BaseDelay); err != nil {
		return nil, err
	}
	if cfg.Parties.MaxDelay, err = envDuration("PARTY_MAX_DELAY", defaultParties.MaxDelay); err != nil {
		return nil, err
	}
	if cfg.Route.OperationTimeout, err = envDuration("ROUTE_OPERATION_TIMEOUT", defaultRoute.OperationTimeout); err != nil {
		return nil, err
	}
	if cfg.Route.DisplayOffset, err = envDuration("ROUTE_DISPLAY_OFFSET", defaultRoute.DisplayOffset); err != nil {
		return nil, err
	}
	if cfg.Route.RevertDriverOnSyncFailure, err = envBool("ROUTE_REVERT_DRIVER_ON_SYNC_FAILURE", false); err != nil {
		return nil, err
	}
	if cfg.Route.EnrichReads, err = envBool("ROUTE_ENRICH_READS", false); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = loadRateLimit(); err != nil {
		return nil, err
	}
	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = envDuration("REDIS_TTL", defaultRedis.TTL); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Parties.MaxAttempts < 1 {
		return fmt.Errorf("invalid PARTY_MAX_ATTEMPTS: %d", c.Parties.MaxAttempts)
	}
	if c.Parties.Timeout <= 0 {
		return fmt.Errorf("invalid PARTY_TIMEOUT: %s", c.Parties.Timeout)
	}
	for _, raw := range []string{c.Parties.DriverURL, c.Parties.VehicleURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid service url: %q", raw)
		}
	}
	if c.Redis.TTL <= 0 {
		return fmt.Errorf("invalid REDIS_TTL: %s", c.Redis.TTL)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("invalid rate limit: rate %v burst %d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.Pprof.Enabled && strings.TrimSpace(c.Pprof.Addr) == "" {
		return fmt.Errorf("invalid PPROF_ADDR: empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}

func loadRateLimit() (RateLimit, error) {
	rl := defaultRateLimit
	var err error
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return RateLimit{}, err
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RPS", rl.Rate); err != nil {
		return RateLimit{}, err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return RateLimit{}, err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return RateLimit{}, err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return RateLimit{}, err
	}
	return rl, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
