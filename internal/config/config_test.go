package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"route-service-fleetsync/internal/config"
)

var routeEnvKeys = []string{
	"PORT", "LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"DRIVER_SERVICE_URL", "VEHICLE_SERVICE_URL",
	"PARTY_TIMEOUT", "PARTY_MAX_ATTEMPTS", "PARTY_BASE_DELAY", "PARTY_MAX_DELAY",
	"ROUTE_OPERATION_TIMEOUT", "ROUTE_DISPLAY_OFFSET", "ROUTE_REVERT_DRIVER_ON_SYNC_FAILURE",
	"ROUTE_ENRICH_READS",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
	"PPROF_ENABLED", "PPROF_ADDR", "PPROF_USER", "PPROF_PASS",
	"AUTH_JWT_SECRET",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TTL",
	"KAFKA_BROKERS", "KAFKA_ROUTE_TOPIC",
}

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	old := pflag.CommandLine
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() {
		pflag.CommandLine = old
		os.Args = oldArgs
	})
	for _, k := range routeEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, config.DefaultPort(), cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, config.DefaultDB(), cfg.DB)
	require.Equal(t, config.DefaultParties(), cfg.Parties)
	require.Equal(t, config.DefaultRoute(), cfg.Route)
	require.False(t, cfg.Route.RevertDriverOnSyncFailure)

	require.Empty(t, cfg.Auth.JWTSecret)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, time.Minute, cfg.Redis.TTL)
	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "route-events", cfg.Kafka.Topic)

	require.False(t, cfg.Route.EnrichReads)
	require.Equal(t, config.DefaultRateLimit(), cfg.RateLimit)
	require.False(t, cfg.RateLimit.Enabled)
	require.False(t, cfg.Pprof.Enabled)
	require.Equal(t, "127.0.0.1:6060", cfg.Pprof.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)

	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "routes")
	t.Setenv("DRIVER_SERVICE_URL", "http://drivers:8001/")
	t.Setenv("VEHICLE_SERVICE_URL", "http://vehicles:8000")
	t.Setenv("PARTY_TIMEOUT", "2s")
	t.Setenv("PARTY_MAX_ATTEMPTS", "1")
	t.Setenv("ROUTE_OPERATION_TIMEOUT", "30s")
	t.Setenv("ROUTE_DISPLAY_OFFSET", "0s")
	t.Setenv("ROUTE_REVERT_DRIVER_ON_SYNC_FAILURE", "true")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_ROUTE_TOPIC", "routes")
	t.Setenv("ROUTE_ENRICH_READS", "true")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_TTL", "1m")
	t.Setenv("RATE_LIMIT_MAX_BUCKETS", "100")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "0.0.0.0:6061")
	t.Setenv("PPROF_USER", "ops")
	t.Setenv("PPROF_PASS", "pw")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.DB{Host: "db", Port: "15432", User: "u", Pass: "p", Name: "routes"}, cfg.DB)
	require.Equal(t, "http://drivers:8001", cfg.Parties.DriverURL)
	require.Equal(t, "http://vehicles:8000", cfg.Parties.VehicleURL)
	require.Equal(t, 2*time.Second, cfg.Parties.Timeout)
	require.Equal(t, 1, cfg.Parties.MaxAttempts)
	require.Equal(t, 30*time.Second, cfg.Route.OperationTimeout)
	require.Equal(t, time.Duration(0), cfg.Route.DisplayOffset)
	require.True(t, cfg.Route.RevertDriverOnSyncFailure)
	require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	require.Equal(t, "redis:6379", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, 30*time.Second, cfg.Redis.TTL)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "routes", cfg.Kafka.Topic)
	require.True(t, cfg.Route.EnrichReads)
	require.Equal(t, config.RateLimit{Enabled: true, Rate: 2.5, Burst: 5, TTL: time.Minute, MaxBuckets: 100}, cfg.RateLimit)
	require.Equal(t, config.Pprof{Enabled: true, Addr: "0.0.0.0:6061", User: "ops", Pass: "pw"}, cfg.Pprof)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	resetFlags(t, "--port=7070", "--log-level=warn")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Port)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port out of range":   {"PORT", "70000"},
		"port not a number":   {"PORT", "abc"},
		"postgres port":       {"POSTGRES_PORT", "not-a-number"},
		"party timeout":       {"PARTY_TIMEOUT", "soon"},
		"zero attempts":       {"PARTY_MAX_ATTEMPTS", "0"},
		"operation timeout":   {"ROUTE_OPERATION_TIMEOUT", "x"},
		"display offset":      {"ROUTE_DISPLAY_OFFSET", "7"},
		"revert flag":         {"ROUTE_REVERT_DRIVER_ON_SYNC_FAILURE", "maybe"},
		"driver url":          {"DRIVER_SERVICE_URL", "drivers"},
		"redis db":            {"REDIS_DB", "one"},
		"redis ttl":           {"REDIS_TTL", "-1s"},
		"log level":           {"LOG_LEVEL", "verbose"},
		"vehicle url no host": {"VEHICLE_SERVICE_URL", "http://"},
		"enrich flag":         {"ROUTE_ENRICH_READS", "maybe"},
		"rate limit flag":     {"RATE_LIMIT_ENABLED", "sometimes"},
		"rate limit rps":      {"RATE_LIMIT_RPS", "fast"},
		"rate limit burst":    {"RATE_LIMIT_BURST", "many"},
		"rate limit ttl":      {"RATE_LIMIT_TTL", "forever"},
		"pprof flag":          {"PPROF_ENABLED", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			resetFlags(t)
			t.Setenv(kv[0], kv[1])

			cfg, err := config.Load()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoad_InvalidEnabledFeatures(t *testing.T) {
	cases := map[string][][2]string{
		"zero burst":   {{"RATE_LIMIT_ENABLED", "true"}, {"RATE_LIMIT_BURST", "0"}},
		"negative rps": {{"RATE_LIMIT_ENABLED", "true"}, {"RATE_LIMIT_RPS", "-1"}},
	}
	for name, kvs := range cases {
		t.Run(name, func(t *testing.T) {
			resetFlags(t)
			for _, kv := range kvs {
				t.Setenv(kv[0], kv[1])
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_DisabledFeaturesSkipValidation(t *testing.T) {
	resetFlags(t)
	t.Setenv("RATE_LIMIT_BURST", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_FlagsParseError(t *testing.T) {
	resetFlags(t, "--port=not-a-number")

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}

func TestDB_DSN(t *testing.T) {
	d := config.DB{Host: "h", Port: "5432", User: "u", Pass: "p@ss", Name: "routes"}
	require.Equal(t, "postgres://u:p%40ss@h:5432/routes?sslmode=disable", d.DSN())
}
