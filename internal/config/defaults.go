package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "routes_db",
}

var defaultParties = Parties{
	DriverURL:   "http://localhost:8001",
	VehicleURL:  "http://localhost:8000",
	Timeout:     5 * time.Second,
	MaxAttempts: 2,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    500 * time.Millisecond,
}

var defaultRoute = Route{
	OperationTimeout: 15 * time.Second,
	DisplayOffset:    7 * time.Hour,
}

var defaultRedis = Redis{
	TTL: time.Minute,
}

const defaultKafkaTopic = "route-events"

var defaultRateLimit = RateLimit{
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultParties returns the default driver/vehicle client settings.
func DefaultParties() Parties {
	return defaultParties
}

// DefaultRoute returns the default route service settings.
func DefaultRoute() Route {
	return defaultRoute
}

// DefaultRateLimit returns the rate limiter settings used when enabled.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
