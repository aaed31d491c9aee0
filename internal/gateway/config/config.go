// Package config handles configuration for the gateway component,
// including defaults, JSON overlay, environment variables, and
// command-line flags (applied in that order).
package config

import "time"

// Config holds runtime settings for the gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - AuthServiceAddr: address of the authd gRPC endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test
//     defaults in prod.
//   - TokenValidityDuration: access token lifetime.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP      string
	AuthServiceAddr       string
	SecretKey             string
	TokenValidityDuration time.Duration
	ShutdownTimeout       time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.AuthServiceAddr = "localhost:3001"
	c.SecretKey = "change-this-in-production"
	c.TokenValidityDuration = 24 * time.Hour
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
