package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is an intermediate DTO for environment parsing; empty variables
// leave the current values in place.
type envConfig struct {
	EndpointAddrHTTP      string        `env:"GATEWAY_ADDRESS"`
	AuthServiceAddr       string        `env:"GATEWAY_AUTH_ADDRESS"`
	SecretKey             string        `env:"GATEWAY_JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"GATEWAY_JWT_EXPIRES_IN"`
	ShutdownTimeout       time.Duration `env:"GATEWAY_SHUTDOWN_TIMEOUT"`
}

func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.AuthServiceAddr != "" {
		config.AuthServiceAddr = c.AuthServiceAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration
	}
	if c.ShutdownTimeout != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout
	}
}
