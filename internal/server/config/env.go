package config

import "github.com/caarlos0/env/v11"

// envConfig is an intermediate DTO for environment parsing; empty variables
// leave the current values in place.
type envConfig struct {
	EndpointAddrGRPC string `env:"AUTHD_ADDRESS"`
	DatabaseDSN      string `env:"AUTHD_DATABASE_DSN"`
}

func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
}
