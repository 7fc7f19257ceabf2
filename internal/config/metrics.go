package config

import (
	"fmt"
)

const (
	defaultMetricsPort = 2112
	maxPort            = 65535
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	if cfg.Port == 0 {
		return defaultMetricsPort
	}
	return cfg.Port
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("metrics host is required")
	}
	if cfg.Port < 0 || cfg.Port > maxPort {
		return fmt.Errorf("metrics port must be in range 0-%d", maxPort)
	}

	return nil
}
