package config

import (
	"fmt"
	"time"
)

const (
	defaultBridgeTimeout       = 15 * time.Second
	defaultBridgeMaxRetryTimes = 3
	defaultBridgeRetryInterval = 500 * time.Millisecond
)

// TokenConfig defines the connection to the token transfer bridge.
type TokenConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	// CustodyAccount is the bridge account the ledger pulls deposits into
	// and pushes withdrawals and rewards out of.
	CustodyAccount string        `mapstructure:"custody-account"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func DefaultTokenConfig() *TokenConfig {
	return &TokenConfig{
		Timeout:       defaultBridgeTimeout,
		MaxRetryTimes: defaultBridgeMaxRetryTimes,
		RetryInterval: defaultBridgeRetryInterval,
	}
}

func (cfg *TokenConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("token bridge endpoint is required")
	}
	if cfg.CustodyAccount == "" {
		return fmt.Errorf("token custody account is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("token bridge timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("token bridge max retry times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("token bridge retry interval must be positive")
	}

	return nil
}
