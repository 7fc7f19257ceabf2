package config

import (
	"fmt"
	"time"
)

// QueueConfig defines the rabbitmq connection the ledger publishes its
// events to.
type QueueConfig struct {
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	Url            string        `mapstructure:"url"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) AmqpURI() string {
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.Username, cfg.Password, cfg.Url)
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("queue username is required")
	}
	if cfg.Password == "" {
		return fmt.Errorf("queue password is required")
	}
	if cfg.Url == "" {
		return fmt.Errorf("queue url is required")
	}
	if cfg.QueueName == "" {
		return fmt.Errorf("queue name is required")
	}
	if cfg.PublishTimeout <= 0 {
		return fmt.Errorf("queue publish timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("queue max retry times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("queue retry interval must be positive")
	}

	return nil
}
