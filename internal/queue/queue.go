package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/types"
)

//go:generate mockery --name=EventPublisher --output=../../tests/mocks --outpkg=mocks --filename=mock_event_publisher.go
// EventPublisher is the outbound event stream. Publishing is best-effort
// observability: a failed publish is logged and counted, never rolled into
// the ledger operation that produced the event.
type EventPublisher interface {
	PushLedgerEvent(ctx context.Context, ev *types.LedgerEvent) error
	Shutdown()
}

type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.AmqpURI())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

func (qm *QueueManager) PushLedgerEvent(ctx context.Context, ev *types.LedgerEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	publish := func() error {
		pubCtx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
		defer cancel()

		return qm.channel.PublishWithContext(
			pubCtx,
			"",               // default exchange
			qm.cfg.QueueName, // routing key
			false,            // mandatory
			false,            // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    ev.ID,
				Type:         ev.Type.String(),
				Body:         body,
			},
		)
	}

	err = retry.Do(publish,
		retry.Context(ctx),
		retry.Attempts(qm.cfg.MaxRetryTimes),
		retry.Delay(qm.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Uint("attempt", n+1).
				Str("event_id", ev.ID).
				Err(err).
				Msg("Failed to publish ledger event, retrying")
		}))
	if err != nil {
		return fmt.Errorf("failed to publish %s event %s: %w", ev.Type, ev.ID, err)
	}

	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close rabbitmq channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close rabbitmq connection")
	}
}
