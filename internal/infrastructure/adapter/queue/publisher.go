package queue

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/config"
)

// Publisher enqueues prediction jobs for asynchronous processing
type Publisher struct {
	cfg     config.QueueConfig
	logger  coreport.Logger
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to the broker and declares the job queue
func NewPublisher(cfg config.QueueConfig, logger coreport.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Publisher{
		cfg:     cfg,
		logger:  logger,
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish enqueues one job with persistent delivery so it survives a
// broker restart
func (p *Publisher) Publish(ctx context.Context, payload *JobPayload) error {
	body, err := payload.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode job payload: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",              // exchange
		p.cfg.QueueName, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	p.logger.Info("Prediction job enqueued", map[string]any{
		"jobId":  payload.JobID,
		"userId": payload.UserID,
	})
	return nil
}

// Close releases the channel and connection
func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
