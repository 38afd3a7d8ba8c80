package queue

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	"github.com/dlevina/prediction-billing/internal/infrastructure/config"
)

// Consumer pulls prediction jobs from RabbitMQ and feeds them through
// the billing use case. Deliveries are acked after processing whether
// the job succeeded or not: the job ID idempotency in the billing layer
// makes redelivery safe, and poison messages must not wedge the queue.
type Consumer struct {
	cfg     config.QueueConfig
	billing usecase.BillingUseCase
	logger  coreport.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewConsumer creates a consumer for the configured queue
func NewConsumer(cfg config.QueueConfig, billing usecase.BillingUseCase, logger coreport.Logger) *Consumer {
	return &Consumer{
		cfg:     cfg,
		billing: billing,
		logger:  logger,
	}
}

// connect dials the broker with a fixed number of retries so the worker
// survives the broker starting up after it does
func (c *Consumer) connect() error {
	var lastErr error
	attempts := c.cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := amqp.Dial(c.cfg.URL)
		if err == nil {
			c.conn = conn
			return nil
		}
		lastErr = err
		c.logger.Warn("Queue connection attempt failed", map[string]any{
			"attempt":  attempt,
			"attempts": attempts,
			"error":    err.Error(),
		})
		if attempt < attempts {
			time.Sleep(c.cfg.RetryDelay)
		}
	}

	return fmt.Errorf("failed to connect to queue after %d attempts: %w", attempts, lastErr)
}

// Run consumes jobs until the context is canceled or the channel closes
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.connect(); err != nil {
		return err
	}
	defer c.Close()

	channel, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	c.channel = channel

	queue, err := channel.QueueDeclare(
		c.cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	// One unacked message at a time keeps charging strictly sequential
	if err := channel.Qos(c.cfg.PrefetchCount, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.logger.Info("Waiting for prediction jobs", map[string]any{
		"queue": queue.Name,
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Queue consumer stopping", nil)
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

// handleDelivery processes one message and always acks it
func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	defer func() {
		if err := delivery.Ack(false); err != nil {
			c.logger.Error("Failed to ack delivery", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	payload, err := DecodeJobPayload(delivery.Body)
	if err != nil {
		c.logger.Error("Discarding malformed job", map[string]any{
			"error": err.Error(),
		})
		return
	}

	c.logger.Info("Processing prediction job", map[string]any{
		"jobId":  payload.JobID,
		"userId": payload.UserID,
	})

	result, err := c.billing.Predict(ctx, usecase.PredictRequest{
		JobID:   payload.JobID,
		UserID:  payload.UserID,
		Samples: payload.Samples,
	})
	if err != nil {
		fields := map[string]any{
			"jobId":  payload.JobID,
			"userId": payload.UserID,
			"error":  err.Error(),
		}
		if errs.IsInsufficientFundsError(err) {
			c.logger.Warn("Prediction job rejected for insufficient funds", fields)
		} else {
			c.logger.Error("Prediction job failed", fields)
		}
		return
	}

	c.logger.Info("Prediction job completed", map[string]any{
		"jobId":    result.JobID,
		"userId":   payload.UserID,
		"cost":     result.Cost,
		"replayed": result.Replayed,
	})
}

// Close releases the channel and connection. Safe to call more than
// once: closed handles are cleared so a second call is a no-op.
func (c *Consumer) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("Failed to close queue channel", map[string]any{"error": err.Error()})
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("Failed to close queue connection", map[string]any{"error": err.Error()})
		}
		c.conn = nil
	}
}
