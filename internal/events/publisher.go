// Package events publishes domain events to an AMQP topic exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lixi-remit/lixi-landing/pkg/circuitbreaker"
	"github.com/lixi-remit/lixi-landing/pkg/retry"
	"github.com/lixi-remit/lixi-landing/pkg/utils"
	"github.com/streadway/amqp"
)

const (
	RoutingKeyWaitlistJoined = "waitlist.joined"
	DefaultExchange          = "lixi.events"
)

//go:generate mockgen -destination=mock_publisher.go -package=events github.com/lixi-remit/lixi-landing/internal/events Publisher

// Publisher sends an event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Healthy() bool
	Close() error
}

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type Config struct {
	URL      string
	Exchange string
}

func ConfigFromEnv() Config {
	return Config{
		URL:      utils.GetEnvTrimmed("AMQP_URL"),
		Exchange: utils.GetEnvTrimmedOrDefault("AMQP_EXCHANGE", DefaultExchange),
	}
}

func (c Config) Enabled() bool {
	return c.URL != ""
}

// Envelope is the JSON body of every published message.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

type WaitlistJoined struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	MonthlyAmount *string   `json:"monthlyAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
	breaker  circuitbreaker.CircuitBreaker
	now      func() time.Time

	// amqp.Channel is not safe for concurrent publishing.
	mu sync.Mutex
	ch channel
}

// Dial connects to the broker, retrying transient failures, and declares a
// durable topic exchange.
func Dial(ctx context.Context, cfg Config, policy retry.RetryPolicy, breaker circuitbreaker.CircuitBreaker, logger Logger) (*AMQPPublisher, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("events: AMQP_URL not set")
	}
	if policy == nil {
		policy = retry.NewExponentialBackoff(retry.DefaultConfig())
	}

	var conn *amqp.Connection
	err := policy.Execute(ctx, func(context.Context) error {
		var dialErr error
		conn, dialErr = amqp.Dial(cfg.URL)
		if dialErr != nil && logger != nil {
			logger.Warn("AMQP dial failed", "error", dialErr)
		}
		return dialErr
	})
	if err != nil {
		return nil, fmt.Errorf("events: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange %q: %w", cfg.Exchange, err)
	}

	if logger != nil {
		logger.Info("AMQP publisher connected", "exchange", cfg.Exchange)
	}

	p := newAMQPPublisher(ch, cfg.Exchange, breaker)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch channel, exchange string, breaker circuitbreaker.CircuitBreaker) *AMQPPublisher {
	if breaker == nil {
		breaker = circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig())
	}
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		breaker:  breaker,
		now:      time.Now,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	envelope := Envelope{
		ID:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: p.now().UTC(),
		Data:       payload,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", routingKey, err)
	}

	return p.breaker.Call(func() error {
		p.mu.Lock()
		defer p.mu.Unlock()

		err := p.ch.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    envelope.ID,
			Timestamp:    envelope.OccurredAt,
			Type:         routingKey,
		})
		if err != nil {
			return fmt.Errorf("events: publish %s: %w", routingKey, err)
		}
		return nil
	})
}

// Healthy is false once the connection dropped or the breaker opened.
func (p *AMQPPublisher) Healthy() bool {
	if p.conn != nil && p.conn.IsClosed() {
		return false
	}
	return p.breaker.State() != circuitbreaker.Open
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		firstErr = p.ch.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Healthy() bool { return false }

func (NoopPublisher) Close() error { return nil }

// Configured reports whether p talks to a real broker.
func Configured(p Publisher) bool {
	switch p.(type) {
	case nil, NoopPublisher, *NoopPublisher:
		return false
	default:
		return true
	}
}
