package waitlist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/events"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultNotifyTimeout = 10 * time.Second

var ErrNotifierClosed = errors.New("waitlist: notifier closed")

var tracer = otel.Tracer("github.com/lixi-remit/lixi-landing/domain/waitlist")

//go:generate mockgen -destination=mock_subscriber.go -package=waitlist github.com/lixi-remit/lixi-landing/domain/waitlist Subscriber

// Subscriber adds a contact to the mailing list.
type Subscriber interface {
	Enabled() bool
	Subscribe(ctx context.Context, email, name string) error
}

// SignupNotifier fans a new entry out to the mailing list and the event bus
// without blocking the request that created it.
type SignupNotifier interface {
	Notify(ctx context.Context, entry *models.WaitlistEntry)
	Close(ctx context.Context) error
}

type NotifierConfig struct {
	Subscriber Subscriber
	Publisher  events.Publisher
	Metrics    *Metrics
	Logger     *log.Logger
	Timeout    time.Duration
}

type signupNotifier struct {
	subscriber Subscriber
	publisher  events.Publisher
	metrics    *Metrics
	logger     *log.Logger
	timeout    time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewSignupNotifier(cfg NotifierConfig) SignupNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewLoggerWithJSONOutput()
	}

	return &signupNotifier{
		subscriber: cfg.Subscriber,
		publisher:  publisher,
		metrics:    cfg.Metrics,
		logger:     logger,
		timeout:    timeout,
	}
}

// Notify returns immediately. The work runs on a context detached from ctx
// that keeps its correlation id and logger.
func (n *signupNotifier) Notify(ctx context.Context, entry *models.WaitlistEntry) {
	if entry == nil {
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		log.GetLoggerInstanceFromContext(ctx, n.logger).Warn("Signup notifier closed, dropping notification", "entry_id", entry.ID)
		return
	}
	n.wg.Add(1)
	n.mu.Unlock()

	snapshot := entry.Clone()
	detached := log.DetachedContext(ctx)
	link := trace.LinkFromContext(ctx)

	go func() {
		defer n.wg.Done()
		n.deliver(detached, link, snapshot)
	}()
}

func (n *signupNotifier) deliver(parent context.Context, link trace.Link, entry *models.WaitlistEntry) {
	logger := log.GetLoggerInstanceFromContext(parent, n.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Signup notification panicked", "entry_id", entry.ID, "panic", fmt.Sprint(r))
		}
	}()

	ctx, cancel := context.WithTimeout(parent, n.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "waitlist.notify", trace.WithLinks(link))
	span.SetAttributes(attribute.Int64("waitlist.entry_id", int64(entry.ID)))
	defer span.End()

	if err := n.subscribe(ctx, logger, entry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mailing list subscribe failed")
	}

	if err := n.publish(ctx, logger, entry); err != nil {
		span.RecordError(err)
	}
}

func (n *signupNotifier) subscribe(ctx context.Context, logger *log.Logger, entry *models.WaitlistEntry) error {
	if n.subscriber == nil || !n.subscriber.Enabled() {
		logger.Info("EmailOctopus not configured, skipping", "entry_id", entry.ID)
		n.metrics.subscription(resultSkipped)
		return nil
	}

	if err := n.subscriber.Subscribe(ctx, entry.Email, entry.Name); err != nil {
		logger.Error("Failed to add contact to mailing list", "entry_id", entry.ID, "error", err)
		n.metrics.subscription(resultFailure)
		return err
	}

	logger.Info("Added contact to mailing list", "entry_id", entry.ID)
	n.metrics.subscription(resultSuccess)
	return nil
}

func (n *signupNotifier) publish(ctx context.Context, logger *log.Logger, entry *models.WaitlistEntry) error {
	event := events.WaitlistJoined{
		ID:            entry.ID,
		Email:         entry.Email,
		Name:          entry.Name,
		MonthlyAmount: entry.MonthlyAmount,
		CreatedAt:     entry.CreatedAt,
	}

	if err := n.publisher.Publish(ctx, events.RoutingKeyWaitlistJoined, event); err != nil {
		logger.Warn("Failed to publish waitlist event", "entry_id", entry.ID, "error", err)
		return err
	}
	return nil
}

// Close stops accepting notifications and waits for in-flight ones until ctx expires.
func (n *signupNotifier) Close(ctx context.Context) error {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waitlist: drain notifications: %w", ctx.Err())
	}
}
