package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// Feed exposes the subset of application functionality required by the
// delivery client.
type Feed interface {
	Notifications(ctx context.Context, email string) ([]model.Notification, error)
	AcknowledgeNotification(ctx context.Context, id int64) error
}

// Handler consumes a freshly observed notification.
type Handler func(ctx context.Context, notification model.Notification)

// Poller watches a customer's notification feed and dispatches unseen
// entries to the handler exactly once.
type Poller struct {
	feed         Feed
	email        string
	pollInterval time.Duration
	handler      Handler
	logger       *slog.Logger

	jobs   chan model.Notification
	seen   map[int64]struct{}
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPoller constructs a feed poller for one customer.
func NewPoller(feed Feed, email string, pollInterval time.Duration, handler Handler, logger *slog.Logger) *Poller {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Poller{
		feed:         feed,
		email:        email,
		pollInterval: pollInterval,
		handler:      handler,
		logger:       logger,
		jobs:         make(chan model.Notification, 16),
		seen:         make(map[int64]struct{}),
	}
}

// Start launches background polling.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.consume(runCtx)

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop halts polling and waits for the in-flight handler to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Poller) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	p.fetchAndDispatch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *Poller) fetchAndDispatch(ctx context.Context) {
	notifications, err := p.feed.Notifications(ctx, p.email)
	if err != nil {
		p.logger.Error("fetch notifications failed", slog.String("email", p.email), slog.String("error", err.Error()))
		return
	}
	for _, n := range notifications {
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		p.seen[n.ID] = struct{}{}
		select {
		case <-ctx.Done():
			return
		case p.jobs <- n:
		}
	}
}

func (p *Poller) consume(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handler(ctx, n)
		}
	}
}
