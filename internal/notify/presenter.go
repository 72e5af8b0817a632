package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

const defaultToastDuration = 4 * time.Second

// Presenter renders notifications as time-boxed toasts. A toast is
// acknowledged on the feed whether it times out or is dismissed by hand,
// but never twice.
type Presenter struct {
	feed     Feed
	duration time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	gen    uint64
	active map[int64]*toast
	wg     sync.WaitGroup
}

// toast pairs a dismissal timer with the generation of the Show call that
// armed it, so a timer firing for a superseded showing cannot acknowledge
// or decrement on behalf of the current one.
type toast struct {
	timer *time.Timer
	gen   uint64
}

// NewPresenter constructs a toast presenter.
func NewPresenter(feed Feed, duration time.Duration, logger *slog.Logger) *Presenter {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return &Presenter{
		feed:     feed,
		duration: duration,
		logger:   logger,
		active:   make(map[int64]*toast),
	}
}

// Show displays the notification and schedules its automatic dismissal.
// Showing an already visible notification restarts its timer.
func (p *Presenter) Show(ctx context.Context, notification model.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := notification.ID
	if current, ok := p.active[id]; ok {
		// Never Reset: the old timer may already have fired. Stop it if we
		// can; a callback already in flight sees a newer generation and
		// becomes a no-op either way.
		if current.timer.Stop() {
			p.wg.Done()
		}
	}
	p.gen++
	gen := p.gen
	p.wg.Add(1)
	p.active[id] = &toast{
		gen: gen,
		timer: time.AfterFunc(p.duration, func() {
			defer p.wg.Done()
			if p.take(id, gen) {
				p.acknowledge(ctx, id)
			}
		}),
	}
}

// Dismiss closes the toast before its timer fires. It reports whether the
// notification was still visible.
func (p *Presenter) Dismiss(ctx context.Context, id int64) bool {
	p.mu.Lock()
	current, ok := p.active[id]
	if ok {
		delete(p.active, id)
	}
	p.mu.Unlock()
	if !ok {
		return false
	}
	if current.timer.Stop() {
		p.wg.Done()
	}
	p.acknowledge(ctx, id)
	return true
}

// Active reports how many toasts are currently visible.
func (p *Presenter) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

// Close cancels pending timers without acknowledging and waits for fired
// ones to complete.
func (p *Presenter) Close() {
	p.mu.Lock()
	for id, current := range p.active {
		delete(p.active, id)
		if current.timer.Stop() {
			p.wg.Done()
		}
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// take removes the toast from the visible set, reporting whether it was
// still present at the given generation. The auto-dismiss path uses it to
// lose the race against a concurrent manual Dismiss or a newer Show of the
// same notification.
func (p *Presenter) take(id int64, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	current, ok := p.active[id]
	if !ok || current.gen != gen {
		return false
	}
	delete(p.active, id)
	return true
}

func (p *Presenter) acknowledge(ctx context.Context, id int64) {
	if err := p.feed.AcknowledgeNotification(ctx, id); err != nil {
		p.logger.Error("acknowledge notification failed", slog.Int64("id", id), slog.String("error", err.Error()))
	}
}
