package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/payment"
)

var ErrViewNotFound = errors.New("view not found")

// Registry owns the open views of one server. Views are never shared between
// page loads.
type Registry struct {
	addresses payment.Addresses
	opts      Options
	ttl       time.Duration

	mu    sync.Mutex
	views map[string]*View
}

func NewRegistry(addrs payment.Addresses, opts Options, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = constants.DefaultViewTTL
	}
	return &Registry{
		addresses: addrs,
		opts:      withDefaults(opts),
		ttl:       ttl,
		views:     make(map[string]*View),
	}
}

// Methods is the display list every new view starts from.
func (r *Registry) Methods() []payment.Method {
	return payment.Methods(r.addresses)
}

// Highlight is how long a successful copy stays highlighted.
func (r *Registry) Highlight() time.Duration {
	return r.opts.Highlight
}

func (r *Registry) Open() *View {
	v := New(uuid.NewString(), r.addresses, r.opts)

	r.mu.Lock()
	r.views[v.ID()] = v
	r.mu.Unlock()

	r.opts.Metrics.ViewOpened()
	return v
}

func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	v, ok := r.views[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrViewNotFound
	}
	v.touch()
	return v, nil
}

func (r *Registry) Close(id string) error {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	v.Close()
	r.opts.Metrics.ViewClosed()
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep closes views idle for longer than the registry TTL and returns how
// many were closed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var stale []*View
	for id, v := range r.views {
		if v.idleSince(now) > r.ttl {
			stale = append(stale, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Close()
		r.opts.Metrics.ViewClosed()
	}
	if len(stale) > 0 {
		r.opts.Logger.Info("closed idle views", "count", len(stale))
	}
	return len(stale)
}

// Run sweeps idle views every interval until ctx is done, then closes all views.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case now := <-ticker.C:
			r.Sweep(now)
		}
	}
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*View)
	r.mu.Unlock()

	for _, v := range views {
		v.Close()
		r.opts.Metrics.ViewClosed()
	}
}
