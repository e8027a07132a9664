package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/quantumauth-io/payment-info/internal/clipboard"
	"github.com/quantumauth-io/payment-info/internal/logging"
	"github.com/quantumauth-io/payment-info/internal/metrics"
	"github.com/quantumauth-io/payment-info/internal/payment"
)

var ErrIndexOutOfRange = errors.New("payment method index out of range")

// Options configures a View. Zero values fall back to defaults in New.
type Options struct {
	Clipboard clipboard.Writer
	Logger    logging.Logger
	Metrics   *metrics.Metrics
	Highlight time.Duration
}

// View is one rendered payment page: the display list it was built from and
// its transient copy state.
type View struct {
	id        string
	addresses payment.Addresses
	clip      clipboard.Writer
	logger    logging.Logger
	metrics   *metrics.Metrics
	highlight *Highlight

	mu       sync.Mutex
	lastSeen time.Time
}

func New(id string, addrs payment.Addresses, opts Options) *View {
	opts = withDefaults(opts)
	return &View{
		id:        id,
		addresses: addrs,
		clip:      opts.Clipboard,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		highlight: NewHighlight(opts.Highlight),
		lastSeen:  time.Now(),
	}
}

func (v *View) ID() string { return v.id }

// Methods recomputes the display list.
func (v *View) Methods() []payment.Method {
	return payment.Methods(v.addresses)
}

// Copied returns the index currently showing the copied confirmation, or nil.
func (v *View) Copied() *int {
	return v.highlight.Index()
}

// Cleared is closed once the current copied confirmation has reverted.
func (v *View) Cleared() <-chan struct{} {
	return v.highlight.Cleared()
}

// Copy writes address to the clipboard and highlights index on success.
// Failures are logged and otherwise ignored.
func (v *View) Copy(ctx context.Context, address string, index int) {
	v.touch()

	network := networkAt(v.Methods(), index)
	if err := v.clip.WriteText(ctx, address); err != nil {
		v.logger.Error("failed to copy", "error", err, "index", index, "network", network)
		v.metrics.CopyResult(network, false)
		return
	}

	v.highlight.Set(index)
	v.metrics.CopyResult(network, true)
}

// CopyAt copies the address of the entry at index in the current display list.
func (v *View) CopyAt(ctx context.Context, index int) (payment.Method, error) {
	methods := v.Methods()
	if index < 0 || index >= len(methods) {
		return payment.Method{}, ErrIndexOutOfRange
	}
	m := methods[index]
	v.Copy(ctx, m.Address, index)
	return m, nil
}

// Close tears the view down; pending highlight resets are cancelled.
func (v *View) Close() {
	v.highlight.Close()
}

func (v *View) touch() {
	v.mu.Lock()
	v.lastSeen = time.Now()
	v.mu.Unlock()
}

func (v *View) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}

func networkAt(methods []payment.Method, index int) string {
	if index < 0 || index >= len(methods) {
		return "unknown"
	}
	return methods[index].Name
}
