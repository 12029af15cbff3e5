package workflow

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/errs"
)

// TokenBinder attaches a rider credential to a context so backend calls made
// with it act as that rider.
type TokenBinder func(ctx context.Context, token string) context.Context

// View is one open rider screen: its worklist, its controller and the rider
// credential bound to it.
type View struct {
	id         kernel.ViewID
	token      string
	bind       TokenBinder
	worklist   *Worklist
	controller *Controller
	lastUsed   atomic.Int64
}

func (v *View) ID() kernel.ViewID {
	return v.id
}

func (v *View) Worklist() *Worklist {
	return v.worklist
}

func (v *View) Controller() *Controller {
	return v.controller
}

// Bind returns ctx carrying the view's credential.
func (v *View) Bind(ctx context.Context) context.Context {
	if v.bind == nil || v.token == "" {
		return ctx
	}
	return v.bind(ctx, v.token)
}

// LastUsed is the time of the last registry lookup of this view.
func (v *View) LastUsed() time.Time {
	return time.Unix(0, v.lastUsed.Load())
}

func (v *View) touch(now time.Time) {
	v.lastUsed.Store(now.UnixNano())
}

// teardown invalidates in-flight loads and clears acting flags.
func (v *View) teardown() {
	v.worklist.Reset()
	v.controller.Reset()
}

// Dependencies are shared by every view of a registry.
type Dependencies struct {
	Tabs    TabFetcher
	Details DetailLoader
	Actions ActionInvoker
	Bind    TokenBinder
	Logger  *slog.Logger
}

// Registry owns the open views.
type Registry struct {
	deps   Dependencies
	now    func() time.Time
	logger *slog.Logger

	mu    sync.RWMutex
	views map[kernel.ViewID]*View
}

func NewRegistry(deps Dependencies) *Registry {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		deps:   deps,
		now:    time.Now,
		logger: logger.With("component", "ViewRegistry"),
		views:  make(map[kernel.ViewID]*View),
	}
}

// WithClock replaces the time source. Intended for tests.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Open creates a view bound to token.
func (r *Registry) Open(token string) *View {
	v := &View{
		id:         kernel.NewViewID(),
		token:      token,
		bind:       r.deps.Bind,
		worklist:   NewWorklist(r.deps.Tabs),
		controller: NewController(r.deps.Details, r.deps.Actions, r.deps.Logger),
	}
	v.touch(r.now())

	r.mu.Lock()
	r.views[v.id] = v
	r.mu.Unlock()

	r.logger.Info("view opened", "view_id", v.id.String())
	return v
}

// Get returns the view and marks it used.
func (r *Registry) Get(id kernel.ViewID) (*View, error) {
	r.mu.RLock()
	v, ok := r.views[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("viewId", id.String())
	}
	v.touch(r.now())
	return v, nil
}

// Close tears the view down and forgets it.
func (r *Registry) Close(id kernel.ViewID) error {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if !ok {
		return errs.NewObjectNotFoundError("viewId", id.String())
	}
	v.teardown()
	r.logger.Info("view closed", "view_id", id.String())
	return nil
}

// Views returns the open views in no particular order.
func (r *Registry) Views() []*View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*View, 0, len(r.views))
	for _, v := range r.views {
		out = append(out, v)
	}
	return out
}

// Reap closes every view not used for longer than ttl and returns how many
// were closed.
func (r *Registry) Reap(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	var expired []*View
	for id, v := range r.views {
		if v.LastUsed().Before(cutoff) {
			expired = append(expired, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range expired {
		v.teardown()
		r.logger.Info("view expired", "view_id", v.id.String())
	}
	return len(expired)
}

// Len returns the number of open views.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
