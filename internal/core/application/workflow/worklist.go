package workflow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/domain/model/delivery"
)

var (
	// ErrSuperseded is returned by Load when a newer Load started before this
	// one finished. Its result was discarded.
	ErrSuperseded = errors.New("worklist load superseded by a newer request")
	// ErrNoTab is returned by Refresh before any tab was loaded.
	ErrNoTab = errors.New("worklist has no tab selected")
	// ErrLoadInFlight is returned by Refresh while a Load is running. The
	// Load will bring the tab up to date.
	ErrLoadInFlight = errors.New("worklist load in flight")
)

// Snapshot is the last applied worklist state.
type Snapshot struct {
	Tab        delivery.Tab
	Deliveries []delivery.Delivery
	Intent     uint64
	LoadedAt   time.Time
}

// Worklist shows the deliveries of one tab at a time.
//
// Every Load takes a fresh intent token. A result is applied only if its token
// is still the latest when it arrives, so a slow answer for a tab the rider
// already left can never overwrite the current one. Background refreshes never
// take a token away from a running Load.
type Worklist struct {
	fetcher TabFetcher
	now     func() time.Time

	intent atomic.Uint64

	mu       sync.Mutex
	tab      delivery.Tab
	loading  int
	snapshot Snapshot
}

func NewWorklist(fetcher TabFetcher) *Worklist {
	return &Worklist{fetcher: fetcher, now: time.Now}
}

// Load selects tab and fetches it.
func (w *Worklist) Load(ctx context.Context, tab delivery.Tab) (Snapshot, error) {
	query, err := queries.NewFetchTabQuery(tab)
	if err != nil {
		return Snapshot{}, err
	}

	w.mu.Lock()
	token := w.intent.Add(1)
	w.tab = tab
	w.loading++
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.loading--
		w.mu.Unlock()
	}()
	return w.fetch(ctx, query, token)
}

// Refresh reloads the selected tab. A Load started later supersedes it; a
// Load already running makes it return ErrLoadInFlight without a fetch.
func (w *Worklist) Refresh(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	tab := w.tab
	if tab == "" {
		w.mu.Unlock()
		return Snapshot{}, ErrNoTab
	}
	if w.loading > 0 {
		w.mu.Unlock()
		return Snapshot{}, ErrLoadInFlight
	}
	token := w.intent.Add(1)
	w.mu.Unlock()

	query, err := queries.NewFetchTabQuery(tab)
	if err != nil {
		return Snapshot{}, err
	}
	return w.fetch(ctx, query, token)
}

func (w *Worklist) fetch(ctx context.Context, query queries.FetchTabQuery, token uint64) (Snapshot, error) {
	deliveries, err := w.fetcher.Handle(ctx, query)

	w.mu.Lock()
	defer w.mu.Unlock()
	if token != w.intent.Load() {
		return Snapshot{}, ErrSuperseded
	}
	if err != nil {
		return Snapshot{}, err
	}
	w.snapshot = Snapshot{
		Tab:        query.Tab(),
		Deliveries: deliveries,
		Intent:     token,
		LoadedAt:   w.now(),
	}
	return w.snapshot.clone(), nil
}

// Snapshot returns the last applied state.
func (w *Worklist) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot.clone()
}

// Tab returns the selected tab, empty before the first Load.
func (w *Worklist) Tab() delivery.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tab
}

// Reset invalidates in-flight loads and clears the state.
func (w *Worklist) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.intent.Add(1)
	w.tab = ""
	w.snapshot = Snapshot{}
}

func (s Snapshot) clone() Snapshot {
	if s.Deliveries != nil {
		out := make([]delivery.Delivery, len(s.Deliveries))
		copy(out, s.Deliveries)
		s.Deliveries = out
	}
	return s
}
