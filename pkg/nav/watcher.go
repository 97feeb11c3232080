package nav

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/locations.go -pkg mocks -skip-ensure -fmt goimports . LocationSource
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . TitleResolver

// LocationSource reports the current location of an embedded view. The read
// may fail transiently, e.g. during a cross-origin transition, such failures
// are swallowed and retried on the next trigger.
type LocationSource interface {
	Location(viewID string) (string, error)
}

// TitleResolver resolves display names for routes that need one
type TitleResolver interface {
	Resolve(ctx context.Context, viewID, rawURL string, kind RouteKind) (string, error)
}

// Trigger identifies what woke the watcher up for a view
type Trigger int

// watcher triggers
const (
	TriggerLoad Trigger = iota
	TriggerHistory
	TriggerFragment
	TriggerPoll
)

// ViewState is the explicit per-view state of the navigation state machine
type ViewState int

// view states
const (
	StateIdle ViewState = iota
	StateTracking
	StateResolving
)

// Update is one navigation delivery, fired at most once per distinct
// whitelisted URL per view until the URL changes again
type Update struct {
	ViewID string
	URL    string
	Title  string
	Kind   RouteKind
}

// viewTrack holds per-view guard state, each view is fully independent
type viewTrack struct {
	state        ViewState
	lastSeen     string // collapses overlapping triggers for the same URL
	lastRecorded string // suppresses re-emitting an already delivered URL
	cancel       context.CancelFunc
}

// Watcher drives the title resolver per embedded view. It reacts to lifecycle
// and in-page navigation triggers plus a polling fallback that covers
// client-side navigations raising no signal at all.
type Watcher struct {
	locs         LocationSource
	resolver     TitleResolver
	onChange     func(Update)
	pollInterval time.Duration

	mu    sync.Mutex
	views map[string]*viewTrack
}

// WatcherParams holds watcher dependencies
type WatcherParams struct {
	Locations    LocationSource
	Resolver     TitleResolver
	OnChange     func(Update)
	PollInterval time.Duration
}

// NewWatcher creates a watcher, poll interval defaults to one second
func NewWatcher(p WatcherParams) *Watcher {
	if p.PollInterval == 0 {
		p.PollInterval = time.Second
	}
	return &Watcher{
		locs:         p.Locations,
		resolver:     p.Resolver,
		onChange:     p.OnChange,
		pollInterval: p.PollInterval,
		views:        map[string]*viewTrack{},
	}
}

// Track registers an embedded view for navigation watching
func (w *Watcher) Track(viewID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.views[viewID]; ok {
		return
	}
	w.views[viewID] = &viewTrack{state: StateTracking}
	lgr.Printf("[DEBUG] tracking view %s", viewID)
}

// Forget drops a view and cancels its in-flight resolution, called on column removal
func (w *Watcher) Forget(viewID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v, ok := w.views[viewID]; ok && v.cancel != nil {
		v.cancel()
	}
	delete(w.views, viewID)
}

// State returns the current state of a view's machine, StateIdle for untracked views
func (w *Watcher) State(viewID string) ViewState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v, ok := w.views[viewID]; ok {
		return v.state
	}
	return StateIdle
}

// Run drives the polling fallback until the context is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	lgr.Printf("[INFO] navigation watcher started, poll interval %v", w.pollInterval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, id := range w.trackedViews() {
				w.Poke(ctx, id, TriggerPoll)
			}
		}
	}
}

// Poke processes one trigger for a view. Repeated triggers for an unchanged
// location collapse to a no-op, a changed location is classified, filtered by
// the record whitelist and delivered either synchronously or after title
// resolution settles.
func (w *Watcher) Poke(ctx context.Context, viewID string, trigger Trigger) {
	loc, err := w.locs.Location(viewID)
	if err != nil {
		// transient cross-context access failure, retry on next trigger
		lgr.Printf("[DEBUG] location read failed for view %s: %v", viewID, err)
		return
	}

	w.mu.Lock()
	v, ok := w.views[viewID]
	if !ok {
		w.mu.Unlock()
		return
	}
	if loc == v.lastSeen {
		w.mu.Unlock()
		return
	}
	v.lastSeen = loc

	// location changed, whatever was resolving is for a stale URL
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}

	kind := Classify(loc)
	if !ShouldRecord(kind) {
		v.state = StateTracking
		w.mu.Unlock()
		lgr.Printf("[DEBUG] view %s at non-recordable url %s (trigger %d), skipped", viewID, loc, trigger)
		return
	}
	if loc == v.lastRecorded {
		v.state = StateTracking
		w.mu.Unlock()
		return
	}

	if !NeedsResolve(kind) {
		v.state = StateTracking
		v.lastRecorded = loc
		w.mu.Unlock()
		w.onChange(Update{ViewID: viewID, URL: loc, Title: DefaultTitle(loc, kind), Kind: kind})
		return
	}

	resolveCtx, cancel := context.WithCancel(ctx)
	v.state = StateResolving
	v.cancel = cancel
	w.mu.Unlock()

	go func() {
		title, err := w.resolver.Resolve(resolveCtx, viewID, loc, kind)
		if err != nil {
			// superseded by a newer navigation, nothing to deliver
			lgr.Printf("[DEBUG] resolution for view %s url %s abandoned: %v", viewID, loc, err)
			return
		}
		w.deliver(viewID, loc, kind, title)
	}()
}

// deliver records and emits an asynchronous resolution result, dropping it if
// the view moved on while the title was being resolved
func (w *Watcher) deliver(viewID, loc string, kind RouteKind, title string) {
	w.mu.Lock()
	v, ok := w.views[viewID]
	if !ok || v.lastSeen != loc {
		w.mu.Unlock()
		return
	}
	v.state = StateTracking
	v.lastRecorded = loc
	v.cancel = nil
	w.mu.Unlock()

	w.onChange(Update{ViewID: viewID, URL: loc, Title: title, Kind: kind})
}

// trackedViews returns a snapshot of tracked view ids
func (w *Watcher) trackedViews() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]string, 0, len(w.views))
	for id := range w.views {
		ids = append(ids, id)
	}
	return ids
}
