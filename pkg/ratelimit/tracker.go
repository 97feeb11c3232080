package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/deckwatch/pkg/domain"
	"github.com/umputun/deckwatch/pkg/store"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// quota bearing response headers of the host API
const (
	headerLimit     = "X-Rate-Limit-Limit"
	headerRemaining = "X-Rate-Limit-Remaining"
	headerReset     = "X-Rate-Limit-Reset"
)

// Persister stores the rate limit map under its fixed key
type Persister interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
}

// Tracker passively observes request completions of the host page, classifies
// them by endpoint signature and folds observed quota counters into durable
// shared state. It is the single writer of the rate limit map, consumers see
// changes through the store subscription.
type Tracker struct {
	store Persister

	mu     sync.Mutex
	limits domain.RateLimits
	now    func() time.Time
}

// NewTracker creates a tracker seeded with previously persisted state.
// A missing record starts all categories at unknown.
func NewTracker(ctx context.Context, persister Persister) *Tracker {
	t := &Tracker{store: persister, limits: domain.RateLimits{}, now: time.Now}

	if err := persister.Load(ctx, store.KeyRateLimits, &t.limits); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			lgr.Printf("[WARN] failed to load rate limit state, starting fresh: %v", err)
		}
		t.limits = domain.RateLimits{}
	}
	return t
}

// HandleRequest processes one completed request of the host API surface.
// Uncategorized targets and responses carrying none of the quota headers are
// ignored, identical merged state suppresses the persistence write.
func (t *Tracker) HandleRequest(ctx context.Context, target string, headers http.Header) {
	category, ok := Classify(target)
	if !ok {
		return
	}

	reading := extractReading(headers)
	if reading.Empty() {
		// not a quota bearing response
		return
	}

	t.mu.Lock()
	merged, changed := Merge(t.limits[category], reading)
	if !changed {
		t.mu.Unlock()
		return
	}
	merged.UpdatedAt = t.now()
	t.limits[category] = merged
	snapshot := t.copyLimitsLocked()
	t.mu.Unlock()

	if err := t.store.Save(ctx, store.KeyRateLimits, snapshot); err != nil {
		lgr.Printf("[ERROR] failed to persist rate limit state: %v", err)
		return
	}
	lgr.Printf("[DEBUG] rate limit updated for %s: %s", category, formatInfo(merged))
}

// Limits returns a copy of the current category map
func (t *Tracker) Limits() domain.RateLimits {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copyLimitsLocked()
}

// Reset clears all tracked categories and persists the empty map, only
// triggered by explicit user action
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	t.limits = domain.RateLimits{}
	snapshot := t.copyLimitsLocked()
	t.mu.Unlock()

	if err := t.store.Save(ctx, store.KeyRateLimits, snapshot); err != nil {
		return err
	}
	lgr.Printf("[INFO] rate limit state reset")
	return nil
}

func (t *Tracker) copyLimitsLocked() domain.RateLimits {
	res := make(domain.RateLimits, len(t.limits))
	for k, v := range t.limits {
		res[k] = v
	}
	return res
}

// extractReading pulls the three numeric quota headers, absent or unparsable
// headers stay nil
func extractReading(headers http.Header) Reading {
	var r Reading
	if v, err := strconv.Atoi(headers.Get(headerLimit)); err == nil {
		r.Limit = &v
	}
	if v, err := strconv.Atoi(headers.Get(headerRemaining)); err == nil {
		r.Remaining = &v
	}
	if v, err := strconv.ParseInt(headers.Get(headerReset), 10, 64); err == nil {
		r.Reset = &v
	}
	return r
}

func formatInfo(info domain.RateLimitInfo) string {
	fmtInt := func(v *int) string {
		if v == nil {
			return "?"
		}
		return strconv.Itoa(*v)
	}
	reset := "?"
	if info.Reset != nil {
		reset = strconv.FormatInt(*info.Reset, 10)
	}
	return fmtInt(info.Remaining) + "/" + fmtInt(info.Limit) + " reset " + reset
}
