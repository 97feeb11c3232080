package nav

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/deckwatch/pkg/domain"
)

//go:generate moq -out mocks/docs.go -pkg mocks -skip-ensure -fmt goimports . DocumentSource
//go:generate moq -out mocks/columns.go -pkg mocks -skip-ensure -fmt goimports . ColumnSource

// DocumentSource provides access to the embedded view's current document.
// Access may fail transiently, e.g. before the first snapshot arrives.
type DocumentSource interface {
	Document(viewID string) (*goquery.Document, error)
}

// ColumnSource provides the persisted column record for the cache second tier
type ColumnSource interface {
	Column(id string) (domain.Column, bool)
}

// landmark selectors for scraped route kinds
const (
	headingSelector  = `div[data-testid="primaryColumn"] h2[role="heading"]`
	userNameSelector = `div[data-testid="UserName"]`
)

// Resolver resolves display names for routes that need a scraped title (list,
// community, profile) through memory cache, persisted column record, bounded
// DOM-scrape retry and URL-derived fallback, in that strict order.
type Resolver struct {
	docs      DocumentSource
	columns   ColumnSource
	sanitizer *bluemonday.Policy

	attempts     int
	initialDelay time.Duration
	stepDelay    time.Duration

	mu    sync.Mutex
	cache map[string]string // exact URL -> resolved title, process lifetime
}

// ResolverParams holds resolver dependencies and retry tuning
type ResolverParams struct {
	Docs         DocumentSource
	Columns      ColumnSource
	Attempts     int
	InitialDelay time.Duration
	StepDelay    time.Duration
}

// NewResolver creates a resolver with default retry tuning when not set
func NewResolver(p ResolverParams) *Resolver {
	if p.Attempts == 0 {
		p.Attempts = 5
	}
	if p.InitialDelay == 0 {
		p.InitialDelay = 500 * time.Millisecond
	}
	if p.StepDelay == 0 {
		p.StepDelay = 300 * time.Millisecond
	}

	return &Resolver{
		docs:         p.Docs,
		columns:      p.Columns,
		sanitizer:    bluemonday.StrictPolicy(),
		attempts:     p.Attempts,
		initialDelay: p.InitialDelay,
		stepDelay:    p.StepDelay,
		cache:        map[string]string{},
	}
}

// Resolve returns the display name for rawURL. Cache tiers are consulted
// without touching the document, scraping retries with growing delays and
// falls back to the URL-derived default on exhaustion. A cancelled context
// aborts the retry chain and returns the context error.
func (r *Resolver) Resolve(ctx context.Context, viewID, rawURL string, kind RouteKind) (string, error) {
	// memory cache is cheapest and always freshest within a session
	r.mu.Lock()
	if title, ok := r.cache[rawURL]; ok {
		r.mu.Unlock()
		return title, nil
	}
	r.mu.Unlock()

	// persisted column record survives restarts, skip the generic placeholder
	if col, ok := r.columns.Column(viewID); ok {
		if col.URL == rawURL && col.Title != "" && col.Title != DefaultTitle(rawURL, kind) {
			r.Prime(rawURL, col.Title)
			return col.Title, nil
		}
	}

	delay := r.initialDelay
	for attempt := 1; attempt <= r.attempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		doc, err := r.docs.Document(viewID)
		if err != nil {
			lgr.Printf("[DEBUG] document not accessible for view %s: %v", viewID, err)
		} else if title := r.extract(doc, kind); title != "" {
			r.Prime(rawURL, title)
			lgr.Printf("[DEBUG] resolved title %q for %s on attempt %d", title, rawURL, attempt)
			return title, nil
		}

		delay = time.Duration(attempt) * r.stepDelay
	}

	title := DefaultTitle(rawURL, kind)
	lgr.Printf("[DEBUG] title scrape exhausted for %s, falling back to %q", rawURL, title)
	return title, nil
}

// Prime seeds the memory cache so subsequent resolutions of the same URL
// return instantly without document access
func (r *Resolver) Prime(rawURL, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[rawURL] = title
}

// extract pulls the route-specific landmark text out of the document.
// Empty result means the landmark is not rendered yet.
func (r *Resolver) extract(doc *goquery.Document, kind RouteKind) string {
	switch kind {
	case KindList, KindCommunity:
		text := strings.TrimSpace(doc.Find(headingSelector).First().Text())
		if text == "" {
			return ""
		}
		// list and community headings carry "Name@owner", keep the name part
		if idx := strings.Index(text, "@"); idx >= 0 {
			text = strings.TrimSpace(text[:idx])
		}
		return r.clean(text)
	case KindProfile:
		text := strings.TrimSpace(doc.Find(userNameSelector).First().Text())
		// the name block carries "Display Name@handle", keep the handle part
		idx := strings.Index(text, "@")
		if idx < 0 {
			return ""
		}
		return r.clean(strings.TrimSpace(text[idx:]))
	}
	return ""
}

// clean strips any markup remnants from scraped text
func (r *Resolver) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(text)))
}

// String describes the resolver tuning, used in startup logging
func (r *Resolver) String() string {
	return fmt.Sprintf("resolver{attempts:%d, initial:%v, step:%v}", r.attempts, r.initialDelay, r.stepDelay)
}
