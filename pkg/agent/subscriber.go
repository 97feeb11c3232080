package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"github.com/gorilla/websocket"

	"github.com/umputun/deckwatch/pkg/nav"
)

//go:generate moq -out mocks/navigator.go -pkg mocks -skip-ensure -fmt goimports . Navigator
//go:generate moq -out mocks/requests.go -pkg mocks -skip-ensure -fmt goimports . RequestSink
//go:generate moq -out mocks/filter.go -pkg mocks -skip-ensure -fmt goimports . FilterApplier

// Navigator reacts to view lifecycle and navigation triggers
type Navigator interface {
	Track(viewID string)
	Poke(ctx context.Context, viewID string, trigger nav.Trigger)
}

// RequestSink consumes completed host API requests
type RequestSink interface {
	HandleRequest(ctx context.Context, target string, headers http.Header)
}

// FilterApplier runs the content filter pass over a view document
type FilterApplier interface {
	Apply(doc *goquery.Document) (scanned, hidden int)
}

// viewSnapshot is the latest known state of one embedded view
type viewSnapshot struct {
	url string
	doc *goquery.Document
}

// Subscriber connects to the browser-side agent over websocket, decodes its
// event stream and dispatches to the navigation watcher, the rate limit
// tracker and the content filter engine. It also keeps the latest document
// snapshot per view and serves as the document and location source for the
// rest of the core. Transient connection failures reconnect with a delay.
type Subscriber struct {
	url            string
	navigator      Navigator
	requests       RequestSink
	filter         FilterApplier
	reconnectDelay time.Duration

	mu    sync.RWMutex
	views map[string]*viewSnapshot
}

// Params holds subscriber dependencies
type Params struct {
	URL            string
	Navigator      Navigator
	Requests       RequestSink
	Filter         FilterApplier
	ReconnectDelay time.Duration
}

// NewSubscriber creates an agent stream subscriber. The navigator may be set
// after construction with SetNavigator, the subscriber serves as the watcher's
// location source which makes the dependency mutual.
func NewSubscriber(p Params) *Subscriber {
	if p.ReconnectDelay == 0 {
		p.ReconnectDelay = 5 * time.Second
	}
	return &Subscriber{
		url:            p.URL,
		navigator:      p.Navigator,
		requests:       p.Requests,
		filter:         p.Filter,
		reconnectDelay: p.ReconnectDelay,
		views:          map[string]*viewSnapshot{},
	}
}

// SetNavigator wires the navigation watcher, must be called before Run
func (s *Subscriber) SetNavigator(n Navigator) {
	s.navigator = n
}

// Run connects to the agent and processes events until the context is
// cancelled, reconnecting on transient errors
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := s.subscribe(ctx); err != nil {
				lgr.Printf("[WARN] agent connection error, reconnecting: %v", err)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(s.reconnectDelay):
				}
			}
		}
	}
}

func (s *Subscriber) subscribe(ctx context.Context) error {
	lgr.Printf("[INFO] connecting to agent at %s", s.url)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("dial agent: %w", err)
	}
	defer conn.Close()

	// ReadMessage does not observe the context, close the connection to
	// unblock it on cancellation
	readDone := make(chan struct{})
	defer close(readDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-readDone:
		}
	}()

	lgr.Printf("[INFO] connected to agent")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		var ev Event
		if err := json.Unmarshal(message, &ev); err != nil {
			lgr.Printf("[WARN] failed to decode agent event: %v", err)
			continue
		}

		s.HandleEvent(ctx, ev)
	}
}

// HandleEvent dispatches one decoded agent event
func (s *Subscriber) HandleEvent(ctx context.Context, ev Event) {
	switch ev.Type {
	case EventViewLoad:
		s.setLocation(ev.ViewID, ev.URL)
		s.navigator.Track(ev.ViewID)
		s.navigator.Poke(ctx, ev.ViewID, nav.TriggerLoad)

	case EventHistoryNav:
		s.setLocation(ev.ViewID, ev.URL)
		s.navigator.Poke(ctx, ev.ViewID, nav.TriggerHistory)

	case EventFragmentChange:
		s.setLocation(ev.ViewID, ev.URL)
		s.navigator.Poke(ctx, ev.ViewID, nav.TriggerFragment)

	case EventDOMSnapshot:
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(ev.HTML))
		if err != nil {
			lgr.Printf("[WARN] failed to parse snapshot for view %s: %v", ev.ViewID, err)
			return
		}
		s.setDocument(ev.ViewID, ev.URL, doc)
		scanned, hidden := s.filter.Apply(doc)
		lgr.Printf("[DEBUG] filter pass on snapshot of view %s: %d scanned, %d hidden", ev.ViewID, scanned, hidden)

	case EventDOMMutation:
		// structural mutation, re-run the reconciling filter pass
		doc, err := s.Document(ev.ViewID)
		if err != nil {
			lgr.Printf("[DEBUG] mutation for view %s without snapshot, ignored", ev.ViewID)
			return
		}
		s.filter.Apply(doc)

	case EventRequestDone:
		headers := http.Header{}
		for k, v := range ev.Headers {
			headers.Set(k, v)
		}
		s.requests.HandleRequest(ctx, ev.Target, headers)

	default:
		lgr.Printf("[DEBUG] unknown agent event type %q ignored", ev.Type)
	}
}

// Location implements nav.LocationSource. A view without any received event
// yet is not accessible, the caller retries on the next trigger.
func (s *Subscriber) Location(viewID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.views[viewID]; ok && v.url != "" {
		return v.url, nil
	}
	return "", fmt.Errorf("view %s not accessible", viewID)
}

// Document implements nav.DocumentSource, returns the latest snapshot
func (s *Subscriber) Document(viewID string) (*goquery.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.views[viewID]; ok && v.doc != nil {
		return v.doc, nil
	}
	return nil, fmt.Errorf("no document for view %s", viewID)
}

// Forget drops the cached state of a removed view
func (s *Subscriber) Forget(viewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, viewID)
}

func (s *Subscriber) setLocation(viewID, url string) {
	if url == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[viewID]; ok {
		v.url = url
		return
	}
	s.views[viewID] = &viewSnapshot{url: url}
}

func (s *Subscriber) setDocument(viewID, url string, doc *goquery.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[viewID]
	if !ok {
		v = &viewSnapshot{}
		s.views[viewID] = v
	}
	v.doc = doc
	if url != "" {
		v.url = url
	}
}
