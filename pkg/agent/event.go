package agent

// event types emitted by the browser-side agent
const (
	EventViewLoad       = "view-load"
	EventHistoryNav     = "history-nav"
	EventFragmentChange = "fragment-change"
	EventDOMSnapshot    = "dom-snapshot"
	EventDOMMutation    = "dom-mutation"
	EventRequestDone    = "request-done"
)

// Event is one message of the agent stream. The agent script runs inside the
// host page, observes embedded views and forwards lifecycle, navigation,
// document and network completion signals.
type Event struct {
	Type    string            `json:"type"`
	ViewID  string            `json:"viewId"`
	URL     string            `json:"url,omitempty"`     // current view location
	Target  string            `json:"target,omitempty"`  // request target, request-done only
	Headers map[string]string `json:"headers,omitempty"` // response headers, request-done only
	HTML    string            `json:"html,omitempty"`    // document markup, dom-snapshot only
}
