package nav

import (
	"net/url"
	"regexp"
	"strings"
)

// RouteKind classifies a host page URL by its path shape
type RouteKind string

// route kinds
const (
	KindHome          RouteKind = "home"
	KindNotifications RouteKind = "notifications"
	KindBookmarks     RouteKind = "bookmarks"
	KindMessages      RouteKind = "messages"
	KindExplore       RouteKind = "explore"
	KindSearch        RouteKind = "search"
	KindList          RouteKind = "list"
	KindCommunity     RouteKind = "community"
	KindProfile       RouteKind = "profile"
	KindUnknown       RouteKind = "unknown"
)

var (
	listRe      = regexp.MustCompile(`^/i/lists/\d+$`)
	communityRe = regexp.MustCompile(`^/i/communities/\d+$`)
	handleRe    = regexp.MustCompile(`^/[A-Za-z0-9_]{1,15}$`)
)

// path segments that look like handles but never are
var reservedSegments = map[string]struct{}{
	"home": {}, "explore": {}, "notifications": {}, "messages": {}, "search": {},
	"settings": {}, "compose": {}, "login": {}, "logout": {}, "i": {}, "intent": {},
}

// Classify maps an absolute URL to a route kind, derived purely from the path
// shape. Malformed URLs classify as unknown, never panic.
func Classify(rawURL string) RouteKind {
	if rawURL == "" {
		return KindUnknown
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return KindUnknown
	}
	path := strings.TrimSuffix(u.Path, "/")

	switch path {
	case "/home", "":
		return KindHome
	case "/notifications":
		return KindNotifications
	case "/i/bookmarks":
		return KindBookmarks
	}

	switch {
	case strings.HasPrefix(path, "/messages"):
		return KindMessages
	case strings.HasPrefix(path, "/explore"):
		return KindExplore
	case path == "/search":
		return KindSearch
	case listRe.MatchString(path):
		return KindList
	case communityRe.MatchString(path):
		return KindCommunity
	case handleRe.MatchString(path):
		if _, reserved := reservedSegments[strings.ToLower(path[1:])]; reserved {
			return KindUnknown
		}
		return KindProfile
	}

	return KindUnknown
}

// ShouldRecord decides whether a route kind is eligible for persistence as a
// column location. Transient URLs like individual post permalinks classify as
// unknown and are never recorded.
func ShouldRecord(kind RouteKind) bool {
	return kind != KindUnknown
}

// NeedsResolve reports whether the route kind requires a scraped display name
// instead of a fixed URL-derived one
func NeedsResolve(kind RouteKind) bool {
	return kind == KindList || kind == KindCommunity || kind == KindProfile
}

// DefaultTitle returns the deterministic URL-derived title for a route, used
// directly for fixed routes and as a fallback when scraping exhausts
func DefaultTitle(rawURL string, kind RouteKind) string {
	switch kind {
	case KindHome:
		return "Home"
	case KindNotifications:
		return "Notifications"
	case KindBookmarks:
		return "Bookmarks"
	case KindMessages:
		return "Messages"
	case KindExplore:
		return "Explore"
	case KindSearch:
		if u, err := url.Parse(rawURL); err == nil {
			if q := strings.TrimSpace(u.Query().Get("q")); q != "" {
				return "Search: " + q
			}
		}
		return "Search"
	case KindList:
		return "List"
	case KindCommunity:
		return "Community"
	case KindProfile:
		if u, err := url.Parse(rawURL); err == nil {
			if handle := strings.TrimPrefix(strings.TrimSuffix(u.Path, "/"), "/"); handle != "" {
				return "@" + handle
			}
		}
		return "Profile"
	}
	return "Column"
}
