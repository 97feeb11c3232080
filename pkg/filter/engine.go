package filter

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/deckwatch/pkg/domain"
)

//go:generate moq -out mocks/rules.go -pkg mocks -skip-ensure -fmt goimports . RuleSource

// RuleSource provides the enabled subset of user filter rules
type RuleSource interface {
	EnabledRules() []domain.FilterRule
}

// ProcessedAttr marks an item as already evaluated, a marked item is never
// re-evaluated within the same document lifetime even when the rule set
// changes. Rule changes take effect on newly rendered items only.
const ProcessedAttr = "data-deckwatch-processed"

// HiddenStyle is applied to matched items, they are hidden in place, not removed
const HiddenStyle = "display: none !important;"

// item structure selectors of the host page
const (
	itemSelector    = `article[data-testid="tweet"]`
	textSelector    = `div[data-testid="tweetText"]`
	contextSelector = `span[data-testid="socialContext"]`
	nameSelector    = `div[data-testid="User-Name"]`
	linkSelector    = `a[role="link"]`
	mediaSelector   = `div[data-testid="tweetPhoto"], div[data-testid="videoPlayer"], div[data-testid="card.wrapper"]`
)

// Engine evaluates user filter rules against content items of an embedded
// view document. Apply is idempotent over the processed marker and is re-run
// on every structural mutation signal, a continuously reconciling pass rather
// than a one-shot pipeline.
type Engine struct {
	rules RuleSource

	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
	bad      map[string]struct{} // patterns already reported as invalid
}

// NewEngine creates a filter engine over the given rule source
func NewEngine(rules RuleSource) *Engine {
	return &Engine{
		rules:    rules,
		compiled: map[string]*regexp.Regexp{},
		bad:      map[string]struct{}{},
	}
}

// Apply evaluates every unprocessed item against all enabled rules, hides
// matches and marks each evaluated item processed regardless of outcome.
// Returns the number of items evaluated and of items hidden.
func (e *Engine) Apply(doc *goquery.Document) (scanned, hidden int) {
	rules := e.rules.EnabledRules()

	doc.Find(itemSelector).Not("[" + ProcessedAttr + "]").Each(func(_ int, item *goquery.Selection) {
		item.SetAttr(ProcessedAttr, "1")
		scanned++

		for _, rule := range rules {
			if !e.matches(rule, item) {
				continue
			}
			item.SetAttr("style", HiddenStyle)
			hidden++
			lgr.Printf("[DEBUG] item hidden by rule %q", rule.Name)
			break // rules are OR-combined, first match decides
		}
	})

	return scanned, hidden
}

// matches reports whether every defined predicate of the rule holds for the
// item. A rule without predicates matches nothing.
func (e *Engine) matches(rule domain.FilterRule, item *goquery.Selection) bool {
	if !rule.Defined() {
		return false
	}

	retweet := item.Find(contextSelector).Length() > 0

	if rule.Author != "" {
		handle := authorHandle(item, retweet)
		if !strings.EqualFold(handle, strings.TrimPrefix(rule.Author, "@")) {
			return false
		}
	}

	if rule.TextPattern != "" {
		re := e.compile(rule)
		if re == nil || !re.MatchString(item.Find(textSelector).Text()) {
			return false
		}
	}

	if rule.Retweet != nil && retweet != *rule.Retweet {
		return false
	}

	if rule.HasMedia != nil {
		hasMedia := item.Find(mediaSelector).Length() > 0
		if hasMedia != *rule.HasMedia {
			return false
		}
	}

	return true
}

// compile returns the cached regexp for the rule pattern. An invalid pattern
// is reported once and makes the rule permanently non-matching, it never
// aborts evaluation of other rules or items.
func (e *Engine) compile(rule domain.FilterRule) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.compiled[rule.TextPattern]; ok {
		return re
	}
	if _, ok := e.bad[rule.TextPattern]; ok {
		return nil
	}

	re, err := regexp.Compile(rule.TextPattern)
	if err != nil {
		e.bad[rule.TextPattern] = struct{}{}
		lgr.Printf("[WARN] invalid pattern %q in rule %q, rule disabled: %v", rule.TextPattern, rule.Name, err)
		return nil
	}
	e.compiled[rule.TextPattern] = re
	return re
}

// authorHandle extracts the acting account handle. A retweet attributes to
// the reposting account, the first linked account in the item, an original
// post attributes through the name block link.
func authorHandle(item *goquery.Selection, retweet bool) string {
	scope := item
	if !retweet {
		scope = item.Find(nameSelector).First()
	}

	href, ok := scope.Find(linkSelector).First().Attr("href")
	if !ok {
		return ""
	}

	handle := strings.TrimPrefix(href, "/")
	if idx := strings.IndexByte(handle, '/'); idx >= 0 {
		handle = handle[:idx]
	}
	return handle
}
