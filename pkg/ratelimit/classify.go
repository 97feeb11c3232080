package ratelimit

import (
	"regexp"

	"github.com/umputun/deckwatch/pkg/domain"
)

// categoryRule binds one category to the endpoint signatures that feed it
type categoryRule struct {
	category domain.RateLimitCategory
	patterns []*regexp.Regexp
}

// ordered classification table, first matching pattern wins. The table is not
// an exhaustive map of the host API surface, unmatched targets are ignored.
var categoryRules = []categoryRule{
	{domain.CategoryHomeTimeline, compileAll(`HomeLatestTimeline`, `HomeTimeline`)},
	{domain.CategoryUserTimeline, compileAll(`UserTweets`, `UserMedia`, `UserTweetsAndReplies`)},
	{domain.CategoryListTimeline, compileAll(`ListLatestTweetsTimeline`)},
	{domain.CategorySearch, compileAll(`SearchTimeline`, `search/adaptive`)},
	{domain.CategoryDirectMessage, compileAll(`/dm/inbox_initial_state`, `/dm/user_updates`, `/dm/inbox_timeline`)},
	{domain.CategoryAccountSettings, compileAll(`account/settings`)},
	{domain.CategoryBadgeCount, compileAll(`badge_count`)},
	{domain.CategoryPostCreation, compileAll(`CreateTweet`, `CreateNoteTweet`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// Classify maps a request target to its rate limit category. The second
// return is false for targets matching no known endpoint signature.
func Classify(target string) (domain.RateLimitCategory, bool) {
	for _, rule := range categoryRules {
		for _, re := range rule.patterns {
			if re.MatchString(target) {
				return rule.category, true
			}
		}
	}
	return "", false
}
