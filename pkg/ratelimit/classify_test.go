package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/deckwatch/pkg/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		category domain.RateLimitCategory
		ok       bool
	}{
		{"home latest", "https://x.com/i/api/graphql/abc123/HomeLatestTimeline", domain.CategoryHomeTimeline, true},
		{"home chronological", "https://x.com/i/api/graphql/abc123/HomeTimeline", domain.CategoryHomeTimeline, true},
		{"user tweets", "https://x.com/i/api/graphql/def456/UserTweets?variables=%7B%7D", domain.CategoryUserTimeline, true},
		{"user media", "https://x.com/i/api/graphql/def456/UserMedia", domain.CategoryUserTimeline, true},
		{"user replies", "https://x.com/i/api/graphql/def456/UserTweetsAndReplies", domain.CategoryUserTimeline, true},
		{"list timeline", "https://x.com/i/api/graphql/ghi789/ListLatestTweetsTimeline", domain.CategoryListTimeline, true},
		{"search graphql", "https://x.com/i/api/graphql/jkl012/SearchTimeline", domain.CategorySearch, true},
		{"search legacy", "https://x.com/i/api/2/search/adaptive.json?q=golang", domain.CategorySearch, true},
		{"dm initial", "https://x.com/i/api/1.1/dm/inbox_initial_state.json", domain.CategoryDirectMessage, true},
		{"dm updates", "https://x.com/i/api/1.1/dm/user_updates.json", domain.CategoryDirectMessage, true},
		{"dm timeline", "https://x.com/i/api/1.1/dm/inbox_timeline/trusted.json", domain.CategoryDirectMessage, true},
		{"account settings", "https://api.x.com/1.1/account/settings.json", domain.CategoryAccountSettings, true},
		{"badge count", "https://x.com/i/api/2/badge_count/badge_count.json", domain.CategoryBadgeCount, true},
		{"create tweet", "https://x.com/i/api/graphql/mno345/CreateTweet", domain.CategoryPostCreation, true},
		{"create note tweet", "https://x.com/i/api/graphql/mno345/CreateNoteTweet", domain.CategoryPostCreation, true},
		{"unrelated endpoint", "https://x.com/i/api/1.1/jot/client_event.json", "", false},
		{"static asset", "https://abs.twimg.com/responsive-web/client-web/main.js", "", false},
		{"empty target", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := Classify(tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.category, category)
		})
	}
}
