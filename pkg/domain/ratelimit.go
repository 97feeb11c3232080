package domain

import "time"

// RateLimitCategory identifies one tracked group of host API endpoints
type RateLimitCategory string

// rate limit categories
const (
	CategoryHomeTimeline    RateLimitCategory = "home-timeline"
	CategoryUserTimeline    RateLimitCategory = "user-timeline"
	CategoryListTimeline    RateLimitCategory = "list-timeline"
	CategorySearch          RateLimitCategory = "search"
	CategoryDirectMessage   RateLimitCategory = "direct-message"
	CategoryAccountSettings RateLimitCategory = "account-settings"
	CategoryBadgeCount      RateLimitCategory = "badge-count"
	CategoryPostCreation    RateLimitCategory = "post-creation"
)

// RateLimitInfo holds the last observed quota state for one category.
// All observed fields are independently nullable, an unknown field stays nil
// until a response actually carries it.
type RateLimitInfo struct {
	Limit     *int      `json:"limit"`
	Remaining *int      `json:"remaining"`
	Reset     *int64    `json:"reset"` // epoch seconds
	UpdatedAt time.Time `json:"updatedAt"`
}

// RateLimits is the full category to quota-state map shared with consumers
type RateLimits map[RateLimitCategory]RateLimitInfo
