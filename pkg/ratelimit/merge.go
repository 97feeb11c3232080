package ratelimit

import "github.com/umputun/deckwatch/pkg/domain"

// Reading is one partial quota observation extracted from response headers,
// every field is independently optional
type Reading struct {
	Limit     *int
	Remaining *int
	Reset     *int64
}

// Empty reports whether the reading carries no observed fields at all
func (r Reading) Empty() bool {
	return r.Limit == nil && r.Remaining == nil && r.Reset == nil
}

// Merge folds a reading into prior state field-wise, an observed field
// replaces the prior value and an absent one retains it. The second return is
// false when the merged triple is identical to the prior one, which lets the
// caller skip the persistence write entirely.
func Merge(prev domain.RateLimitInfo, r Reading) (merged domain.RateLimitInfo, changed bool) {
	merged = prev

	if r.Empty() {
		return merged, false
	}

	if r.Limit != nil {
		merged.Limit = r.Limit
	}
	if r.Remaining != nil {
		merged.Remaining = r.Remaining
	}
	if r.Reset != nil {
		merged.Reset = r.Reset
	}

	changed = !eqInt(merged.Limit, prev.Limit) || !eqInt(merged.Remaining, prev.Remaining) || !eqInt64(merged.Reset, prev.Reset)
	return merged, changed
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqInt64(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
