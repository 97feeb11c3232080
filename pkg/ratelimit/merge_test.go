package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/deckwatch/pkg/domain"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestReading_Empty(t *testing.T) {
	assert.True(t, Reading{}.Empty())
	assert.False(t, Reading{Limit: intPtr(150)}.Empty())
	assert.False(t, Reading{Remaining: intPtr(0)}.Empty())
	assert.False(t, Reading{Reset: int64Ptr(1700000000)}.Empty())
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		prev        domain.RateLimitInfo
		reading     Reading
		wantLimit   *int
		wantRem     *int
		wantReset   *int64
		wantChanged bool
	}{
		{
			name:        "full reading over empty state",
			reading:     Reading{Limit: intPtr(150), Remaining: intPtr(149), Reset: int64Ptr(1700000900)},
			wantLimit:   intPtr(150),
			wantRem:     intPtr(149),
			wantReset:   int64Ptr(1700000900),
			wantChanged: true,
		},
		{
			name:        "partial reading keeps prior fields",
			prev:        domain.RateLimitInfo{Limit: intPtr(150), Remaining: intPtr(149), Reset: int64Ptr(1700000900)},
			reading:     Reading{Remaining: intPtr(148)},
			wantLimit:   intPtr(150),
			wantRem:     intPtr(148),
			wantReset:   int64Ptr(1700000900),
			wantChanged: true,
		},
		{
			name:        "empty reading changes nothing",
			prev:        domain.RateLimitInfo{Limit: intPtr(150), Remaining: intPtr(149)},
			reading:     Reading{},
			wantLimit:   intPtr(150),
			wantRem:     intPtr(149),
			wantChanged: false,
		},
		{
			name:        "identical reading reports unchanged",
			prev:        domain.RateLimitInfo{Limit: intPtr(150), Remaining: intPtr(149), Reset: int64Ptr(1700000900)},
			reading:     Reading{Limit: intPtr(150), Remaining: intPtr(149), Reset: int64Ptr(1700000900)},
			wantLimit:   intPtr(150),
			wantRem:     intPtr(149),
			wantReset:   int64Ptr(1700000900),
			wantChanged: false,
		},
		{
			name:        "remaining zero is a real value",
			prev:        domain.RateLimitInfo{Remaining: intPtr(1)},
			reading:     Reading{Remaining: intPtr(0)},
			wantRem:     intPtr(0),
			wantChanged: true,
		},
		{
			name:        "reset-only observation over nothing",
			reading:     Reading{Reset: int64Ptr(1700000900)},
			wantReset:   int64Ptr(1700000900),
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, changed := Merge(tt.prev, tt.reading)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantLimit, merged.Limit)
			assert.Equal(t, tt.wantRem, merged.Remaining)
			assert.Equal(t, tt.wantReset, merged.Reset)
		})
	}
}

func TestMerge_DoesNotMutatePrev(t *testing.T) {
	prev := domain.RateLimitInfo{Limit: intPtr(150), Remaining: intPtr(10)}
	merged, changed := Merge(prev, Reading{Remaining: intPtr(9)})
	assert.True(t, changed)
	assert.Equal(t, 9, *merged.Remaining)
	assert.Equal(t, 10, *prev.Remaining, "prior state must stay intact")
}
