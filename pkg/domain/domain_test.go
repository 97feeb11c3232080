package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_IsSettings(t *testing.T) {
	assert.True(t, Column{Type: ColumnSettings}.IsSettings())
	assert.False(t, Column{Type: ColumnContent}.IsSettings())
	assert.False(t, Column{}.IsSettings())
}

func TestFilterRule_Defined(t *testing.T) {
	f := false
	tests := []struct {
		name string
		rule FilterRule
		want bool
	}{
		{"no predicates", FilterRule{ID: "r", Name: "empty", Enabled: true}, false},
		{"author only", FilterRule{Author: "alice"}, true},
		{"pattern only", FilterRule{TextPattern: "spam"}, true},
		{"retweet false is defined", FilterRule{Retweet: &f}, true},
		{"media false is defined", FilterRule{HasMedia: &f}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Defined())
		})
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	require.Len(t, cfg.Columns, 1)
	assert.True(t, cfg.Columns[0].IsSettings())
	assert.Equal(t, 400, cfg.Settings.ColumnWidth)
	assert.Equal(t, 13, cfg.Settings.FontSize)
	assert.Equal(t, "dark", cfg.Settings.Theme)
}

func TestFilterRule_JSONShape(t *testing.T) {
	v := true
	rule := FilterRule{ID: "r1", Name: "n", Enabled: true, TextPattern: "spam", HasMedia: &v}
	data, err := json.Marshal(rule)
	require.NoError(t, err)

	// tri-state predicates serialize only when set, unset ones must not
	// come back as false on import
	assert.JSONEq(t, `{"id":"r1","name":"n","enabled":true,"textPattern":"spam","hasMedia":true}`, string(data))

	var back FilterRule
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Nil(t, back.Retweet)
	require.NotNil(t, back.HasMedia)
	assert.True(t, *back.HasMedia)
}
