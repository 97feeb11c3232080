package domain

// FilterRule describes one user-defined content filter. Predicates left at their
// zero value are undefined and match vacuously; defined predicates combine with
// AND inside a rule. Across the rule collection semantics are OR - an item is
// hidden if any enabled rule matches.
type FilterRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Author      string `json:"author,omitempty"`      // case-insensitive exact handle match, without @
	TextPattern string `json:"textPattern,omitempty"` // regular expression over the item body text
	Retweet     *bool  `json:"retweet,omitempty"`     // nil - ignore, otherwise required retweet-ness
	HasMedia    *bool  `json:"hasMedia,omitempty"`    // nil - ignore, otherwise required media presence
}

// Defined reports whether the rule carries at least one predicate.
// A rule with no predicates matches nothing, not everything.
func (r FilterRule) Defined() bool {
	return r.Author != "" || r.TextPattern != "" || r.Retweet != nil || r.HasMedia != nil
}
