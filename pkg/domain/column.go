package domain

// ColumnType distinguishes the single settings column from ordinary content columns
type ColumnType string

// column types
const (
	ColumnContent  ColumnType = "content"
	ColumnSettings ColumnType = "settings"
)

// Column represents one embedded view of the deck with its recorded navigation state
type Column struct {
	ID    string     `json:"id"`
	Type  ColumnType `json:"type"`
	Title string     `json:"title"`
	URL   string     `json:"url"`
}

// IsSettings reports whether the column is the settings entity rather than a content column
func (c Column) IsSettings() bool {
	return c.Type == ColumnSettings
}
