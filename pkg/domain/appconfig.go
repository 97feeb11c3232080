package domain

// DisplaySettings holds presentation preferences owned by the settings UI
type DisplaySettings struct {
	ColumnWidth int    `json:"columnWidth"`
	FontSize    int    `json:"fontSize"`
	Theme       string `json:"theme"`
	HideAds     bool   `json:"hideAds"`
}

// AppConfig is the persisted application state and the import/export document
// shape. Exporting and re-importing it must reproduce equal columns, filters
// and display settings.
type AppConfig struct {
	Columns  []Column        `json:"columns"`
	Filters  []FilterRule    `json:"filters"`
	Settings DisplaySettings `json:"settings"`
}

// DefaultAppConfig returns the initial state with the settings column only
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Columns: []Column{{ID: "settings", Type: ColumnSettings, Title: "Settings"}},
		Settings: DisplaySettings{
			ColumnWidth: 400,
			FontSize:    13,
			Theme:       "dark",
		},
	}
}
