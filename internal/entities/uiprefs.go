package entities

// Theme selects the display color scheme
type Theme string

// Themes
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Column layout bounds
const (
	MinColumnLayout int32 = 2
	MaxColumnLayout int32 = 6
)

// UIPreferenceState holds display preferences, independent of build content.
// All fields are persisted on every change.
type UIPreferenceState struct {
	ColumnLayout      int32 `json:"columnLayout"`
	SidebarCollapsed  bool  `json:"sidebarCollapsed"`
	ShowTotalsWindow  bool  `json:"showTotalsWindow"`
	ShowSetBonusPanel bool  `json:"showSetBonusPanel"`
	Theme             Theme `json:"theme"`
}

// NewUIPreferenceState returns the default preferences
func NewUIPreferenceState() UIPreferenceState {
	return UIPreferenceState{
		ColumnLayout:     3,
		ShowTotalsWindow: true,
		Theme:            ThemeDark,
	}
}
