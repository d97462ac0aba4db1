package types

// Theme names accepted by Preferences.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// validThemes is the set of recognized theme values.
var validThemes = map[string]bool{
	ThemeSystem: true,
	ThemeLight:  true,
	ThemeDark:   true,
}

// Preferences holds display settings. They live under their own namespace
// ("prefs") in the same host store as checklist records, so they never show up
// in checklist key enumeration.
type Preferences struct {
	Theme         string `json:"theme"`
	HideComplete  bool   `json:"hide_complete"`
	ConfirmDelete bool   `json:"confirm_delete"`
}

// DefaultPreferences returns the settings used before the user changes
// anything.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         ThemeSystem,
		ConfirmDelete: true,
	}
}

// SetTheme sets the display theme.
// Returns ErrInvalidTheme if the name is not recognized.
func (p *Preferences) SetTheme(theme string) error {
	if !validThemes[theme] {
		return ErrInvalidTheme
	}
	p.Theme = theme
	return nil
}
