package enums

import "fmt"

// AppScreen tags the screen currently shown by the renderer.
type AppScreen string

const (
	AppScreenHero        AppScreen = "hero"
	AppScreenHome        AppScreen = "home"
	AppScreenConfirm     AppScreen = "confirm"
	AppScreenNewFamily   AppScreen = "new_family"
	AppScreenNewOther    AppScreen = "new_other"
	AppScreenEditContact AppScreen = "edit_contact"
	AppScreenInCall      AppScreen = "in_call"
)

var validAppScreens = []AppScreen{
	AppScreenHero,
	AppScreenHome,
	AppScreenConfirm,
	AppScreenNewFamily,
	AppScreenNewOther,
	AppScreenEditContact,
	AppScreenInCall,
}

// IsValid checks whether the given screen matches the canonical enum.
func (a AppScreen) IsValid() bool {
	for _, candidate := range validAppScreens {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppScreen converts raw strings into AppScreen.
func ParseAppScreen(value string) (AppScreen, error) {
	for _, candidate := range validAppScreens {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app screen %q", value)
}
