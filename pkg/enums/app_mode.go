package enums

import "fmt"

// AppMode gates whether editing affordances are exposed upstream. Use mode
// is call-only; setup mode unlocks add/edit/delete.
type AppMode string

const (
	AppModeUse   AppMode = "use"
	AppModeSetup AppMode = "setup"
)

var validAppModes = []AppMode{
	AppModeUse,
	AppModeSetup,
}

// IsValid checks whether the given mode matches the canonical enum.
func (a AppMode) IsValid() bool {
	for _, candidate := range validAppModes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppMode converts raw strings into AppMode.
func ParseAppMode(value string) (AppMode, error) {
	for _, candidate := range validAppModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app mode %q", value)
}
