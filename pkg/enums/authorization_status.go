package enums

import "fmt"

// AuthorizationStatus mirrors the location permission state reported by the
// platform location provider.
type AuthorizationStatus string

const (
	AuthorizationStatusNotDetermined AuthorizationStatus = "not_determined"
	AuthorizationStatusAuthorized    AuthorizationStatus = "authorized"
	AuthorizationStatusDenied        AuthorizationStatus = "denied"
	AuthorizationStatusRestricted    AuthorizationStatus = "restricted"
)

var validAuthorizationStatuses = []AuthorizationStatus{
	AuthorizationStatusNotDetermined,
	AuthorizationStatusAuthorized,
	AuthorizationStatusDenied,
	AuthorizationStatusRestricted,
}

// IsValid checks whether the given status matches the canonical enum.
func (a AuthorizationStatus) IsValid() bool {
	for _, candidate := range validAuthorizationStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAuthorizationStatus converts raw strings into AuthorizationStatus.
func ParseAuthorizationStatus(value string) (AuthorizationStatus, error) {
	for _, candidate := range validAuthorizationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid authorization status %q", value)
}
