package enums

import "fmt"

// EmergencyService identifies a regional emergency line.
type EmergencyService string

const (
	EmergencyServiceMedical EmergencyService = "medical"
	EmergencyServicePolice  EmergencyService = "police"
	EmergencyServiceFire    EmergencyService = "fire"
	EmergencyServiceTraffic EmergencyService = "traffic"
)

var validEmergencyServices = []EmergencyService{
	EmergencyServiceMedical,
	EmergencyServicePolice,
	EmergencyServiceFire,
	EmergencyServiceTraffic,
}

// IsValid checks whether the given service matches the canonical enum.
func (e EmergencyService) IsValid() bool {
	for _, candidate := range validEmergencyServices {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEmergencyService converts raw strings into EmergencyService.
func ParseEmergencyService(value string) (EmergencyService, error) {
	for _, candidate := range validEmergencyServices {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid emergency service %q", value)
}
