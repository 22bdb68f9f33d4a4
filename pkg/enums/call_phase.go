package enums

import "fmt"

// CallPhase is the sub-state of a simulated call: connecting first, then
// active once the connection delay elapses.
type CallPhase string

const (
	CallPhaseConnecting CallPhase = "connecting"
	CallPhaseActive     CallPhase = "active"
)

var validCallPhases = []CallPhase{
	CallPhaseConnecting,
	CallPhaseActive,
}

// IsValid checks whether the given phase matches the canonical enum.
func (c CallPhase) IsValid() bool {
	for _, candidate := range validCallPhases {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCallPhase converts raw strings into CallPhase.
func ParseCallPhase(value string) (CallPhase, error) {
	for _, candidate := range validCallPhases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid call phase %q", value)
}
