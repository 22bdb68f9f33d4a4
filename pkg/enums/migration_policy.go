package enums

import "fmt"

// MigrationPolicy selects how the contact store treats persisted data that
// predates the current schema version.
type MigrationPolicy string

const (
	// MigrationPolicyReset discards outdated data and reseeds the fixed
	// default demo set.
	MigrationPolicyReset MigrationPolicy = "reset"
	// MigrationPolicyReconcile keeps user data and idempotently inserts
	// region-specific default contacts keyed by phone number.
	MigrationPolicyReconcile MigrationPolicy = "reconcile"
)

var validMigrationPolicies = []MigrationPolicy{
	MigrationPolicyReset,
	MigrationPolicyReconcile,
}

// IsValid checks whether the given policy matches the canonical enum.
func (m MigrationPolicy) IsValid() bool {
	for _, candidate := range validMigrationPolicies {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMigrationPolicy converts raw strings into MigrationPolicy.
func ParseMigrationPolicy(value string) (MigrationPolicy, error) {
	for _, candidate := range validMigrationPolicies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid migration policy %q", value)
}
