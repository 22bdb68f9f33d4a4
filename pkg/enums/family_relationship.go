package enums

import "fmt"

// FamilyRelationship qualifies a family-category contact.
type FamilyRelationship string

const (
	FamilyRelationshipDaughter      FamilyRelationship = "daughter"
	FamilyRelationshipSon           FamilyRelationship = "son"
	FamilyRelationshipSpouse        FamilyRelationship = "spouse"
	FamilyRelationshipGrandson      FamilyRelationship = "grandson"
	FamilyRelationshipGranddaughter FamilyRelationship = "granddaughter"
	FamilyRelationshipGrandchild    FamilyRelationship = "grandchild"
	FamilyRelationshipNephew        FamilyRelationship = "nephew"
	FamilyRelationshipNiece         FamilyRelationship = "niece"
	FamilyRelationshipOther         FamilyRelationship = "other"
)

var validFamilyRelationships = []FamilyRelationship{
	FamilyRelationshipDaughter,
	FamilyRelationshipSon,
	FamilyRelationshipSpouse,
	FamilyRelationshipGrandson,
	FamilyRelationshipGranddaughter,
	FamilyRelationshipGrandchild,
	FamilyRelationshipNephew,
	FamilyRelationshipNiece,
	FamilyRelationshipOther,
}

// FamilyRelationships returns the canonical ordering used by picker UIs.
func FamilyRelationships() []FamilyRelationship {
	out := make([]FamilyRelationship, len(validFamilyRelationships))
	copy(out, validFamilyRelationships)
	return out
}

// IsValid checks whether the given relationship matches the canonical enum.
func (f FamilyRelationship) IsValid() bool {
	for _, candidate := range validFamilyRelationships {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFamilyRelationship converts raw strings into FamilyRelationship.
func ParseFamilyRelationship(value string) (FamilyRelationship, error) {
	for _, candidate := range validFamilyRelationships {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid family relationship %q", value)
}
