package enums

import "fmt"

// OtherContactType qualifies an other-category contact.
type OtherContactType string

const (
	OtherContactTypeDoctor              OtherContactType = "doctor"
	OtherContactTypeCaregiver           OtherContactType = "caregiver"
	OtherContactTypeNeighbor            OtherContactType = "neighbor"
	OtherContactTypePropertyManager     OtherContactType = "property_manager"
	OtherContactTypeCableTV             OtherContactType = "cable_tv"
	OtherContactTypeWaterCompany        OtherContactType = "water_company"
	OtherContactTypePowerCompany        OtherContactType = "power_company"
	OtherContactTypeGasCompany          OtherContactType = "gas_company"
	OtherContactTypeCommunityRestaurant OtherContactType = "community_restaurant"
	OtherContactTypeSeniorUniversity    OtherContactType = "senior_university"
	OtherContactTypeFriend              OtherContactType = "friend"
	OtherContactTypeOther               OtherContactType = "other"
)

var validOtherContactTypes = []OtherContactType{
	OtherContactTypeDoctor,
	OtherContactTypeCaregiver,
	OtherContactTypeNeighbor,
	OtherContactTypePropertyManager,
	OtherContactTypeCableTV,
	OtherContactTypeWaterCompany,
	OtherContactTypePowerCompany,
	OtherContactTypeGasCompany,
	OtherContactTypeCommunityRestaurant,
	OtherContactTypeSeniorUniversity,
	OtherContactTypeFriend,
	OtherContactTypeOther,
}

// OtherContactTypes returns the canonical ordering used by picker UIs.
func OtherContactTypes() []OtherContactType {
	out := make([]OtherContactType, len(validOtherContactTypes))
	copy(out, validOtherContactTypes)
	return out
}

// IsValid checks whether the given type matches the canonical enum.
func (o OtherContactType) IsValid() bool {
	for _, candidate := range validOtherContactTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOtherContactType converts raw strings into OtherContactType.
func ParseOtherContactType(value string) (OtherContactType, error) {
	for _, candidate := range validOtherContactTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid other contact type %q", value)
}
