package enums

import "fmt"

// ContactCategory is the top-level contact kind. It is fixed at creation
// and never changes for the lifetime of a contact.
type ContactCategory string

const (
	ContactCategorySystemEmergency ContactCategory = "system_emergency"
	ContactCategoryFamily          ContactCategory = "family"
	ContactCategoryOther           ContactCategory = "other"
)

var validContactCategories = []ContactCategory{
	ContactCategorySystemEmergency,
	ContactCategoryFamily,
	ContactCategoryOther,
}

// IsValid checks whether the given category matches the canonical enum.
func (c ContactCategory) IsValid() bool {
	for _, candidate := range validContactCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactCategory converts raw strings into ContactCategory.
func ParseContactCategory(value string) (ContactCategory, error) {
	for _, candidate := range validContactCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact category %q", value)
}
