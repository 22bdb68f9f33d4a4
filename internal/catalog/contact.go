package catalog

import (
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/google/uuid"
)

// DefaultContactPhone is the sentinel number shared by seeded demo contacts.
// Contacts carrying it hide their subtitle.
const DefaultContactPhone = "1234567890"

// Details is the category-discriminated payload of a contact. Exactly one
// variant exists per contact, so the "one sub-attribute per category"
// invariant holds structurally.
type Details interface {
	category() enums.ContactCategory
}

// FamilyDetails qualifies a family contact.
type FamilyDetails struct {
	Relationship enums.FamilyRelationship
}

func (FamilyDetails) category() enums.ContactCategory { return enums.ContactCategoryFamily }

// OtherDetails qualifies an other-category contact.
type OtherDetails struct {
	Type enums.OtherContactType
}

func (OtherDetails) category() enums.ContactCategory { return enums.ContactCategoryOther }

// EmergencyDetails qualifies a synthetic system emergency contact.
type EmergencyDetails struct {
	Service enums.EmergencyService
}

func (EmergencyDetails) category() enums.ContactCategory { return enums.ContactCategorySystemEmergency }

// Contact is the core domain entity. The ID is assigned at creation and
// never reassigned; the category is fixed by the Details variant.
type Contact struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	Details     Details
	Avatar      []byte
}

// NewFamily builds a family contact with a fresh id.
func NewFamily(name, phoneNumber string, relationship enums.FamilyRelationship) Contact {
	return Contact{
		ID:          uuid.New(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Details:     FamilyDetails{Relationship: relationship},
	}
}

// NewOther builds an other-category contact with a fresh id.
func NewOther(name, phoneNumber string, otherType enums.OtherContactType) Contact {
	return Contact{
		ID:          uuid.New(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Details:     OtherDetails{Type: otherType},
	}
}

// NewEmergency builds a synthetic system emergency contact. These are
// recomputed per region and never persisted.
func NewEmergency(name, dialString string, service enums.EmergencyService) Contact {
	return Contact{
		ID:          uuid.New(),
		Name:        name,
		PhoneNumber: dialString,
		Details:     EmergencyDetails{Service: service},
	}
}

// Category returns the category fixed by the details variant.
func (c Contact) Category() enums.ContactCategory {
	if c.Details == nil {
		return ""
	}
	return c.Details.category()
}

// Relationship returns the family relationship when present.
func (c Contact) Relationship() (enums.FamilyRelationship, bool) {
	if details, ok := c.Details.(FamilyDetails); ok {
		return details.Relationship, true
	}
	return "", false
}

// OtherType returns the other-contact type when present.
func (c Contact) OtherType() (enums.OtherContactType, bool) {
	if details, ok := c.Details.(OtherDetails); ok {
		return details.Type, true
	}
	return "", false
}

// EmergencyService returns the emergency service when present.
func (c Contact) EmergencyService() (enums.EmergencyService, bool) {
	if details, ok := c.Details.(EmergencyDetails); ok {
		return details.Service, true
	}
	return "", false
}

// IsDefault reports whether the contact is a seeded demo placeholder.
func (c Contact) IsDefault() bool {
	return c.PhoneNumber == DefaultContactPhone
}
