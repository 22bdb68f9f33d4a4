package catalog

import (
	"github.com/angelmondragon/easydial-core/internal/localization"
	"github.com/angelmondragon/easydial-core/pkg/enums"
)

// IconColor names the tint the renderer applies to a contact icon.
type IconColor string

const (
	IconColorRed    IconColor = "red"
	IconColorBlue   IconColor = "blue"
	IconColorOrange IconColor = "orange"
)

// DisplayName returns the localized service name for emergency contacts and
// the stored name for everyone else.
func DisplayName(c Contact, table *localization.Table) string {
	if service, ok := c.EmergencyService(); ok {
		return table.ServiceLabel(service)
	}
	return c.Name
}

// Subtitle derives the secondary line shown under a contact. Demo contacts
// hide it; emergency contacts show their dial string; family and other
// contacts show their localized label.
func Subtitle(c Contact, table *localization.Table) (string, bool) {
	if c.IsDefault() {
		return "", false
	}

	switch c.Category() {
	case enums.ContactCategorySystemEmergency:
		return c.PhoneNumber, true
	case enums.ContactCategoryFamily:
		if relationship, ok := c.Relationship(); ok {
			return table.RelationshipLabel(relationship), true
		}
		return "", false
	case enums.ContactCategoryOther:
		if otherType, ok := c.OtherType(); ok {
			return table.OtherTypeLabel(otherType), true
		}
		return "", false
	default:
		return "", false
	}
}

// Glyph returns the icon name for a contact. Total over all categories and
// subtypes with explicit defaults.
func Glyph(c Contact) string {
	switch c.Category() {
	case enums.ContactCategorySystemEmergency:
		service, _ := c.EmergencyService()
		switch service {
		case enums.EmergencyServiceMedical:
			return "cross.case.fill"
		case enums.EmergencyServicePolice:
			return "shield.lefthalf.filled"
		case enums.EmergencyServiceFire:
			return "flame.fill"
		case enums.EmergencyServiceTraffic:
			return "car.fill"
		default:
			return "phone.fill"
		}
	case enums.ContactCategoryFamily:
		return "person.fill"
	case enums.ContactCategoryOther:
		otherType, _ := c.OtherType()
		switch otherType {
		case enums.OtherContactTypeDoctor:
			return "stethoscope"
		case enums.OtherContactTypeCaregiver:
			return "heart.circle.fill"
		case enums.OtherContactTypeNeighbor:
			return "house.fill"
		case enums.OtherContactTypePropertyManager:
			return "wrench.and.screwdriver.fill"
		case enums.OtherContactTypeCableTV:
			return "tv.fill"
		case enums.OtherContactTypeWaterCompany:
			return "drop.fill"
		case enums.OtherContactTypePowerCompany:
			return "bolt.fill"
		case enums.OtherContactTypeGasCompany:
			return "flame.fill"
		case enums.OtherContactTypeCommunityRestaurant:
			return "fork.knife"
		case enums.OtherContactTypeSeniorUniversity:
			return "music.note"
		case enums.OtherContactTypeFriend:
			return "person.2.fill"
		default:
			return "person.crop.circle"
		}
	default:
		return "person.crop.circle"
	}
}

// Tint returns the icon color for a contact. Total with explicit defaults.
func Tint(c Contact) IconColor {
	switch c.Category() {
	case enums.ContactCategorySystemEmergency:
		service, _ := c.EmergencyService()
		switch service {
		case enums.EmergencyServicePolice:
			return IconColorBlue
		case enums.EmergencyServiceFire:
			return IconColorOrange
		default:
			return IconColorRed
		}
	case enums.ContactCategoryFamily:
		return IconColorOrange
	default:
		return IconColorBlue
	}
}

// DefaultEmoji returns the avatar emoji used when no photo is set. Emergency
// contacts and unmapped other-types have none.
func DefaultEmoji(c Contact) (string, bool) {
	switch c.Category() {
	case enums.ContactCategoryFamily:
		relationship, _ := c.Relationship()
		switch relationship {
		case enums.FamilyRelationshipDaughter:
			return "👩🏻‍🦰", true
		case enums.FamilyRelationshipSon:
			return "👨", true
		case enums.FamilyRelationshipSpouse:
			return "❤️", true
		case enums.FamilyRelationshipGrandson:
			return "👦🏼", true
		case enums.FamilyRelationshipGranddaughter:
			return "🧒🏼", true
		case enums.FamilyRelationshipGrandchild:
			return "🧒", true
		case enums.FamilyRelationshipNephew:
			return "👦", true
		case enums.FamilyRelationshipNiece:
			return "👧", true
		default:
			return "🧑", true
		}
	case enums.ContactCategoryOther:
		otherType, _ := c.OtherType()
		switch otherType {
		case enums.OtherContactTypeCableTV:
			return "📺", true
		case enums.OtherContactTypePropertyManager:
			return "🛠️", true
		case enums.OtherContactTypeDoctor:
			return "🩺", true
		case enums.OtherContactTypeWaterCompany:
			return "🚰", true
		case enums.OtherContactTypePowerCompany:
			return "💡", true
		case enums.OtherContactTypeCommunityRestaurant:
			return "🍱", true
		case enums.OtherContactTypeGasCompany:
			return "🔥", true
		case enums.OtherContactTypeFriend:
			return "👭", true
		case enums.OtherContactTypeSeniorUniversity:
			return "🎼", true
		case enums.OtherContactTypeCaregiver:
			return "🤝", true
		case enums.OtherContactTypeNeighbor:
			return "🏠", true
		default:
			return "", false
		}
	default:
		return "", false
	}
}
