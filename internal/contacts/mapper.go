package contacts

import (
	"fmt"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/errors"
)

func toRecord(contact catalog.Contact, position int) models.ContactRecord {
	record := models.ContactRecord{
		ID:          contact.ID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Category:    contact.Category(),
		Avatar:      contact.Avatar,
		Position:    position,
	}
	if relationship, ok := contact.Relationship(); ok {
		record.Relationship = &relationship
	}
	if otherType, ok := contact.OtherType(); ok {
		record.OtherType = &otherType
	}
	if service, ok := contact.EmergencyService(); ok {
		record.EmergencyService = &service
	}
	return record
}

func toRecords(contacts []catalog.Contact) []models.ContactRecord {
	records := make([]models.ContactRecord, 0, len(contacts))
	for position, contact := range contacts {
		records = append(records, toRecord(contact, position))
	}
	return records
}

// fromRecord rebuilds the domain contact from a stored row. A row whose
// category and sub-attribute disagree is a decode failure, not a partial
// contact.
func fromRecord(record models.ContactRecord) (catalog.Contact, error) {
	var details catalog.Details
	switch record.Category {
	case enums.ContactCategoryFamily:
		if record.Relationship == nil || !record.Relationship.IsValid() {
			return catalog.Contact{}, errors.New(errors.CodeDecode, "family contact has no valid relationship").WithDetails(record.ID.String())
		}
		details = catalog.FamilyDetails{Relationship: *record.Relationship}
	case enums.ContactCategoryOther:
		if record.OtherType == nil || !record.OtherType.IsValid() {
			return catalog.Contact{}, errors.New(errors.CodeDecode, "other contact has no valid type").WithDetails(record.ID.String())
		}
		details = catalog.OtherDetails{Type: *record.OtherType}
	case enums.ContactCategorySystemEmergency:
		if record.EmergencyService == nil || !record.EmergencyService.IsValid() {
			return catalog.Contact{}, errors.New(errors.CodeDecode, "emergency contact has no valid service").WithDetails(record.ID.String())
		}
		details = catalog.EmergencyDetails{Service: *record.EmergencyService}
	default:
		return catalog.Contact{}, errors.New(errors.CodeDecode, fmt.Sprintf("contact has unknown category %q", record.Category)).WithDetails(record.ID.String())
	}
	return catalog.Contact{
		ID:          record.ID,
		Name:        record.Name,
		PhoneNumber: record.PhoneNumber,
		Details:     details,
		Avatar:      record.Avatar,
	}, nil
}
