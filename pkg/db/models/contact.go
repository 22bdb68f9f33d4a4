package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/easydial-core/pkg/enums"
)

// ContactRecord is the persisted row for a user-created contact. System
// emergency contacts are computed per region and never stored here.
type ContactRecord struct {
	ID               uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Name             string                    `gorm:"type:text;not null"`
	PhoneNumber      string                    `gorm:"type:text;not null"`
	Category         enums.ContactCategory     `gorm:"type:text;not null"`
	Relationship     *enums.FamilyRelationship `gorm:"type:text"`
	OtherType        *enums.OtherContactType   `gorm:"type:text"`
	EmergencyService *enums.EmergencyService   `gorm:"type:text"`
	Avatar           []byte                    `gorm:"type:blob"`
	Position         int                       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName keeps the table aligned with the goose migrations.
func (ContactRecord) TableName() string {
	return "contacts"
}
