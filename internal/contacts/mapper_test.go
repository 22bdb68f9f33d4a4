package contacts

import (
	"testing"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/errors"
	"github.com/google/uuid"
)

func TestRecordRoundTrip(t *testing.T) {
	contacts := []catalog.Contact{
		catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter),
		catalog.NewOther("Family Doctor", "5550101", enums.OtherContactTypeDoctor),
	}
	contacts[0].Avatar = []byte{0x01, 0x02}

	records := toRecords(contacts)
	for i, record := range records {
		if record.Position != i {
			t.Fatalf("expected position %d, got %d", i, record.Position)
		}
		back, err := fromRecord(record)
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if back.ID != contacts[i].ID || back.Name != contacts[i].Name || back.PhoneNumber != contacts[i].PhoneNumber {
			t.Fatalf("round trip mismatch: %+v vs %+v", back, contacts[i])
		}
		if back.Category() != contacts[i].Category() {
			t.Fatalf("category mismatch: %s vs %s", back.Category(), contacts[i].Category())
		}
	}

	relationship, ok := mustDecode(t, records[0]).Relationship()
	if !ok || relationship != enums.FamilyRelationshipDaughter {
		t.Fatalf("expected daughter relationship, got %v %v", relationship, ok)
	}
}

func mustDecode(t *testing.T, record models.ContactRecord) catalog.Contact {
	t.Helper()
	contact, err := fromRecord(record)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return contact
}

func TestFromRecordRejectsMismatchedDetails(t *testing.T) {
	relationship := enums.FamilyRelationshipSon
	badRelationship := enums.FamilyRelationship("cousin_twice_removed")

	cases := []struct {
		name   string
		record models.ContactRecord
	}{
		{"family_without_relationship", models.ContactRecord{ID: uuid.New(), Category: enums.ContactCategoryFamily}},
		{"family_with_unknown_relationship", models.ContactRecord{ID: uuid.New(), Category: enums.ContactCategoryFamily, Relationship: &badRelationship}},
		{"other_without_type", models.ContactRecord{ID: uuid.New(), Category: enums.ContactCategoryOther}},
		{"emergency_without_service", models.ContactRecord{ID: uuid.New(), Category: enums.ContactCategorySystemEmergency}},
		{"unknown_category", models.ContactRecord{ID: uuid.New(), Category: "pet", Relationship: &relationship}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fromRecord(tc.record)
			if err == nil {
				t.Fatal("expected decode error")
			}
			appErr := errors.As(err)
			if appErr == nil || appErr.Code() != errors.CodeDecode {
				t.Fatalf("expected decode code, got %v", err)
			}
			if appErr.Details() != tc.record.ID.String() {
				t.Fatalf("expected offending row id in details, got %v", appErr.Details())
			}
		})
	}
}
