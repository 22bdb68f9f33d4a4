package contacts

import (
	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/pkg/enums"
)

// DataVersion is bumped whenever the seeded demo set changes shape. Under
// the reset migration policy, a store carrying an older version is wiped
// and reseeded.
const DataVersion = 2

// bannedNumbers are legacy seed numbers dropped on load. 12345 collides
// with the Chinese government services hotline, so dialing it for real
// would be harmful.
var bannedNumbers = map[string]struct{}{
	"12333": {},
	"12345": {},
}

// DefaultDemoContacts returns the seeded demo set: four family entries and
// nine everyday services, all at the sentinel phone number so their
// subtitles stay hidden until edited.
func DefaultDemoContacts() []catalog.Contact {
	phone := catalog.DefaultContactPhone
	return []catalog.Contact{
		catalog.NewFamily("Daughter", phone, enums.FamilyRelationshipDaughter),
		catalog.NewFamily("Son", phone, enums.FamilyRelationshipSon),
		catalog.NewFamily("Granddaughter", phone, enums.FamilyRelationshipGranddaughter),
		catalog.NewFamily("Grandson", phone, enums.FamilyRelationshipGrandson),
		catalog.NewOther("Cable TV", phone, enums.OtherContactTypeCableTV),
		catalog.NewOther("Property Repair", phone, enums.OtherContactTypePropertyManager),
		catalog.NewOther("Family Doctor", phone, enums.OtherContactTypeDoctor),
		catalog.NewOther("Water Company", phone, enums.OtherContactTypeWaterCompany),
		catalog.NewOther("Power Company", phone, enums.OtherContactTypePowerCompany),
		catalog.NewOther("Community Restaurant", phone, enums.OtherContactTypeCommunityRestaurant),
		catalog.NewOther("Gas Company", phone, enums.OtherContactTypeGasCompany),
		catalog.NewOther("Friend", phone, enums.OtherContactTypeFriend),
		catalog.NewOther("Senior University", phone, enums.OtherContactTypeSeniorUniversity),
	}
}

// RegionDefaultContacts returns the extra entries reconciled into a store
// when the device lands in a region. Entries are keyed by exact phone
// number during reconciliation, so listing one here twice is harmless.
// 12349 is the Chinese community services hotline (12345 is deliberately
// avoided, see bannedNumbers).
func RegionDefaultContacts(region enums.AppRegion) []catalog.Contact {
	switch region {
	case enums.AppRegionChina:
		return []catalog.Contact{
			catalog.NewOther("社区服务热线", "12349", enums.OtherContactTypeOther),
		}
	case enums.AppRegionUS:
		return []catalog.Contact{
			catalog.NewOther("Emergency Contact", catalog.DefaultContactPhone, enums.OtherContactTypeOther),
		}
	default:
		return nil
	}
}
