package region

import (
	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/internal/localization"
	"github.com/angelmondragon/easydial-core/pkg/enums"
)

var languageByRegion = map[enums.AppRegion]enums.AppLanguage{
	enums.AppRegionChina:      enums.AppLanguageChinese,
	enums.AppRegionJapan:      enums.AppLanguageJapanese,
	enums.AppRegionSouthKorea: enums.AppLanguageKorean,
	enums.AppRegionSpain:      enums.AppLanguageSpanish,
	enums.AppRegionFrance:     enums.AppLanguageFrench,
	enums.AppRegionGermany:    enums.AppLanguageGerman,
	enums.AppRegionItaly:      enums.AppLanguageItalian,
	enums.AppRegionPortugal:   enums.AppLanguagePortuguese,
	enums.AppRegionBrazil:     enums.AppLanguagePortuguese,
}

// Language maps a region to its display language. Regions without a
// dedicated language fall back to English.
func Language(region enums.AppRegion) enums.AppLanguage {
	if language, ok := languageByRegion[region]; ok {
		return language
	}
	return enums.AppLanguageEnglish
}

var phonePrefixByRegion = map[enums.AppRegion]string{
	enums.AppRegionChina:      "+86",
	enums.AppRegionJapan:      "+81",
	enums.AppRegionSouthKorea: "+82",
	enums.AppRegionSpain:      "+34",
	enums.AppRegionFrance:     "+33",
	enums.AppRegionGermany:    "+49",
	enums.AppRegionItaly:      "+39",
	enums.AppRegionPortugal:   "+351",
	enums.AppRegionBrazil:     "+55",
	enums.AppRegionUK:         "+44",
	enums.AppRegionCanada:     "+1",
	enums.AppRegionUS:         "+1",
	enums.AppRegionAustralia:  "+61",
	enums.AppRegionSingapore:  "+65",
}

// PhonePrefix maps a region to its international dialing prefix.
func PhonePrefix(region enums.AppRegion) string {
	if prefix, ok := phonePrefixByRegion[region]; ok {
		return prefix
	}
	return "+1"
}

var phoneDigitsByRegion = map[enums.AppRegion]int{
	enums.AppRegionChina:      11,
	enums.AppRegionJapan:      10,
	enums.AppRegionSouthKorea: 10,
	enums.AppRegionSpain:      9,
	enums.AppRegionFrance:     9,
	enums.AppRegionGermany:    10,
	enums.AppRegionItaly:      10,
	enums.AppRegionPortugal:   9,
	enums.AppRegionBrazil:     11,
	enums.AppRegionUK:         10,
	enums.AppRegionCanada:     10,
	enums.AppRegionUS:         10,
	enums.AppRegionAustralia:  9,
	enums.AppRegionSingapore:  8,
}

// ExpectedPhoneDigits maps a region to its local-number length.
func ExpectedPhoneDigits(region enums.AppRegion) int {
	if digits, ok := phoneDigitsByRegion[region]; ok {
		return digits
	}
	return 10
}

// EmergencyNumber pairs an emergency service with its regional dial string.
type EmergencyNumber struct {
	Service    enums.EmergencyService
	DialString string
}

var emergencyNumbersByRegion = map[enums.AppRegion][]EmergencyNumber{
	enums.AppRegionChina: {
		{enums.EmergencyServiceMedical, "120"},
		{enums.EmergencyServicePolice, "110"},
		{enums.EmergencyServiceFire, "119"},
		{enums.EmergencyServiceTraffic, "122"},
	},
	enums.AppRegionJapan: {
		{enums.EmergencyServiceMedical, "119"},
		{enums.EmergencyServicePolice, "110"},
		{enums.EmergencyServiceFire, "119"},
	},
	enums.AppRegionSouthKorea: {
		{enums.EmergencyServiceMedical, "119"},
		{enums.EmergencyServicePolice, "112"},
		{enums.EmergencyServiceFire, "119"},
	},
	enums.AppRegionSpain: {
		{enums.EmergencyServiceMedical, "112"},
		{enums.EmergencyServicePolice, "091"},
		{enums.EmergencyServiceFire, "080"},
	},
	enums.AppRegionFrance: {
		{enums.EmergencyServiceMedical, "15"},
		{enums.EmergencyServicePolice, "17"},
		{enums.EmergencyServiceFire, "18"},
	},
	enums.AppRegionGermany: {
		{enums.EmergencyServiceMedical, "112"},
		{enums.EmergencyServicePolice, "110"},
		{enums.EmergencyServiceFire, "112"},
	},
	enums.AppRegionItaly: {
		{enums.EmergencyServiceMedical, "118"},
		{enums.EmergencyServicePolice, "113"},
		{enums.EmergencyServiceFire, "115"},
	},
	enums.AppRegionPortugal: {
		{enums.EmergencyServiceMedical, "112"},
		{enums.EmergencyServicePolice, "112"},
		{enums.EmergencyServiceFire, "112"},
	},
	enums.AppRegionBrazil: {
		{enums.EmergencyServiceMedical, "192"},
		{enums.EmergencyServicePolice, "190"},
		{enums.EmergencyServiceFire, "193"},
	},
	enums.AppRegionUK: {
		{enums.EmergencyServiceMedical, "999"},
		{enums.EmergencyServicePolice, "999"},
		{enums.EmergencyServiceFire, "999"},
	},
	enums.AppRegionCanada: {
		{enums.EmergencyServiceMedical, "911"},
	},
	enums.AppRegionUS: {
		{enums.EmergencyServiceMedical, "911"},
	},
	enums.AppRegionAustralia: {
		{enums.EmergencyServiceMedical, "000"},
	},
	enums.AppRegionSingapore: {
		{enums.EmergencyServiceMedical, "995"},
		{enums.EmergencyServicePolice, "999"},
	},
}

// EmergencyNumbers maps a region to its ordered emergency lines. Regions
// without dedicated numbers use the North American default.
func EmergencyNumbers(region enums.AppRegion) []EmergencyNumber {
	if numbers, ok := emergencyNumbersByRegion[region]; ok {
		out := make([]EmergencyNumber, len(numbers))
		copy(out, numbers)
		return out
	}
	return []EmergencyNumber{{enums.EmergencyServiceMedical, "911"}}
}

// EmergencyContacts builds the synthetic system-emergency contacts for the
// region. They are recomputed on every call and never persisted.
func EmergencyContacts(region enums.AppRegion, table *localization.Table) []catalog.Contact {
	numbers := EmergencyNumbers(region)
	out := make([]catalog.Contact, 0, len(numbers))
	for _, number := range numbers {
		out = append(out, catalog.NewEmergency(table.ServiceLabel(number.Service), number.DialString, number.Service))
	}
	return out
}
