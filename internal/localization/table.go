package localization

import "github.com/angelmondragon/easydial-core/pkg/enums"

// Table resolves UI strings for one language. Lookups are pure and total;
// missing entries fall back to the English base table.
type Table struct {
	language enums.AppLanguage
	strings  map[StringKey]string
}

// ForLanguage returns the table for the given language. Unknown languages
// resolve to the English base table.
func ForLanguage(language enums.AppLanguage) *Table {
	if _, ok := tablesByLanguage[language]; !ok {
		language = enums.AppLanguageEnglish
	}
	return &Table{
		language: language,
		strings:  tablesByLanguage[language],
	}
}

// Language returns the table's language.
func (t *Table) Language() enums.AppLanguage {
	return t.language
}

// Lookup resolves a string key, falling back to English for entries the
// language does not translate.
func (t *Table) Lookup(key StringKey) string {
	if value, ok := t.strings[key]; ok {
		return value
	}
	if value, ok := tablesByLanguage[enums.AppLanguageEnglish][key]; ok {
		return value
	}
	return ""
}

// RelationshipLabel returns the localized label for a family relationship.
func (t *Table) RelationshipLabel(relationship enums.FamilyRelationship) string {
	return t.Lookup(StringKey(relationshipKeyPrefix + string(relationship)))
}

// OtherTypeLabel returns the localized label for an other-contact type.
func (t *Table) OtherTypeLabel(otherType enums.OtherContactType) string {
	return t.Lookup(StringKey(otherTypeKeyPrefix + string(otherType)))
}

// ServiceLabel returns the localized label for an emergency service.
func (t *Table) ServiceLabel(service enums.EmergencyService) string {
	return t.Lookup(StringKey(serviceKeyPrefix + string(service)))
}
