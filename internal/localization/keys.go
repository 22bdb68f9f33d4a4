package localization

// StringKey names a UI string. Lookups are total: a key missing from the
// active language falls back to English, and an unknown key yields "".
type StringKey string

const (
	KeyAppTitle             StringKey = "app_title"
	KeySubtitle             StringKey = "subtitle"
	KeySystemEmergencyTitle StringKey = "system_emergency_title"
	KeyFamilyTitle          StringKey = "family_title"
	KeyOthersTitle          StringKey = "others_title"
	KeyAddFamilyButton      StringKey = "add_family_button"
	KeyAddOtherButton       StringKey = "add_other_button"
	KeyNoFamilyPlaceholder  StringKey = "no_family_placeholder"
	KeyNoOtherPlaceholder   StringKey = "no_other_placeholder"
	KeyConfirmCallTitle     StringKey = "confirm_call_title"
	KeyCallButton           StringKey = "call_button"
	KeyCancelButton         StringKey = "cancel_button"
	KeyHangUpButton         StringKey = "hang_up_button"
	KeyCallDurationLabel    StringKey = "call_duration_label"
	KeyConnectingLabel      StringKey = "connecting_label"
	KeyNameField            StringKey = "name_field"
	KeyPhoneField           StringKey = "phone_field"
	KeyRelationshipField    StringKey = "relationship_field"
	KeyTypeField            StringKey = "type_field"
	KeySaveButton           StringKey = "save_button"
	KeyDeleteButton         StringKey = "delete_button"
	KeyEditButton           StringKey = "edit_button"
	KeyAddFamilyTitle       StringKey = "add_family_title"
	KeyAddOtherTitle        StringKey = "add_other_title"
	KeyEditContactTitle     StringKey = "edit_contact_title"
	KeyChoosePhotoButton    StringKey = "choose_photo_button"
	KeySwipeHint            StringKey = "swipe_hint"
	KeyInvalidPhoneDigits   StringKey = "invalid_phone_message"
	KeyInvalidPhoneLength   StringKey = "invalid_phone_length_message"
)

const (
	relationshipKeyPrefix = "relationship."
	otherTypeKeyPrefix    = "other_type."
	serviceKeyPrefix      = "emergency_service."
)
