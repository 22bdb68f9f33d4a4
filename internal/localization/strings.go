package localization

import "github.com/angelmondragon/easydial-core/pkg/enums"

var tablesByLanguage = map[enums.AppLanguage]map[StringKey]string{
	enums.AppLanguageEnglish:    englishStrings,
	enums.AppLanguageChinese:    chineseStrings,
	enums.AppLanguageJapanese:   japaneseStrings,
	enums.AppLanguageKorean:     koreanStrings,
	enums.AppLanguageSpanish:    spanishStrings,
	enums.AppLanguageFrench:     frenchStrings,
	enums.AppLanguageGerman:     germanStrings,
	enums.AppLanguageItalian:    italianStrings,
	enums.AppLanguagePortuguese: portugueseStrings,
}

// englishStrings is the complete base table every other language falls back to.
var englishStrings = map[StringKey]string{
	KeyAppTitle:             "Emergency Contacts",
	KeySubtitle:             "Tap a contact, then press Call.",
	KeySystemEmergencyTitle: "System Emergency",
	KeyFamilyTitle:          "Family",
	KeyOthersTitle:          "Others",
	KeyAddFamilyButton:      "Add Family Contact",
	KeyAddOtherButton:       "Add Other Contact",
	KeyNoFamilyPlaceholder:  "No family contacts yet.",
	KeyNoOtherPlaceholder:   "No other contacts yet.",
	KeyConfirmCallTitle:     "Confirm Call",
	KeyCallButton:           "Call",
	KeyCancelButton:         "Cancel",
	KeyHangUpButton:         "Hang Up",
	KeyCallDurationLabel:    "Call Duration",
	KeyConnectingLabel:      "Connecting…",
	KeyNameField:            "Name",
	KeyPhoneField:           "Phone Number",
	KeyRelationshipField:    "Relationship",
	KeyTypeField:            "Type",
	KeySaveButton:           "Save",
	KeyDeleteButton:         "Delete This Contact",
	KeyEditButton:           "Edit",
	KeyAddFamilyTitle:       "Add Family Contact",
	KeyAddOtherTitle:        "Add Other Contact",
	KeyEditContactTitle:     "Edit Contact",
	KeyChoosePhotoButton:    "Add Photo",
	KeySwipeHint:            "Swipe left to delete, right to edit",
	KeyInvalidPhoneDigits:   "Phone number can only contain digits",
	KeyInvalidPhoneLength:   "Phone number has invalid length",

	relationshipKeyPrefix + "daughter":      "Daughter",
	relationshipKeyPrefix + "son":           "Son",
	relationshipKeyPrefix + "spouse":        "Spouse",
	relationshipKeyPrefix + "grandson":      "Grandson",
	relationshipKeyPrefix + "granddaughter": "Granddaughter",
	relationshipKeyPrefix + "grandchild":    "Grandchild",
	relationshipKeyPrefix + "nephew":        "Nephew",
	relationshipKeyPrefix + "niece":         "Niece",
	relationshipKeyPrefix + "other":         "Family",

	otherTypeKeyPrefix + "doctor":               "Family Doctor",
	otherTypeKeyPrefix + "caregiver":            "Caregiver",
	otherTypeKeyPrefix + "neighbor":             "Neighbor",
	otherTypeKeyPrefix + "property_manager":     "Property Repair",
	otherTypeKeyPrefix + "cable_tv":             "Cable TV",
	otherTypeKeyPrefix + "water_company":        "Water Company",
	otherTypeKeyPrefix + "power_company":        "Power Company",
	otherTypeKeyPrefix + "gas_company":          "Gas Company",
	otherTypeKeyPrefix + "community_restaurant": "Community Restaurant",
	otherTypeKeyPrefix + "senior_university":    "Senior University",
	otherTypeKeyPrefix + "friend":               "Friend",
	otherTypeKeyPrefix + "other":                "Contact",

	serviceKeyPrefix + "medical": "Emergency",
	serviceKeyPrefix + "police":  "Police",
	serviceKeyPrefix + "fire":    "Fire",
	serviceKeyPrefix + "traffic": "Traffic Police",
}

var chineseStrings = map[StringKey]string{
	KeyAppTitle:             "紧急联系人",
	KeySubtitle:             "点击联系人，然后按呼叫。",
	KeySystemEmergencyTitle: "紧急电话",
	KeyFamilyTitle:          "家人",
	KeyOthersTitle:          "其他",
	KeyAddFamilyButton:      "添加家人",
	KeyAddOtherButton:       "添加其他联系人",
	KeyNoFamilyPlaceholder:  "还没有家人联系人。",
	KeyNoOtherPlaceholder:   "还没有其他联系人。",
	KeyConfirmCallTitle:     "确认呼叫",
	KeyCallButton:           "呼叫",
	KeyCancelButton:         "取消",
	KeyHangUpButton:         "挂断",
	KeyCallDurationLabel:    "通话时长",
	KeyConnectingLabel:      "正在接通…",
	KeyNameField:            "姓名",
	KeyPhoneField:           "电话号码",
	KeyRelationshipField:    "关系",
	KeyTypeField:            "类型",
	KeySaveButton:           "保存",
	KeyDeleteButton:         "删除此联系人",
	KeyEditButton:           "编辑",
	KeyAddFamilyTitle:       "添加家人",
	KeyAddOtherTitle:        "添加其他联系人",
	KeyEditContactTitle:     "编辑联系人",
	KeyChoosePhotoButton:    "添加照片",
	KeySwipeHint:            "左滑删除，右滑编辑",
	KeyInvalidPhoneDigits:   "电话号码只能包含数字",
	KeyInvalidPhoneLength:   "电话号码长度不正确",

	relationshipKeyPrefix + "daughter":      "女儿",
	relationshipKeyPrefix + "son":           "儿子",
	relationshipKeyPrefix + "spouse":        "配偶",
	relationshipKeyPrefix + "grandson":      "孙子",
	relationshipKeyPrefix + "granddaughter": "孙女",
	relationshipKeyPrefix + "grandchild":    "孙辈",
	relationshipKeyPrefix + "nephew":        "侄子",
	relationshipKeyPrefix + "niece":         "侄女",
	relationshipKeyPrefix + "other":         "家人",

	otherTypeKeyPrefix + "doctor":               "家庭医生",
	otherTypeKeyPrefix + "caregiver":            "护工",
	otherTypeKeyPrefix + "neighbor":             "邻居",
	otherTypeKeyPrefix + "property_manager":     "物业维修",
	otherTypeKeyPrefix + "cable_tv":             "有线电视",
	otherTypeKeyPrefix + "water_company":        "自来水公司",
	otherTypeKeyPrefix + "power_company":        "电力公司",
	otherTypeKeyPrefix + "gas_company":          "燃气公司",
	otherTypeKeyPrefix + "community_restaurant": "社区食堂",
	otherTypeKeyPrefix + "senior_university":    "老年大学",
	otherTypeKeyPrefix + "friend":               "朋友",
	otherTypeKeyPrefix + "other":                "联系人",

	serviceKeyPrefix + "medical": "急救",
	serviceKeyPrefix + "police":  "报警",
	serviceKeyPrefix + "fire":    "火警",
	serviceKeyPrefix + "traffic": "交通事故",
}

var japaneseStrings = map[StringKey]string{
	KeyAppTitle:             "緊急連絡先",
	KeyConfirmCallTitle:     "発信の確認",
	KeyCallButton:           "発信",
	KeyCancelButton:         "キャンセル",
	KeyHangUpButton:         "通話終了",
	KeyCallDurationLabel:    "通話時間",
	KeyConnectingLabel:      "接続中…",
	KeyFamilyTitle:          "家族",
	KeyOthersTitle:          "その他",
	KeySystemEmergencyTitle: "緊急通報",
	KeySaveButton:           "保存",
	KeyEditButton:           "編集",

	serviceKeyPrefix + "medical": "救急",
	serviceKeyPrefix + "police":  "警察",
	serviceKeyPrefix + "fire":    "消防",
}

var koreanStrings = map[StringKey]string{
	KeyAppTitle:             "비상 연락처",
	KeyConfirmCallTitle:     "통화 확인",
	KeyCallButton:           "전화",
	KeyCancelButton:         "취소",
	KeyHangUpButton:         "통화 종료",
	KeyCallDurationLabel:    "통화 시간",
	KeyConnectingLabel:      "연결 중…",
	KeyFamilyTitle:          "가족",
	KeyOthersTitle:          "기타",
	KeySystemEmergencyTitle: "긴급 전화",
	KeySaveButton:           "저장",
	KeyEditButton:           "편집",

	serviceKeyPrefix + "medical": "응급",
	serviceKeyPrefix + "police":  "경찰",
	serviceKeyPrefix + "fire":    "소방",
}

var spanishStrings = map[StringKey]string{
	KeyAppTitle:             "Contactos de emergencia",
	KeyConfirmCallTitle:     "Confirmar llamada",
	KeyCallButton:           "Llamar",
	KeyCancelButton:         "Cancelar",
	KeyHangUpButton:         "Colgar",
	KeyCallDurationLabel:    "Duración de la llamada",
	KeyConnectingLabel:      "Conectando…",
	KeyFamilyTitle:          "Familia",
	KeyOthersTitle:          "Otros",
	KeySystemEmergencyTitle: "Emergencias",
	KeySaveButton:           "Guardar",
	KeyEditButton:           "Editar",

	serviceKeyPrefix + "medical": "Emergencias",
	serviceKeyPrefix + "police":  "Policía",
	serviceKeyPrefix + "fire":    "Bomberos",
}

var frenchStrings = map[StringKey]string{
	KeyAppTitle:             "Contacts d'urgence",
	KeyConfirmCallTitle:     "Confirmer l'appel",
	KeyCallButton:           "Appeler",
	KeyCancelButton:         "Annuler",
	KeyHangUpButton:         "Raccrocher",
	KeyCallDurationLabel:    "Durée de l'appel",
	KeyConnectingLabel:      "Connexion…",
	KeyFamilyTitle:          "Famille",
	KeyOthersTitle:          "Autres",
	KeySystemEmergencyTitle: "Urgences",
	KeySaveButton:           "Enregistrer",
	KeyEditButton:           "Modifier",

	serviceKeyPrefix + "medical": "SAMU",
	serviceKeyPrefix + "police":  "Police",
	serviceKeyPrefix + "fire":    "Pompiers",
}

var germanStrings = map[StringKey]string{
	KeyAppTitle:             "Notfallkontakte",
	KeyConfirmCallTitle:     "Anruf bestätigen",
	KeyCallButton:           "Anrufen",
	KeyCancelButton:         "Abbrechen",
	KeyHangUpButton:         "Auflegen",
	KeyCallDurationLabel:    "Gesprächsdauer",
	KeyConnectingLabel:      "Verbinden…",
	KeyFamilyTitle:          "Familie",
	KeyOthersTitle:          "Sonstige",
	KeySystemEmergencyTitle: "Notruf",
	KeySaveButton:           "Speichern",
	KeyEditButton:           "Bearbeiten",

	serviceKeyPrefix + "medical": "Notarzt",
	serviceKeyPrefix + "police":  "Polizei",
	serviceKeyPrefix + "fire":    "Feuerwehr",
}

var italianStrings = map[StringKey]string{
	KeyAppTitle:             "Contatti di emergenza",
	KeyConfirmCallTitle:     "Conferma chiamata",
	KeyCallButton:           "Chiama",
	KeyCancelButton:         "Annulla",
	KeyHangUpButton:         "Riaggancia",
	KeyCallDurationLabel:    "Durata chiamata",
	KeyConnectingLabel:      "Connessione…",
	KeyFamilyTitle:          "Famiglia",
	KeyOthersTitle:          "Altri",
	KeySystemEmergencyTitle: "Emergenza",
	KeySaveButton:           "Salva",
	KeyEditButton:           "Modifica",

	serviceKeyPrefix + "medical": "Emergenza sanitaria",
	serviceKeyPrefix + "police":  "Polizia",
	serviceKeyPrefix + "fire":    "Vigili del fuoco",
}

var portugueseStrings = map[StringKey]string{
	KeyAppTitle:             "Contatos de emergência",
	KeyConfirmCallTitle:     "Confirmar chamada",
	KeyCallButton:           "Ligar",
	KeyCancelButton:         "Cancelar",
	KeyHangUpButton:         "Desligar",
	KeyCallDurationLabel:    "Duração da chamada",
	KeyConnectingLabel:      "Conectando…",
	KeyFamilyTitle:          "Família",
	KeyOthersTitle:          "Outros",
	KeySystemEmergencyTitle: "Emergência",
	KeySaveButton:           "Salvar",
	KeyEditButton:           "Editar",

	serviceKeyPrefix + "medical": "Emergência médica",
	serviceKeyPrefix + "police":  "Polícia",
	serviceKeyPrefix + "fire":    "Bombeiros",
}
