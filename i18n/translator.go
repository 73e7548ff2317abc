package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "slice" or "count").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "cardinality_too_few":
			return "スライスの要素数が少なすぎます"
		case "cardinality_too_many":
			return "スライスの要素数が多すぎます"
		case "discriminator_failure":
			return "ディスクリミネータが失敗しました"
		case "discriminator_unknown":
			return "未宣言のスライス名です"
		case "materialization_failure":
			return "要素の型検証に失敗しました"
		case "duplicate_slice":
			return "スライス名が重複しています"
		case "reserved_slice_name":
			return "予約されたスライス名です"
		case "invalid_cardinality":
			return "カーディナリティが不正です"
		case "slice_unknown":
			return "宣言されていないスライスです"
		case "access_mismatch":
			return "カーディナリティに合わないアクセスです"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "cardinality_too_few":
			return "too few elements for slice"
		case "cardinality_too_many":
			return "too many elements for slice"
		case "discriminator_failure":
			return "discriminator failed"
		case "discriminator_unknown":
			return "undeclared slice name"
		case "materialization_failure":
			return "element failed type validation"
		case "duplicate_slice":
			return "duplicate slice name"
		case "reserved_slice_name":
			return "reserved slice name"
		case "invalid_cardinality":
			return "invalid cardinality"
		case "slice_unknown":
			return "slice not declared"
		case "access_mismatch":
			return "accessor does not match declared cardinality"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
