package i18n

// Translator retrieves localized messages for issue and diagnostic codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "validator").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_type":
			return "変換できない型です" + suffix(data, "kind")
		case "sequence_arity":
			return "sequence ノードは要素スキーマをちょうど 1 つ持つ必要があります"
		case "incompatible_validator":
			return "この型には適用できないバリデータです" + suffix(data, "validator")
		case "cyclic_schema":
			return "スキーマが循環しています"
		case "lossy_conversion":
			return "JSON Schema では完全に表現できません" + first(data, "validator", "kind")
		}
	default: // "en"
		switch code {
		case "unsupported_type":
			return "unsupported schema type" + suffix(data, "kind")
		case "sequence_arity":
			return "sequence node must declare exactly one element schema"
		case "incompatible_validator":
			return "validator cannot constrain this kind" + suffix(data, "validator")
		case "cyclic_schema":
			return "schema graph revisits a node on its own path"
		case "lossy_conversion":
			return "constraint has no exact JSON Schema representation" + first(data, "validator", "kind")
		}
	}
	return code
}

func suffix(data map[string]string, key string) string {
	if data == nil {
		return ""
	}
	if v := data[key]; v != "" {
		return ": " + v
	}
	return ""
}

func first(data map[string]string, keys ...string) string {
	for _, k := range keys {
		if s := suffix(data, k); s != "" {
			return s
		}
	}
	return ""
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
