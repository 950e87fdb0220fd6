package i18n

import "sync"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "io":
			return "出力への書き込みに失敗しました"
		case "key_must_be_a_string":
			return "キーは文字列でなければなりません"
		case "custom":
			return "値をエンコードできません"
		case "unsupported_type":
			if typ := data["type"]; typ != "" {
				return "サポートされていない型です: " + typ
			}
			return "サポートされていない型です"
		}
	default: // "en"
		switch code {
		case "io":
			return "write to sink failed"
		case "key_must_be_a_string":
			return "key must be a string"
		case "custom":
			return "value cannot be encoded"
		case "unsupported_type":
			if typ := data["type"]; typ != "" {
				return "unsupported type " + typ
			}
			return "unsupported type"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
