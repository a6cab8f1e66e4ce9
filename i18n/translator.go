package i18n

import "sync/atomic"

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須プロパティが設定されていません"
		case "invalid_type":
			return "型が不正です"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "required":
			return "required property missing"
		case "invalid_type":
			return "invalid type"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

type active struct{ Translator }

var current atomic.Pointer[active]

func translator() Translator {
	if a := current.Load(); a != nil {
		return a.Translator
	}
	return dictTranslator{lang: "en"}
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
// It is safe to call while other goroutines format messages.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&active{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&active{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return translator().Message(code, data) }
