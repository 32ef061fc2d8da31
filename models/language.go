package models

// Language is a locale code selecting which display-string set is active.
type Language string

const (
	LanguageKyrgyz  Language = "kg"
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// GateLanguages is the set offered at first contact, in display order.
// The in-app switcher offers a wider set; both surfaces write the same slot.
var GateLanguages = []Language{LanguageKyrgyz, LanguageRussian}

// Valid reports whether l is one of the recognized locale codes.
func (l Language) Valid() bool {
	switch l {
	case LanguageKyrgyz, LanguageRussian, LanguageEnglish:
		return true
	}
	return false
}

// Next returns the language that follows l in the in-app switcher cycle
// (en → kg → ru → en). Unknown values restart the cycle at English.
func (l Language) Next() Language {
	switch l {
	case LanguageEnglish:
		return LanguageKyrgyz
	case LanguageKyrgyz:
		return LanguageRussian
	default:
		return LanguageEnglish
	}
}

// Other returns the opposite gate language (kg ↔ ru). The gate's two-step
// card shows a single toggle between the first-contact languages only.
func (l Language) Other() Language {
	if l == LanguageKyrgyz {
		return LanguageRussian
	}
	return LanguageKyrgyz
}
