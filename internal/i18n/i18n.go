// Package i18n is the static localization lookup of the kiosk: given a
// locale code and a message key it returns the display string. The rest of
// the application only ever selects and persists the code.
package i18n

import "github.com/sarychelek/kiosk/models"

var tables = map[models.Language]map[string]string{
	models.LanguageEnglish: enTable,
	models.LanguageRussian: ruTable,
	models.LanguageKyrgyz:  kgTable,
}

// Lookup resolves key against the table of lang. Missing entries fall back
// to English; a key unknown even there is returned verbatim, so a typo
// shows up on screen instead of vanishing.
func Lookup(lang models.Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := enTable[key]; ok {
		return s
	}
	return key
}
