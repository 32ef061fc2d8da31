package service

import (
	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/models"
)

// PreferenceService manages the language slot and the small persisted UI
// flags (background music, one-shot success markers). Two surfaces write
// the language slot: the gate offers the first-contact pair, the showcase
// header cycles through all three codes. Both go through here.
type PreferenceService struct {
	kv       store.KV
	fallback models.Language
	autoplay bool
	logger   *logger.Logger
}

func NewPreferenceService(kv store.KV, fallback models.Language, autoplay bool, log *logger.Logger) *PreferenceService {
	if !fallback.Valid() {
		fallback = models.LanguageEnglish
	}
	return &PreferenceService{kv: kv, fallback: fallback, autoplay: autoplay, logger: log}
}

// Language returns the persisted locale code, or the configured fallback
// when the slot is absent or holds an unknown value.
func (p *PreferenceService) Language() models.Language {
	raw, ok := p.kv.Get(store.SlotLanguage)
	if !ok {
		return p.fallback
	}

	lang := models.Language(raw)
	if !lang.Valid() {
		p.logger.Warn().Str("value", raw).Msg("unknown language slot value, using fallback")
		return p.fallback
	}
	return lang
}

// HasLanguage reports whether a language was explicitly chosen before.
// The gate skips the selection step when it was.
func (p *PreferenceService) HasLanguage() bool {
	raw, ok := p.kv.Get(store.SlotLanguage)
	return ok && models.Language(raw).Valid()
}

// SetLanguage persists lang immediately. Unknown codes are ignored.
func (p *PreferenceService) SetLanguage(lang models.Language) {
	if !lang.Valid() {
		return
	}
	p.kv.Set(store.SlotLanguage, string(lang))
}

// CycleLanguage advances the in-app switcher (en → kg → ru → en),
// persists and returns the new choice.
func (p *PreferenceService) CycleLanguage() models.Language {
	next := p.Language().Next()
	p.kv.Set(store.SlotLanguage, string(next))
	return next
}

// MusicPlaying reports the music toggle, defaulting to the configured
// autoplay setting when nothing was persisted yet.
func (p *PreferenceService) MusicPlaying() bool {
	raw, ok := p.kv.Get(store.SlotIsPlaying)
	if !ok {
		return p.autoplay
	}
	return raw == "true"
}

// ToggleMusic flips and persists the music toggle, returning the new state.
func (p *PreferenceService) ToggleMusic() bool {
	playing := !p.MusicPlaying()
	if playing {
		p.kv.Set(store.SlotIsPlaying, "true")
	} else {
		p.kv.Set(store.SlotIsPlaying, "false")
	}
	return playing
}

// TakeFlag consumes a one-shot flag: it reports whether the flag was set
// and removes it so the next read sees nothing.
func (p *PreferenceService) TakeFlag(key string) bool {
	raw, ok := p.kv.Get(key)
	if !ok {
		return false
	}
	p.kv.Remove(key)
	return raw == "true"
}
