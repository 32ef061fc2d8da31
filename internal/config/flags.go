package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (sqlite file path, or ":memory:")
//	-c/-config json file path with configs
//	-default-language fallback locale code (en, kg, ru)
//	-music-autoplay start with background music enabled
//	-language-pick-delay pause after picking a language (e.g., "600ms")
//	-submit-delay simulated processing time on form submit (e.g., "900ms")
//	-signin-complete-delay success pause before entering the showcase after sign-in
//	-signup-complete-delay success pause before entering the showcase after sign-up
//	-message-ttl lifetime of transient success messages (e.g., "2s")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var defaultLanguage string
	var musicAutoplay bool
	var languagePickDelay time.Duration
	var submitDelay time.Duration
	var signInCompleteDelay time.Duration
	var signUpCompleteDelay time.Duration
	var messageTTL time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&defaultLanguage, "default-language", "", "Fallback locale code (en, kg, ru)")
	flag.BoolVar(&musicAutoplay, "music-autoplay", false, "Start with background music enabled")
	flag.DurationVar(&languagePickDelay, "language-pick-delay", 0, "Pause after picking a language (e.g., 600ms)")
	flag.DurationVar(&submitDelay, "submit-delay", 0, "Simulated processing time on submit (e.g., 900ms)")
	flag.DurationVar(&signInCompleteDelay, "signin-complete-delay", 0, "Success pause after sign-in (e.g., 1200ms)")
	flag.DurationVar(&signUpCompleteDelay, "signup-complete-delay", 0, "Success pause after sign-up (e.g., 2s)")
	flag.DurationVar(&messageTTL, "message-ttl", 0, "Transient success message lifetime (e.g., 2s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DefaultLanguage: defaultLanguage,
			MusicAutoplay:   musicAutoplay,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Gate: Gate{
			LanguagePickDelay:   languagePickDelay,
			SubmitDelay:         submitDelay,
			SignInCompleteDelay: signInCompleteDelay,
			SignUpCompleteDelay: signUpCompleteDelay,
			MessageTTL:          messageTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
