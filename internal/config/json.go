package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		DefaultLanguage string `json:"default_language"`
		MusicAutoplay   bool   `json:"music_autoplay"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Gate struct {
		LanguagePickDelay   Duration `json:"language_pick_delay"`
		SubmitDelay         Duration `json:"submit_delay"`
		SignInCompleteDelay Duration `json:"signin_complete_delay"`
		SignUpCompleteDelay Duration `json:"signup_complete_delay"`
		MessageTTL          Duration `json:"message_ttl"`
	} `json:"gate,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultLanguage: jsonCfg.App.DefaultLanguage,
			MusicAutoplay:   jsonCfg.App.MusicAutoplay,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Gate: Gate{
			LanguagePickDelay:   time.Duration(jsonCfg.Gate.LanguagePickDelay),
			SubmitDelay:         time.Duration(jsonCfg.Gate.SubmitDelay),
			SignInCompleteDelay: time.Duration(jsonCfg.Gate.SignInCompleteDelay),
			SignUpCompleteDelay: time.Duration(jsonCfg.Gate.SignUpCompleteDelay),
			MessageTTL:          time.Duration(jsonCfg.Gate.MessageTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
