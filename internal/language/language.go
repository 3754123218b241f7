// Package language lists the output languages a summary can be produced in.
package language

import (
	"fmt"
	"strings"
)

// Language is a supported output language.
type Language struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	TTSCode string `json:"tts_code"`
}

var (
	English    = Language{Code: "en", Name: "English", TTSCode: "en"}
	Spanish    = Language{Code: "es", Name: "Spanish", TTSCode: "es"}
	French     = Language{Code: "fr", Name: "French", TTSCode: "fr"}
	German     = Language{Code: "de", Name: "German", TTSCode: "de"}
	Italian    = Language{Code: "it", Name: "Italian", TTSCode: "it"}
	Portuguese = Language{Code: "pt", Name: "Portuguese", TTSCode: "pt-br"}

	// Default is used when a request does not name a language.
	Default = English
)

var all = []Language{English, Spanish, French, German, Italian, Portuguese}

// All returns the supported languages in display order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Lookup resolves a language by code or by name, case-insensitively.
// An empty string resolves to Default.
func Lookup(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, nil
	}
	for _, l := range all {
		if strings.EqualFold(l.Code, s) || strings.EqualFold(l.Name, s) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported language %q", s)
}
