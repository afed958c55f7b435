package ui

import "testing"

func TestGetText(t *testing.T) {
	tests := []struct {
		name     string
		language string
		key      string
		want     string
	}{
		{"english title", "en", KeyAppTitle, "Gallery Room"},
		{"japanese title", "ja", KeyAppTitle, "ギャラリールーム"},
		{"system resolves to english", "system", KeyNextPage, "Next"},
		{"unknown language keeps current", "fr", KeyNextPage, "Next"},
		{"unknown key returns key", "en", "no_such_key", "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.language)
			if got := l.GetText(tt.key); got != tt.want {
				t.Errorf("GetText(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSetLanguage_InvalidKeepsCurrent(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ja")
	l.SetLanguage("fr")

	if got := l.GetCurrentLanguage(); got != "ja" {
		t.Errorf("GetCurrentLanguage() = %q, want %q", got, "ja")
	}
}

func TestGetAvailableLanguages(t *testing.T) {
	langs := NewLocalization().GetAvailableLanguages()
	if _, ok := langs["en"]; !ok {
		t.Error("expected English to be available")
	}
	if _, ok := langs["ja"]; !ok {
		t.Error("expected Japanese to be available")
	}
}
