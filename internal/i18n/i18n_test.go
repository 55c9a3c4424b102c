package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"garbage;;;", language.English},
		{"en", language.English},
		{"en-US,en;q=0.9", language.English},
		{"tr", language.Turkish},
		{"tr-TR,tr;q=0.9,en;q=0.5", language.Turkish},
		{"es-MX", language.Spanish},
		{"fr-FR,fr;q=0.9", language.English},
		{"fr;q=0.9,es;q=0.8", language.Spanish},
	}
	for _, tc := range cases {
		if got := Resolve(tc.header); got != tc.want {
			t.Errorf("Resolve(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}

func TestT(t *testing.T) {
	if got := T(language.English, "validation.EMAIL_REQUIRED"); got != "email is required" {
		t.Errorf("unexpected english message %q", got)
	}
	if got := T(language.Turkish, "validation.EMAIL_REQUIRED"); got != "e-posta adresi zorunludur" {
		t.Errorf("unexpected turkish message %q", got)
	}
	// Unknown keys pass through so the raw error stays visible.
	if got := T(language.English, "validation.DOES_NOT_EXIST"); got != "validation.DOES_NOT_EXIST" {
		t.Errorf("unexpected passthrough %q", got)
	}
}

func TestLocalize(t *testing.T) {
	fields := map[string]string{
		"email":    "validation.EMAIL_REQUIRED",
		"password": "validation.PASSWORD_MIN",
	}
	out := Localize(language.Spanish, fields)
	if out["email"] != "el correo electrónico es obligatorio" {
		t.Errorf("unexpected email message %q", out["email"])
	}
	if out["password"] != "la contraseña debe tener al menos 6 caracteres" {
		t.Errorf("unexpected password message %q", out["password"])
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	en := catalogs["en"]
	for locale, messages := range catalogs {
		if locale == "en" {
			continue
		}
		for key := range en {
			if _, ok := messages[key]; !ok {
				t.Errorf("locale %s is missing key %s", locale, key)
			}
		}
		for key := range messages {
			if _, ok := en[key]; !ok {
				t.Errorf("locale %s has extra key %s", locale, key)
			}
		}
	}
}
