// Package i18n resolves the request language from the Accept-Language
// header and localizes validation messages from embedded catalogs.
package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	supported = []language.Tag{
		language.English, // first tag is the fallback
		language.Turkish,
		language.Spanish,
	}
	matcher  = language.NewMatcher(supported)
	catalogs = mustLoadCatalogs()
)

func mustLoadCatalogs() map[string]map[string]string {
	out := make(map[string]map[string]string)
	entries, err := fs.Glob(localeFS, "locales/*.json")
	if err != nil {
		panic(err)
	}
	for _, name := range entries {
		raw, err := localeFS.ReadFile(name)
		if err != nil {
			panic(err)
		}
		var messages map[string]string
		if err := json.Unmarshal(raw, &messages); err != nil {
			panic("i18n: bad catalog " + name + ": " + err.Error())
		}
		locale := strings.TrimSuffix(path.Base(name), ".json")
		out[locale] = messages
	}
	return out
}

// Resolve matches an Accept-Language header value against the supported
// locales, falling back to English.
func Resolve(acceptLanguage string) language.Tag {
	if strings.TrimSpace(acceptLanguage) == "" {
		return supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return supported[0]
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// T translates a message key for the given tag. Unknown keys are returned
// unchanged so a missing translation never hides the underlying error.
func T(tag language.Tag, key string) string {
	base, _ := tag.Base()
	if messages, ok := catalogs[base.String()]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if messages, ok := catalogs["en"]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	slog.Debug("missing translation", "key", key, "locale", tag.String())
	return key
}

// Localize translates every value of a field-error map in place and
// returns it.
func Localize(tag language.Tag, fields map[string]string) map[string]string {
	for field, key := range fields {
		fields[field] = T(tag, key)
	}
	return fields
}
