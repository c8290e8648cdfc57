// Package i18n looks up UI strings by the short code of the preferred language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preferred language has a table.
const DefaultLanguage = "en"

// missingSuffix is appended to keys that no table defines.
const missingSuffix = "No se encontro"

// Translator resolves keys against one language table, then the default one.
type Translator struct {
	lang     string
	table    map[string]string
	fallback map[string]string
}

// New selects the table of the first preferred language.
func New(preferred ...string) *Translator {
	lang := Resolve(preferred...)
	return &Translator{lang: lang, table: tables[lang], fallback: tables[DefaultLanguage]}
}

// Resolve returns the short language code New would use.
// Only the first non-blank tag counts. If it does not parse or has no
// table the default language is returned.
func Resolve(preferred ...string) string {
	for _, p := range preferred {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// POSIX locales carry an encoding suffix, e.g. es_MX.UTF-8.
		if i := strings.IndexByte(p, '.'); i >= 0 {
			p = p[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(p, "_", "-"))
		if err != nil {
			return DefaultLanguage
		}
		base, _ := tag.Base()
		if _, ok := tables[base.String()]; ok {
			return base.String()
		}
		return DefaultLanguage
	}
	return DefaultLanguage
}

// Language returns the short code of the selected table.
func (t *Translator) Language() string {
	return t.lang
}

// T returns the translation of key from the selected table, else from the
// default table, else key followed by a not-found marker.
func (t *Translator) T(key string) string {
	if v, ok := t.table[key]; ok && v != "" {
		return v
	}
	if v, ok := t.fallback[key]; ok && v != "" {
		return v
	}
	return key + missingSuffix
}

// Has reports whether key is translated in the selected table.
func (t *Translator) Has(key string) bool {
	_, ok := t.table[key]
	return ok
}

// Languages lists the short codes that have a table.
func Languages() []string {
	return []string{"en", "es"}
}
