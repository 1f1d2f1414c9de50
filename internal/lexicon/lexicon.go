// Package lexicon holds the canonical English to Brazilian Portuguese
// dictionary for compendium folder and panel labels, plus the locale
// check that gates every substitution.
package lexicon

import (
	"golang.org/x/text/language"
)

// TargetLocale is the interface language this pack translates to.
const TargetLocale = "pt-BR"

// folderLabels is the canonical dictionary. The two runtime routines
// (folder rename and panel label substitution) share this single table.
var folderLabels = map[string]string{
	"Rules":   "Regras",
	"Spells":  "Magias",
	"Items":   "Itens",
	"Talents": "Talentos",
}

// Lookup returns the translated label for name, if the dictionary has one.
func Lookup(name string) (string, bool) {
	t, ok := folderLabels[name]
	return t, ok
}

// Localize returns the label that should be displayed under locale:
// the dictionary value when the locale is the target and the name is
// known, the name itself otherwise.
func Localize(name, locale string) string {
	if !IsTarget(locale) {
		return name
	}
	if t, ok := folderLabels[name]; ok {
		return t
	}
	return name
}

// IsTarget reports whether locale resolves to Brazilian Portuguese.
// Bare "pt" counts; an explicit non-BR region does not.
func IsTarget(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	if base.String() != "pt" {
		return false
	}
	region, conf := tag.Region()
	if conf == language.Exact {
		return region.String() == "BR"
	}
	return true
}

// Size returns the number of dictionary entries.
func Size() int {
	return len(folderLabels)
}

// Entries returns a copy of the dictionary, for reporting.
func Entries() map[string]string {
	out := make(map[string]string, len(folderLabels))
	for k, v := range folderLabels {
		out[k] = v
	}
	return out
}
