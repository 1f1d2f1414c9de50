package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vttbr/compendium-i18n/internal/lexicon"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name       string
		label      string
		expected   string
		expectedOK bool
	}{
		{"rules", "Rules", "Regras", true},
		{"spells", "Spells", "Magias", true},
		{"items", "Items", "Itens", true},
		{"talents", "Talents", "Talentos", true},
		{"unknown label", "Bestiary", "", false},
		{"already translated", "Regras", "", false},
		{"case sensitive", "rules", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := lexicon.Lookup(tc.label)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLocalize(t *testing.T) {
	testCases := []struct {
		name     string
		label    string
		locale   string
		expected string
	}{
		{"dictionary label under target locale", "Spells", "pt-BR", "Magias"},
		{"dictionary label under other locale", "Spells", "en", "Spells"},
		{"unknown label under target locale", "Bestiary", "pt-BR", "Bestiary"},
		{"unknown label under other locale", "Bestiary", "fr", "Bestiary"},
		{"empty label", "", "pt-BR", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, lexicon.Localize(tc.label, tc.locale))
		})
	}
}

func TestIsTarget(t *testing.T) {
	testCases := []struct {
		locale   string
		expected bool
	}{
		{"pt-BR", true},
		{"pt-br", true},
		{"pt", true},
		{"pt-PT", false},
		{"en", false},
		{"en-US", false},
		{"es", false},
		{"", false},
		{"not a locale", false},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			assert.Equal(t, tc.expected, lexicon.IsTarget(tc.locale))
		})
	}
}

func TestDictionaryShape(t *testing.T) {
	assert.Equal(t, 4, lexicon.Size())

	// Every value must localize back to itself: translations are not keys.
	for _, translated := range lexicon.Entries() {
		assert.Equal(t, translated, lexicon.Localize(translated, "pt-BR"))
	}
}
