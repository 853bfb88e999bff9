package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("\t\n"))
	assert.Equal(t, "", Normalize("!!!"))
}

func TestNormalize_CaseAndTrimInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("Turkey"), Normalize("  TURKEY  "))
	assert.Equal(t, "turkey", Normalize("  TURKEY  "))
}

func TestNormalize_Sanitizes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "strips symbols",
			input:  "Spicy!!!",
			expect: "spicy",
		},
		{
			name:   "keeps ampersand",
			input:  "Hot & Spicy",
			expect: "hot & spicy",
		},
		{
			name:   "keeps parentheses",
			input:  "Olives (Fresh)",
			expect: "olives (fresh)",
		},
		{
			name:   "keeps hyphen",
			input:  "Stone-Ground",
			expect: "stone-ground",
		},
		{
			name:   "preserves unicode letters",
			input:  "Café",
			expect: "café",
		},
		{
			name:   "drops leading junk",
			input:  "@#Spicy",
			expect: "spicy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Normalize(tt.input))
		})
	}
}

func TestNormalize_AliasEquivalence(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"Turk", "turkey"},
		{"Turkish", "turkey"},
		{"Turkiye", "turkey"},
		{"Türkiye", "turkey"},
		{"Turkey", "turkey"},
		{"Seasoning", "spices"},
		{"seasonings", "spices"},
		{"spice", "spices"},
		{"Veggies", "vegetables"},
		{"Fruits", "fruit"},
		{"Meats", "meat"},
		{"Poultry", "meat"},
		{"MrChef", "mr chef"},
		{"Mr-Chef", "mr chef"},
		{"Extra Large", "large"},
		{"XL", "large"},
		{"xs", "small"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, Normalize(tt.input))
		})
	}
}

func TestNormalize_IdentityForUnknownTags(t *testing.T) {
	assert.Equal(t, "basmati rice", Normalize("Basmati Rice"))
	assert.Equal(t, "hot & spicy", Normalize("Hot & Spicy"))
}

func TestNormalize_FirstTokenFallback(t *testing.T) {
	// Compound tags starting with a dictionary word collapse onto it.
	assert.Equal(t, "turkey", Normalize("Turkey-Product"))
	assert.Equal(t, "turkey", Normalize("Turkey (Fresh)"))

	// ...unless the deployment opts out.
	norm := NewNormalizer(NewDictionary(WithoutTokenFallback()))
	assert.Equal(t, "turkey-product", norm.Key("Turkey-Product"))
	assert.Equal(t, "turkey (fresh)", norm.Key("Turkey (Fresh)"))

	// Full-string matches still win over the token.
	assert.Equal(t, "large", Normalize("Extra Large"))
}

func TestNormalize_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "turkey", Normalize("Turkish"))
	}
}
