package trips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Taxicab Insurance Agency Llc", "Taxicab Insurance Agency, LLC"},
		{"Taxicab Insurance Agency LLC", "Taxicab Insurance Agency, LLC"},
		{"  Taxicab   Insurance Agency Llc ", "Taxicab Insurance Agency, LLC"},
		{"Blue Ribbon Taxi Association Inc.", "Blue Ribbon Taxi Association"},
		{"Flash Cab", "Flash Cab"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCompany(tt.raw))
		})
	}
}

func TestNormalizeCompanyIsIdempotent(t *testing.T) {
	inputs := []string{"Flash Cab", " Sun  Taxi "}
	for raw := range companyAliases {
		inputs = append(inputs, raw)
	}
	for _, raw := range inputs {
		once := NormalizeCompany(raw)
		assert.Equal(t, once, NormalizeCompany(once), "normalizing %q twice", raw)
	}
}

func TestCanonicalNamesAreNotAliases(t *testing.T) {
	for raw, canonical := range companyAliases {
		_, isAlias := companyAliases[canonical]
		assert.False(t, isAlias, "%q maps to alias %q", raw, canonical)
	}
}
