package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeName(t *testing.T) {
	cases := []struct {
		input string
		want  NameTokens
	}{
		{
			"Dela Cruz, Juan M.",
			NameTokens{Surname: "Dela Cruz", GivenName: "Juan", MiddleName: "M"},
		},
		{
			"Reyes, Maria PhD",
			NameTokens{Surname: "Reyes", GivenName: "Maria", Suffixes: []string{"PhD"}},
		},
		{
			"Cruz, Juan, CPA MBA",
			NameTokens{Surname: "Cruz", GivenName: "Juan", Suffixes: []string{"CPA", "MBA"}},
		},
		{
			"Santos, Pedro Jr.",
			NameTokens{Surname: "Santos", GivenName: "Pedro", Suffixes: []string{"Jr"}},
		},
		{
			"Juan Dela Cruz",
			NameTokens{Surname: "Cruz", GivenName: "Juan Dela"},
		},
		{
			"",
			NameTokens{},
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TokenizeName(tc.input), "input %q", tc.input)
	}
}

func TestNameTokensDisplayKey(t *testing.T) {
	a := TokenizeName("Dela Cruz, Juan M.")
	b := TokenizeName("DELA CRUZ, JUAN M")
	assert.Equal(t, "delacruzjuanm", a.DisplayKey())
	assert.Equal(t, a.DisplayKey(), b.DisplayKey())

	// Credential suffixes never leak into the identity key.
	withPhD := TokenizeName("Reyes, Maria PhD")
	plain := TokenizeName("Reyes, Maria")
	assert.Equal(t, plain.DisplayKey(), withPhD.DisplayKey())
}

func TestNameTokensCredentialText(t *testing.T) {
	tokens := TokenizeName("Cruz, Juan, CPA MBA")
	assert.Equal(t, "CPA MBA", tokens.CredentialText())
	assert.Empty(t, TokenizeName("Cruz, Juan").CredentialText())
}
