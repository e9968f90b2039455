package engine

import "strings"

// NameTokens is the parsed form of a faculty display name such as
// "Dela Cruz, Juan M." or "Reyes, Maria PhD". Credential suffixes ride
// along in many legacy rows, so the tokenizer separates them from the
// actual name parts instead of leaving callers to split on commas.
type NameTokens struct {
	Surname    string
	GivenName  string
	MiddleName string
	Suffixes   []string
}

var nameSuffixTokens = map[string]bool{
	"JR": true, "SR": true, "II": true, "III": true, "IV": true, "V": true,
	"PHD": true, "EDD": true, "DBA": true, "MD": true, "DIT": true, "DSC": true,
	"MA": true, "MS": true, "MSC": true, "MBA": true, "MSIT": true, "MIT": true,
	"MAED": true, "MPA": true, "MAN": true, "MED": true,
	"CPA": true, "LPT": true, "RN": true, "JD": true, "LLB": true, "REE": true,
	"RME": true, "ECE": true, "ENP": true,
}

// TokenizeName splits a "Last, First [Middle] [Suffix...]" display name
// into its parts. Names without a comma are treated as "First ... Last".
func TokenizeName(name string) NameTokens {
	var tokens NameTokens
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return tokens
	}

	surname, rest, hasComma := strings.Cut(trimmed, ",")
	if !hasComma {
		words := splitNameWords(trimmed)
		words, tokens.Suffixes = stripSuffixes(words)
		if len(words) > 0 {
			tokens.Surname = words[len(words)-1]
			tokens.GivenName = strings.Join(words[:len(words)-1], " ")
		}
		return tokens
	}

	tokens.Surname = strings.TrimSpace(surname)

	// Anything past a second comma is pure credential text: "Cruz,
	// Juan, PhD".
	given, creds, hasSecond := strings.Cut(rest, ",")
	words := splitNameWords(given)
	words, tokens.Suffixes = stripSuffixes(words)
	if hasSecond {
		tokens.Suffixes = append(tokens.Suffixes, splitNameWords(creds)...)
	}

	// A trailing single-letter initial (with or without the dot) is the
	// middle initial, not part of the given name.
	if n := len(words); n > 1 && len(words[n-1]) == 1 {
		tokens.MiddleName = words[n-1]
		words = words[:n-1]
	}
	tokens.GivenName = strings.Join(words, " ")
	return tokens
}

func splitNameWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func stripSuffixes(words []string) (rest, suffixes []string) {
	rest = words
	for len(rest) > 1 {
		last := strings.ToUpper(strings.Trim(rest[len(rest)-1], "."))
		if !nameSuffixTokens[last] {
			break
		}
		suffixes = append([]string{rest[len(rest)-1]}, suffixes...)
		rest = rest[:len(rest)-1]
	}
	return rest, suffixes
}

// DisplayKey returns the normalized identity key for the name.
func (t NameTokens) DisplayKey() string {
	return NormalizeName(t.Surname + t.GivenName + t.MiddleName)
}

// CredentialText flattens the suffix tokens for credential mining.
func (t NameTokens) CredentialText() string {
	return strings.Join(t.Suffixes, " ")
}
