package engine

import "strings"

// NormalizeName lowercases a display name and strips everything that is
// not a letter or digit, so "Dela Cruz, Juan" and "delacruz,juan" key
// identically in the identity index.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCode uppercases a course code and strips separators, so
// "CS 101" and "cs-101" compare equal.
func NormalizeCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeTitle lowercases a course title and collapses runs of
// non-alphanumerics into single spaces.
func NormalizeTitle(title string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}
	return b.String()
}

// NormalizeTerm maps the term label aliases seen in legacy rows onto the
// canonical "1st" / "2nd" / "sem" spellings, lowercased.
func NormalizeTerm(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	t = strings.TrimSuffix(t, " semester")
	t = strings.TrimSuffix(t, " sem")
	switch t {
	case "1", "1st", "first", "i":
		return "1st"
	case "2", "2nd", "second", "ii":
		return "2nd"
	case "sem", "semestral", "summer", "midyear":
		return "sem"
	}
	return t
}

// NormalizeSection uppercases and strips separators from a section or
// block label.
func NormalizeSection(section string) string {
	return NormalizeCode(section)
}
