package generator

import "strings"

// SampleName builds "<Family> <Given>" where Given is one or two syllables
// concatenated. Only the first letter of each token is capitalized.
func SampleName(src Source) string {
	family := FamilyNames[src.IntN(len(FamilyNames))]

	syllables := 1 + src.IntN(2)
	var given strings.Builder
	for i := 0; i < syllables; i++ {
		given.WriteString(GivenNameSyllables[src.IntN(len(GivenNameSyllables))])
	}

	return capitalize(family) + " " + capitalize(given.String())
}

// capitalize upper-cases the first byte and lower-cases the rest. The tables
// are ASCII only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
