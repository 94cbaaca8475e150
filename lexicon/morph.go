package lexicon

import "strings"

// Case is a grammatical case. Values are the 3-bit artifact codes.
type Case uint8

const (
	CaseNone       Case = 0
	CaseNominative Case = 1
	CaseAccusative Case = 2
	CaseDative     Case = 3
	CaseGenitive   Case = 4
)

func (c Case) String() string {
	switch c {
	case CaseNominative:
		return "nf"
	case CaseAccusative:
		return "þf"
	case CaseDative:
		return "þgf"
	case CaseGenitive:
		return "ef"
	}
	return "-"
}

// Gender is a grammatical gender. Values are the 2-bit artifact codes.
type Gender uint8

const (
	GenderNone      Gender = 0
	GenderMasculine Gender = 1
	GenderFeminine  Gender = 2
	GenderNeuter    Gender = 3
)

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "kk"
	case GenderFeminine:
		return "kvk"
	case GenderNeuter:
		return "hk"
	}
	return "-"
}

// Number is a grammatical number. Values are the 1-bit artifact codes;
// a mark carrying no number marker maps to singular.
type Number uint8

const (
	NumberSingular Number = 0
	NumberPlural   Number = 1
)

func (n Number) String() string {
	if n == NumberPlural {
		return "ft"
	}
	return "et"
}

// CaseFromMark detects the grammatical case of an uppercased BÍN morph
// mark. The tests run in this fixed order because the markers share
// substrings; changing it changes the classification of combined marks.
func CaseFromMark(mark string) Case {
	m := strings.ToUpper(mark)
	switch {
	case strings.Contains(m, "ÞGF"):
		return CaseDative
	case strings.Contains(m, "ÞF"):
		return CaseAccusative
	case strings.Contains(m, "NF"):
		return CaseNominative
	case strings.Contains(m, "EF"):
		return CaseGenitive
	}
	return CaseNone
}

// NumberFromMark detects grammatical number: FT means plural, ET
// singular. Marks carrying neither default to singular.
func NumberFromMark(mark string) Number {
	m := strings.ToUpper(mark)
	if strings.Contains(m, "FT") {
		return NumberPlural
	}
	return NumberSingular
}
