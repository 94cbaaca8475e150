package lexicon

// POS is a part-of-speech category. The numeric values are the 4-bit
// codes stored in packed artifact entries and must never be reordered.
type POS uint8

const (
	PosNoun         POS = 0  // no
	PosVerb         POS = 1  // so
	PosAdjective    POS = 2  // lo
	PosAdverb       POS = 3  // ao
	PosPreposition  POS = 4  // fs
	PosPronoun      POS = 5  // fn
	PosConjunction  POS = 6  // st
	PosNumeral      POS = 7  // to
	PosArticle      POS = 8  // gr
	PosInterjection POS = 9  // uh
	PosUnknown      POS = 10
)

var posNames = map[POS]string{
	PosNoun:         "no",
	PosVerb:         "so",
	PosAdjective:    "lo",
	PosAdverb:       "ao",
	PosPreposition:  "fs",
	PosPronoun:      "fn",
	PosConjunction:  "st",
	PosNumeral:      "to",
	PosArticle:      "gr",
	PosInterjection: "uh",
	PosUnknown:      "unknown",
}

func (p POS) String() string {
	if s, ok := posNames[p]; ok {
		return s
	}
	return "unknown"
}

// classPOS maps BÍN word-class labels to simplified POS categories.
// kk/kvk/hk are gendered noun classes, pfn is the personal pronoun,
// nhm the -st infinitive, rt the ordinal.
var classPOS = map[string]POS{
	"no":  PosNoun,
	"kk":  PosNoun,
	"kvk": PosNoun,
	"hk":  PosNoun,
	"so":  PosVerb,
	"nhm": PosVerb,
	"lo":  PosAdjective,
	"ao":  PosAdverb,
	"fs":  PosPreposition,
	"fn":  PosPronoun,
	"pfn": PosPronoun,
	"rt":  PosPronoun,
	"st":  PosConjunction,
	"to":  PosNumeral,
	"gr":  PosArticle,
	"uh":  PosInterjection,
}

// posCodes holds the ten canonical two-letter codes. The prefix
// fallback recognizes only these; alias classes must match in full.
var posCodes = map[string]POS{
	"no": PosNoun,
	"so": PosVerb,
	"lo": PosAdjective,
	"ao": PosAdverb,
	"fs": PosPreposition,
	"fn": PosPronoun,
	"st": PosConjunction,
	"to": PosNumeral,
	"gr": PosArticle,
	"uh": PosInterjection,
}

// POSFromWordClass maps a raw word-class label to a POS. Unrecognized
// labels fall back to their first two characters, matched against the
// canonical codes only, before giving up.
func POSFromWordClass(wordClass string) POS {
	if p, ok := classPOS[wordClass]; ok {
		return p
	}
	r := []rune(wordClass)
	if len(r) >= 2 {
		if p, ok := posCodes[string(r[:2])]; ok {
			return p
		}
	}
	return PosUnknown
}

// GenderFromWordClass derives grammatical gender from the word-class
// column. The morph mark never contributes gender.
func GenderFromWordClass(wordClass string) Gender {
	switch wordClass {
	case "kk":
		return GenderMasculine
	case "kvk":
		return GenderFeminine
	case "hk":
		return GenderNeuter
	}
	return GenderNone
}
