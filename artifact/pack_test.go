package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemma-is/lemis/lexicon"
)

func TestPackEntryV1(t *testing.T) {
	e := Entry{LemmaIndex: 42, POS: lexicon.PosVerb}

	packed := packEntry(Version1, e)
	assert.Equal(t, uint32(42<<4|1), packed)

	got := unpackEntry(Version1, packed)
	assert.Equal(t, e, got)
}

func TestPackEntryV1DropsFeatures(t *testing.T) {
	e := Entry{
		LemmaIndex: 7,
		POS:        lexicon.PosNoun,
		Case:       lexicon.CaseDative,
		Gender:     lexicon.GenderFeminine,
		Number:     lexicon.NumberPlural,
	}

	got := unpackEntry(Version1, packEntry(Version1, e))
	assert.Equal(t, e.LemmaIndex, got.LemmaIndex)
	assert.Equal(t, e.POS, got.POS)
	assert.Equal(t, lexicon.CaseNone, got.Case)
	assert.Equal(t, lexicon.GenderNone, got.Gender)
	assert.Equal(t, lexicon.NumberSingular, got.Number)
}

func TestPackEntryV2RoundTrip(t *testing.T) {
	for pos := lexicon.PosNoun; pos <= lexicon.PosUnknown; pos++ {
		for c := lexicon.CaseNone; c <= lexicon.CaseGenitive; c++ {
			for g := lexicon.GenderNone; g <= lexicon.GenderNeuter; g++ {
				for n := lexicon.NumberSingular; n <= lexicon.NumberPlural; n++ {
					e := Entry{LemmaIndex: 123456, POS: pos, Case: c, Gender: g, Number: n}
					got := unpackEntry(Version2, packEntry(Version2, e))
					require.Equal(t, e, got)
				}
			}
		}
	}
}

func TestPackEntryV2MaxLemmaIndex(t *testing.T) {
	e := Entry{
		LemmaIndex: MaxLemmas,
		POS:        lexicon.PosUnknown,
		Case:       lexicon.CaseGenitive,
		Gender:     lexicon.GenderNeuter,
		Number:     lexicon.NumberPlural,
	}

	got := unpackEntry(Version2, packEntry(Version2, e))
	assert.Equal(t, e, got)
}

func TestPackEntryV2Layout(t *testing.T) {
	e := Entry{
		LemmaIndex: 1,
		POS:        lexicon.PosNoun, // 0
		Case:       lexicon.CaseAccusative,
		Gender:     lexicon.GenderMasculine,
		Number:     lexicon.NumberPlural,
	}

	// 1<<10 | 1<<9 | 1<<7 | 2<<4
	assert.Equal(t, uint32(0x6A0), packEntry(Version2, e))
}
