package artifact

import "github.com/lemma-is/lemis/lexicon"

// Entry is one analysis of a surface word: its lemma (as a catalog
// index) plus grammatical features.
type Entry struct {
	LemmaIndex uint32
	POS        lexicon.POS
	Case       lexicon.Case
	Gender     lexicon.Gender
	Number     lexicon.Number
}

// packEntry encodes an entry into a 32-bit word.
//
// Version 1 keeps only the part of speech:
//
//	bits  0-3   pos
//	bits  4-31  lemma index
//
// Version 2 adds the feature fields:
//
//	bits  0-3   pos
//	bits  4-6   case
//	bits  7-8   gender
//	bit   9     number
//	bits 10-29  lemma index
func packEntry(version uint32, e Entry) uint32 {
	if version == Version1 {
		return e.LemmaIndex<<4 | uint32(e.POS)&0xF
	}
	return e.LemmaIndex<<10 |
		(uint32(e.Number)&0x1)<<9 |
		(uint32(e.Gender)&0x3)<<7 |
		(uint32(e.Case)&0x7)<<4 |
		uint32(e.POS)&0xF
}

// unpackEntry decodes a packed 32-bit word. Version 1 entries carry no
// feature fields; their case, gender and number decode as zero values.
func unpackEntry(version uint32, packed uint32) Entry {
	if version == Version1 {
		return Entry{
			LemmaIndex: packed >> 4,
			POS:        lexicon.POS(packed & 0xF),
		}
	}
	return Entry{
		LemmaIndex: packed >> 10,
		POS:        lexicon.POS(packed & 0xF),
		Case:       lexicon.Case(packed >> 4 & 0x7),
		Gender:     lexicon.Gender(packed >> 7 & 0x3),
		Number:     lexicon.Number(packed >> 9 & 0x1),
	}
}
