// Package lexicon parses raw BÍN-style lexicon rows into a word form →
// feature-tuple multimap, the in-memory input of the artifact builder.
//
// A row is `lemma;id;wordClass;domain;wordForm[;morphMark[;...]]`. Lemma
// and word form are lower-cased with Icelandic-aware case folding; the
// word class selects the part of speech and (for nouns) the gender; the
// morph mark, when present, yields grammatical case and number.
package lexicon
