// Package lemis compiles Icelandic morphological lexicons into compact
// binary artifacts and answers lemma and bigram lookups against them.
//
// The write side (Compile) turns raw BÍN-style lexicon rows plus n-gram
// frequency inputs into a single immutable artifact. The read side
// (Open) maps an artifact from a blob store and serves zero-copy
// binary-searched lookups.
package lemis
