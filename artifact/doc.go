// Package artifact implements the compiled lexicon binary format: a
// single little-endian file holding a deduplicating string pool, a
// frequency-ranked lemma table, a binary-searchable word table with
// bit-packed (lemma, features) entries, and a word-pair frequency table.
//
// The file has no per-section length fields; every section's position is
// derived from the header counts. Writer and Reader share one layout
// calculator so the derivation can never drift between them.
package artifact
