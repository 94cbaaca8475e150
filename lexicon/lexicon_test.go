package lexicon

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRows = `fara;12345;so;alm;fer;GM-FH-NT-3P-ET
fara;12345;so;alm;fór;GM-FH-ÞT-1P-ET
hestur;4149;kk;alm;hestinum;ÞGFETgr
við;7;fs;alm;við
vera;9;so;alm;við;GM-FH-NT-1P-FT
short;row
FARA;12345;so;alm;FER;GM-FH-NT-3P-ET
`

func TestParseRows(t *testing.T) {
	lex, stats, err := ParseRows(context.Background(), strings.NewReader(sampleRows))
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Rows)
	assert.Equal(t, 1, stats.Skipped)

	// Upper-cased duplicate row folds onto the same reading.
	assert.Equal(t, 4, lex.WordCount())

	tuples := lex.Tuples("fer")
	require.Len(t, tuples, 1)
	assert.Equal(t, FeatureTuple{
		Lemma:  "fara",
		POS:    PosVerb,
		Case:   CaseNone,
		Gender: GenderNone,
		Number: NumberSingular,
	}, tuples[0])

	tuples = lex.Tuples("hestinum")
	require.Len(t, tuples, 1)
	assert.Equal(t, FeatureTuple{
		Lemma:  "hestur",
		POS:    PosNoun,
		Case:   CaseDative,
		Gender: GenderMasculine,
		Number: NumberSingular,
	}, tuples[0])

	// "við" carries two distinct readings.
	tuples = lex.Tuples("við")
	assert.Len(t, tuples, 2)
}

func TestParseRowsRowWithoutMark(t *testing.T) {
	lex, _, err := ParseRows(context.Background(), strings.NewReader("á;1;fs;alm;á\n"))
	require.NoError(t, err)

	tuples := lex.Tuples("á")
	require.Len(t, tuples, 1)
	assert.Equal(t, CaseNone, tuples[0].Case)
	assert.Equal(t, NumberSingular, tuples[0].Number)
}

func TestParseRowsParallelMatchesSerial(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(sampleRows)
	}

	serial, serialStats, err := ParseRows(context.Background(), strings.NewReader(sb.String()))
	require.NoError(t, err)

	parallel, parallelStats, err := ParseRows(context.Background(), strings.NewReader(sb.String()), WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, serialStats.Rows, parallelStats.Rows)
	assert.Equal(t, serialStats.Skipped, parallelStats.Skipped)
	assert.Equal(t, serial.SortedWords(), parallel.SortedWords())
	for _, w := range serial.SortedWords() {
		assert.ElementsMatch(t, serial.Tuples(w), parallel.Tuples(w), "word %q", w)
	}
}

func TestSortedWordsByteOrder(t *testing.T) {
	lex := NewLexicon()
	for _, w := range []string{"ö", "a", "á", "b"} {
		lex.Add(w, FeatureTuple{Lemma: w, POS: PosNoun})
	}

	words := lex.SortedWords()
	// Byte order, not collation order: multibyte letters sort after ASCII.
	assert.Equal(t, []string{"a", "b", "á", "ö"}, words)
}

func TestLemmasDistinct(t *testing.T) {
	lex := NewLexicon()
	lex.Add("fer", FeatureTuple{Lemma: "fara", POS: PosVerb})
	lex.Add("fór", FeatureTuple{Lemma: "fara", POS: PosVerb})
	lex.Add("hest", FeatureTuple{Lemma: "hestur", POS: PosNoun})

	assert.ElementsMatch(t, []string{"fara", "hestur"}, lex.Lemmas())
}
