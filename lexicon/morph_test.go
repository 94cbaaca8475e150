package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseFromMark(t *testing.T) {
	tests := []struct {
		mark string
		want Case
	}{
		{"NFET", CaseNominative},
		{"ÞFET", CaseAccusative},
		{"ÞGFET", CaseDative},
		{"EFFT", CaseGenitive},
		{"þgfft", CaseDative},
		{"GM-FH-NT-3P-ET", CaseNone},
		{"", CaseNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaseFromMark(tt.mark), "mark %q", tt.mark)
	}
}

func TestCaseFromMarkPriority(t *testing.T) {
	// A mark carrying the dative marker must not be read as accusative
	// or nominative even though shorter markers also occur in it.
	assert.Equal(t, CaseDative, CaseFromMark("ÞGFFT"))
	assert.Equal(t, CaseDative, CaseFromMark("NFÞGF"))
	assert.Equal(t, CaseAccusative, CaseFromMark("ÞFEF"))
}

func TestNumberFromMark(t *testing.T) {
	assert.Equal(t, NumberPlural, NumberFromMark("NFFT"))
	assert.Equal(t, NumberSingular, NumberFromMark("NFET"))
	assert.Equal(t, NumberSingular, NumberFromMark("GM-FH-NT-3P-ET"))
	assert.Equal(t, NumberSingular, NumberFromMark(""))
	assert.Equal(t, NumberPlural, NumberFromMark("þgfft"))
}
