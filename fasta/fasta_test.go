package fasta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFasta = `>id1 desc
AAAAAAAAAA
AAAAAAAAAA
AAAAAAAAAA
AAAAAAAAAA
AAAAA
>id2
CCCCCCCCCCCCCCCCCCCC
CCCCCCCCCCCCCCCCCCCC
CCCCCCCCCCCCCCCCCCCC
CCCCCCCCCCCCCCCCCCCC
>id3 lots of Gs
GGGGGGGGGG
GGGGGGGGGG
GGGGGGGGGG
GGGGGGGGGG
GGGGGGGGGG
GGGGGGGGGG
`

func TestScannerReadsAllRecords(t *testing.T) {
	s := NewScanner(strings.NewReader(sampleFasta))

	desc, seq, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "id1 desc", desc)
	assert.Equal(t, 45, len(seq))
	assert.True(t, strings.Count(string(seq), "A") == 45)

	desc, seq, ok, err = s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "id2", desc)
	assert.Equal(t, 80, len(seq))

	desc, seq, ok, err = s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "id3 lots of Gs", desc)
	assert.Equal(t, 60, len(seq))

	_, _, ok, err = s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerEmptyInput(t *testing.T) {
	s := NewScanner(strings.NewReader(""))
	_, _, ok, err := s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerRejectsMissingLeadingCaret(t *testing.T) {
	s := NewScanner(strings.NewReader("ACGT\n"))
	_, _, _, err := s.Next()
	assert.Error(t, err)
}

func TestScannerNoTrailingNewline(t *testing.T) {
	s := NewScanner(strings.NewReader(">only\nACGT"))
	desc, seq, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "only", desc)
	assert.Equal(t, []byte("ACGT"), seq)
}
