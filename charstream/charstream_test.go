package charstream

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceStreamGet(t *testing.T) {
	s := NewSliceStream([]byte("ACGT"))
	want := []byte("ACGT")
	for _, w := range want {
		c, ok, err := s.Get()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, w, c)
	}
	_, ok, err := s.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSliceStreamRead(t *testing.T) {
	s := NewSliceStream([]byte("ACGTACGT"))
	buf := make([]byte, 3)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("ACG"), buf)

	buf2 := make([]byte, 10)
	n, err = s.Read(buf2)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("TACGT"), buf2[:n])
}

func TestFileStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	for i := uint16(0); i < 1024; i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, i))
	}
	fs := NewFileStream[uint16](&buf, 2, func(b []byte) uint16 {
		return binary.LittleEndian.Uint16(b)
	})
	for i := uint16(0); i < 1024; i++ {
		c, ok, err := fs.Get()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i, c)
	}
	_, ok, err := fs.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStreamTruncatedRecord(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x01, 0x00, 0x02})
	fs := NewFileStream[uint16](buf, 2, func(b []byte) uint16 {
		return binary.LittleEndian.Uint16(b)
	})
	_, ok, err := fs.Get()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = fs.Get()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestFileStreamBulkRead(t *testing.T) {
	buf := bytes.NewBuffer([]byte("ABCDEF"))
	fs := NewFileStream[byte](buf, 1, func(b []byte) byte { return b[0] })
	out := make([]byte, 4)
	n, err := fs.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("ABCD"), out)

	out2 := make([]byte, 4)
	n, err = fs.Read(out2)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("EF"), out2[:n])
}
