package token

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanN(t *testing.T, s *Scanner, n int) {
	for i := 0; i < n; i++ {
		require.NoError(t, s.ScanRune())
	}
}

func TestScannerGrowsBuffer(t *testing.T) {
	s := newScannerBuf("test", strings.NewReader("hello wörld\nxyzzy"), make([]byte, 4))

	scanN(t, s, 5)
	tok := s.EmitToken(SYMBOL)
	assert.Equal(t, "hello", tok.Text)
	assert.Equal(t, "test:1:1", tok.Source.String())

	scanN(t, s, 1)
	s.Ignore()
	scanN(t, s, 5)
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "wörld", tok.Text)
	assert.Equal(t, "test:1:7", tok.Source.String())

	scanN(t, s, 1)
	s.Ignore()
	scanN(t, s, 5)
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "xyzzy", tok.Text)
	assert.Equal(t, 2, tok.Source.Line)

	assert.Equal(t, io.EOF, s.ScanRune())
	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestScannerLongToken(t *testing.T) {
	text := strings.Repeat("é", 50000)
	s := NewScanner("", strings.NewReader(text))
	for {
		err := s.ScanRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, text, s.Text())
}
