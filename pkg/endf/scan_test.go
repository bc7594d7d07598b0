package endf

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("first\r\nsecond\nthird"))
	for _, want := range []string{"first", "second", "third"} {
		line, err := lr.ReadLine()
		require.NoError(t, err)
		require.Equal(t, want, line)
	}
	_, err := lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	// exhausted sources stay exhausted
	_, err = lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestLineReaderRewind(t *testing.T) {
	lr := NewLineReader(bytes.NewReader([]byte("one\ntwo\n")))
	line, err := lr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)

	require.NoError(t, lr.Rewind())
	line, err = lr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)
}

func TestLineReaderRewindUnsupported(t *testing.T) {
	// io.MultiReader hides the Seeker of the underlying strings.Reader
	lr := NewLineReader(io.MultiReader(strings.NewReader("one\n")))
	require.Error(t, lr.Rewind())
}

func tapeOf(lines ...string) *LineReader {
	return NewLineReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func identLine(mat, mf, mt, ns int) string {
	return formatTestLine("", mat, mf, mt, ns)
}

func TestSeek(t *testing.T) {
	src := tapeOf(
		identLine(9437, 1, 451, 1),
		identLine(9437, 1, 451, 2),
		identLine(9437, 3, 102, 1),
		identLine(9437, 3, 102, 2),
	)
	line, err := Seek(src, 3, 102)
	require.NoError(t, err)
	id, err := ParseIdent(line)
	require.NoError(t, err)
	require.Equal(t, Ident{MAT: 9437, MF: 3, MT: 102, NS: 1}, id)

	// the scan is forward-only: the next match is the following line
	line, err = Seek(src, 3, 102)
	require.NoError(t, err)
	id, err = ParseIdent(line)
	require.NoError(t, err)
	require.Equal(t, 2, id.NS)
}

func TestSeekAbsent(t *testing.T) {
	src := tapeOf(
		identLine(9437, 1, 451, 1),
		identLine(9437, 3, 102, 1),
	)
	_, err := Seek(src, 3, 999)
	require.ErrorIs(t, err, io.EOF)
	// every line was consumed, never a false match
	_, err = src.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestSeekMaterial(t *testing.T) {
	src := tapeOf(
		identLine(9437, 3, 102, 1),
		identLine(9440, 3, 102, 1),
	)
	line, err := SeekMaterial(src, 9440, 3, 102)
	require.NoError(t, err)
	id, err := ParseIdent(line)
	require.NoError(t, err)
	require.Equal(t, 9440, id.MAT)

	src = tapeOf(identLine(9437, 3, 102, 1))
	_, err = SeekMaterial(src, 9440, 3, 102)
	require.ErrorIs(t, err, io.EOF)
}

func TestSeekCorruptIdent(t *testing.T) {
	src := tapeOf(identLine(9437, 1, 451, 1)[:70])
	_, err := Seek(src, 1, 451)
	require.ErrorIs(t, err, ErrRecordTooShort)
}
