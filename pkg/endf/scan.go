package endf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Source yields ENDF records one line at a time. ReadLine returns the next
// line without its trailing newline, or io.EOF once the source is exhausted.
type Source interface {
	ReadLine() (string, error)
}

// Rewinder is the optional capability of repositioning a Source at its first
// line. Only whole-tape readers need it; the core decoders scan forward only.
type Rewinder interface {
	Rewind() error
}

// LineReader adapts any io.Reader into a Source. If the reader is also an
// io.Seeker (e.g. *os.File), LineReader supports Rewind.
type LineReader struct {
	src io.Reader
	buf *bufio.Reader
}

// NewLineReader returns a buffered line Source over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{src: r, buf: bufio.NewReader(r)}
}

// ReadLine returns the next line with line endings stripped.
func (lr *LineReader) ReadLine() (string, error) {
	line, err := lr.buf.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Final line without a trailing newline.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Rewind repositions the reader at the start of the underlying stream.
func (lr *LineReader) Rewind() error {
	seeker, ok := lr.src.(io.Seeker)
	if !ok {
		return fmt.Errorf("source of type %T does not support rewind", lr.src)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind source: %w", err)
	}
	lr.buf.Reset(lr.src)
	return nil
}

// Seek reads forward until it finds a line whose identifier matches the
// requested (MF, MT) pair and returns that line. The scan is single-pass:
// the cursor never moves backward, and io.EOF means the section is absent
// from the remainder of the source, which is an expected outcome.
func Seek(src Source, mf, mt int) (string, error) {
	for {
		line, err := src.ReadLine()
		if err != nil {
			return "", err
		}
		id, err := ParseIdent(line)
		if err != nil {
			return "", err
		}
		if id.MF == mf && id.MT == mt {
			return line, nil
		}
	}
}

// SeekMaterial is Seek with an additional match on the material number.
func SeekMaterial(src Source, mat, mf, mt int) (string, error) {
	for {
		line, err := src.ReadLine()
		if err != nil {
			return "", err
		}
		id, err := ParseIdent(line)
		if err != nil {
			return "", err
		}
		if id.MAT == mat && id.MF == mf && id.MT == mt {
			return line, nil
		}
	}
}
