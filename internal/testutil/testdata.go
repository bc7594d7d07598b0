package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m1el/goendf/pkg/endf"
)

// OpenTape returns a rewindable line source over a fixture tape from
// testdata, located relative to the repo root.
func OpenTape(t *testing.T, rel string) *endf.LineReader {
	t.Helper()
	return endf.NewLineReader(bytes.NewReader(readTestdata(t, rel)))
}

// LoadLines returns the raw lines of a fixture tape.
func LoadLines(t *testing.T, rel string) []string {
	t.Helper()
	src := OpenTape(t, rel)
	var lines []string
	for {
		line, err := src.ReadLine()
		if err != nil {
			return lines
		}
		lines = append(lines, line)
	}
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
		filepath.Join("..", "..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
