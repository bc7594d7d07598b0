package delayedphoton

import (
	"context"
	"testing"

	"github.com/m1el/goendf/internal/section"
	"github.com/m1el/goendf/internal/testutil"
)

func TestReaderProcess(t *testing.T) {
	src := testutil.OpenTape(t, "tapes/pu239.endf")
	fields, err := (Reader{}).Read(context.Background(), src, section.Key{MF: 1, MT: 460})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	fs := section.FieldSet(fields)
	if s, err := fs.String("representation"); err != nil || s != "continuous" {
		t.Fatalf("unexpected representation: %q, %v", s, err)
	}
	if n, err := fs.Int("decay_constants"); err != nil || n != 8 {
		t.Fatalf("unexpected decay_constants: %d, %v", n, err)
	}
}
