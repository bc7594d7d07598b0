package section

import "testing"

func TestFieldSet(t *testing.T) {
	fs := FieldSet{
		"points":   4,
		"awr":      236.9986,
		"material": "94-Pu-239",
		"fissile":  true,
	}

	if n, err := fs.Int("points"); err != nil || n != 4 {
		t.Fatalf("Int(points) = %d, %v", n, err)
	}
	if f, err := fs.Float("awr"); err != nil || f != 236.9986 {
		t.Fatalf("Float(awr) = %v, %v", f, err)
	}
	if f, err := fs.Float("points"); err != nil || f != 4.0 {
		t.Fatalf("Float(points) = %v, %v", f, err)
	}
	if s, err := fs.String("material"); err != nil || s != "94-Pu-239" {
		t.Fatalf("String(material) = %q, %v", s, err)
	}
	if b, err := fs.Bool("fissile"); err != nil || !b {
		t.Fatalf("Bool(fissile) = %v, %v", b, err)
	}
	if _, err := fs.Int("missing"); err == nil {
		t.Fatal("expected error for missing key")
	}
	if _, err := fs.Float("material"); err == nil {
		t.Fatal("expected error for non-numeric field")
	}
}
