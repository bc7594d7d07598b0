// Package endf decodes the ENDF-6 nuclear-data interchange format: 80-column
// fixed-width records carrying either free text or six 11-column numeric
// fields, trailed by a (MAT, MF, MT, NS) identifier on every line.
package endf

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed column layout of an ENDF record.
const (
	// PayloadWidth is the number of columns holding record payload.
	PayloadWidth = 66
	// LineWidth is the full record width including the identifier trailer.
	LineWidth = 80
	// FieldWidth is the width of one numeric payload field.
	FieldWidth = 11
	// FieldsPerRecord is the number of payload fields on one line.
	FieldsPerRecord = 6
)

// Cont holds the six fields of a CONT record. The integer fields carry
// record-specific meanings (counts, flags); callers pick what they need.
type Cont struct {
	C1, C2         float64
	L1, L2, N1, N2 int
}

// Ident is the identifier trailer present on every physical line: material,
// file number, section number and the record sequence number within the
// section.
type Ident struct {
	MAT, MF, MT, NS int
}

// IsSEND reports whether the identifier marks a section terminator.
func (id Ident) IsSEND() bool {
	return id.MT == 0 && id.NS == 99999
}

// Decoder parses the ENDF record grammar. The zero value is ready to use; a
// single Decoder reused across calls avoids re-allocating the scratch buffer
// needed to normalize the implicit-exponent real format. A Decoder is not
// safe for concurrent use.
type Decoder struct {
	scratch []byte
}

// ParseReal decodes one 11-column ENDF real field with a throwaway Decoder.
func ParseReal(field string) (float64, error) {
	var d Decoder
	return d.Real(field)
}

// Real decodes an ENDF real field. The format packs mantissa and a signed
// exponent into 11 columns without an exponent letter (`6.15077-10` means
// 6.15077e-10); fields already carrying a marked exponent parse as-is.
func (d *Decoder) Real(field string) (float64, error) {
	s := strings.TrimSpace(field)
	if strings.ContainsAny(s, "eE") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("real field %q: %w", field, err)
		}
		return v, nil
	}

	d.scratch = d.scratch[:0]
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		d.scratch = append(d.scratch, rest[0])
		rest = rest[1:]
	}
	// The first sign after the mantissa starts the exponent.
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		d.scratch = append(d.scratch, rest[:i]...)
		d.scratch = append(d.scratch, 'e')
		d.scratch = append(d.scratch, rest[i:]...)
	} else {
		d.scratch = append(d.scratch, rest...)
	}
	v, err := strconv.ParseFloat(string(d.scratch), 64)
	if err != nil {
		return 0, fmt.Errorf("real field %q: %w", field, err)
	}
	return v, nil
}

// Cont decodes a CONT record: two reals followed by four integers.
func (d *Decoder) Cont(line string) (Cont, error) {
	if len(line) < PayloadWidth {
		return Cont{}, fmt.Errorf("cont record: %w", ErrRecordTooShort)
	}
	var c Cont
	var err error
	if c.C1, err = d.Real(line[0:11]); err != nil {
		return Cont{}, err
	}
	if c.C2, err = d.Real(line[11:22]); err != nil {
		return Cont{}, err
	}
	ints := [4]*int{&c.L1, &c.L2, &c.N1, &c.N2}
	for i, dst := range ints {
		field := line[22+i*FieldWidth : 33+i*FieldWidth]
		if *dst, err = parseIntField(field); err != nil {
			return Cont{}, err
		}
	}
	return c, nil
}

// ParseCont decodes a CONT record with a throwaway Decoder.
func ParseCont(line string) (Cont, error) {
	var d Decoder
	return d.Cont(line)
}

// ParseText returns the 66-column payload of a TEXT record verbatim.
// Embedded spacing is significant, so nothing is trimmed.
func ParseText(line string) (string, error) {
	if len(line) < PayloadWidth {
		return "", fmt.Errorf("text record: %w", ErrRecordTooShort)
	}
	return line[:PayloadWidth], nil
}

// RealRow decodes up to six real fields from one line, appending to dst and
// returning the extended slice plus the number of values read. A blank field
// ends the row: short rows are how multi-line lists terminate, not an error.
func (d *Decoder) RealRow(line string, dst []float64) ([]float64, int, error) {
	if len(line) < PayloadWidth {
		return dst, 0, fmt.Errorf("real row: %w", ErrRecordTooShort)
	}
	n := 0
	for i := 0; i < FieldsPerRecord; i++ {
		field := line[i*FieldWidth : (i+1)*FieldWidth]
		if strings.TrimSpace(field) == "" {
			return dst, n, nil
		}
		v, err := d.Real(field)
		if err != nil {
			return dst, n, err
		}
		dst = append(dst, v)
		n++
	}
	return dst, n, nil
}

// IntRow is the integer analogue of RealRow, with the same blank-field
// row-termination rule.
func (d *Decoder) IntRow(line string, dst []int) ([]int, int, error) {
	if len(line) < PayloadWidth {
		return dst, 0, fmt.Errorf("int row: %w", ErrRecordTooShort)
	}
	n := 0
	for i := 0; i < FieldsPerRecord; i++ {
		field := line[i*FieldWidth : (i+1)*FieldWidth]
		if strings.TrimSpace(field) == "" {
			return dst, n, nil
		}
		v, err := parseIntField(field)
		if err != nil {
			return dst, n, err
		}
		dst = append(dst, v)
		n++
	}
	return dst, n, nil
}

// ParseIdent decodes the identifier trailer from columns 67-80: MAT (4
// columns), MF (2), MT (3) and NS (5), each right-justified.
func ParseIdent(line string) (Ident, error) {
	if len(line) < LineWidth {
		return Ident{}, fmt.Errorf("record identifier: %w", ErrRecordTooShort)
	}
	trailer := line[PayloadWidth:LineWidth]
	var id Ident
	var err error
	if id.MAT, err = parseIntField(trailer[0:4]); err != nil {
		return Ident{}, err
	}
	if id.MF, err = parseIntField(trailer[4:6]); err != nil {
		return Ident{}, err
	}
	if id.MT, err = parseIntField(trailer[6:9]); err != nil {
		return Ident{}, err
	}
	if id.NS, err = parseIntField(trailer[9:14]); err != nil {
		return Ident{}, err
	}
	return id, nil
}

func parseIntField(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("int field %q: %w", field, err)
	}
	return v, nil
}
