package endf

import (
	"fmt"
	"strings"
)

// Description is the descriptive-data-and-directory section (MF=1, MT=451):
// material identification, evaluation metadata, free-text comments and the
// directory of sections present on the tape. Field names follow the ENDF
// mnemonics; the string fields keep their raw column padding.
type Description struct {
	// ZA identifies the nuclide as 1000*Z + A.
	ZA float64
	// AWR is the ratio of the atom (or molecule) mass to the neutron mass.
	AWR float64
	// LRP indicates whether resonance parameters are given in File 2.
	LRP int
	// LFI indicates whether the material is fissionable.
	LFI int
	// NLIB is the library identifier.
	NLIB int
	// NMOD is the modification number.
	NMOD int

	// ELIS is the excitation energy of the target nucleus.
	ELIS float64
	// STA is the target stability flag.
	STA float64
	// LIS is the state number of the target nucleus.
	LIS int
	// LISO is the isomeric state number of the target nucleus.
	LISO int
	// NFOR is the library format number.
	NFOR int

	// AWI is the projectile mass in neutron units.
	AWI float64
	// EMAX is the upper energy limit of the evaluation.
	EMAX float64
	// LREL is the release number.
	LREL int
	// NSUB is the sub-library number.
	NSUB int
	// NVER is the library version number.
	NVER int

	// TEMP is the target temperature.
	TEMP float64
	// LDRV distinguishes derived evaluations with the same material keys.
	LDRV int
	// NWD is the number of text records in the section.
	NWD int
	// NXC is the number of directory entries.
	NXC int

	// ZSYMAM is the text form of the material (Z-chemical symbol-A-state).
	ZSYMAM string
	// ALAB is the originating laboratory mnemonic.
	ALAB string
	// EDATE is the evaluation date.
	EDATE string
	// AUTH is the evaluation author.
	AUTH string

	// REF is the primary reference for the evaluation.
	REF string
	// DDATE is the original distribution date.
	DDATE string
	// RDATE is the date of the last revision.
	RDATE string
	// ENDATE is the master-file entry date (yyyymmdd).
	ENDATE int

	// Comments is the free-text body of the section.
	Comments string
	// Directory lists the sections present on the tape.
	Directory []DirectoryEntry
}

// DirectoryEntry describes one section listed in the tape directory.
type DirectoryEntry struct {
	// MF is the file number.
	MF int
	// MT is the section number.
	MT int
	// NC is the number of records in the section.
	NC int
	// MOD is the modification indicator.
	MOD int
}

// SplitZA returns the charge and baryon numbers packed into ZA.
func (d *Description) SplitZA() (z, a int) {
	za := int(d.ZA)
	return za / 1000, za % 1000
}

// ReadDescription reads the MF=1, MT=451 section. The source is rewound
// first when it supports that, so the reader works on a freshly opened tape
// or one that has already been scanned.
func ReadDescription(src Source) (*Description, error) {
	if rw, ok := src.(Rewinder); ok {
		if err := rw.Rewind(); err != nil {
			return nil, err
		}
	}
	var dec Decoder
	line, err := Seek(src, 1, 451)
	if err != nil {
		return nil, err
	}

	var d Description
	c, err := dec.Cont(line)
	if err != nil {
		return nil, err
	}
	d.ZA, d.AWR = c.C1, c.C2
	d.LRP, d.LFI, d.NLIB, d.NMOD = c.L1, c.L2, c.N1, c.N2

	if c, err = nextCont(src, &dec); err != nil {
		return nil, err
	}
	d.ELIS, d.STA = c.C1, c.C2
	d.LIS, d.LISO, d.NFOR = c.L1, c.L2, c.N2

	if c, err = nextCont(src, &dec); err != nil {
		return nil, err
	}
	d.AWI, d.EMAX = c.C1, c.C2
	d.LREL, d.NSUB, d.NVER = c.L1, c.N1, c.N2

	if c, err = nextCont(src, &dec); err != nil {
		return nil, err
	}
	d.TEMP = c.C1
	d.LDRV, d.NWD, d.NXC = c.L1, c.N1, c.N2

	if line, err = src.ReadLine(); err != nil {
		return nil, err
	}
	if d.ZSYMAM, d.ALAB, d.EDATE, d.AUTH, err = parseSymbolRow(line); err != nil {
		return nil, err
	}
	if line, err = src.ReadLine(); err != nil {
		return nil, err
	}
	if d.REF, d.DDATE, d.RDATE, d.ENDATE, err = parseReferenceRow(line); err != nil {
		return nil, err
	}

	var comments strings.Builder
	for i := 0; i < d.NWD-2; i++ {
		if line, err = src.ReadLine(); err != nil {
			return nil, err
		}
		text, err := ParseText(line)
		if err != nil {
			return nil, err
		}
		comments.WriteString("\n")
		comments.WriteString(text)
	}
	d.Comments = comments.String()

	for i := 0; i < d.NXC; i++ {
		if line, err = src.ReadLine(); err != nil {
			return nil, err
		}
		entry, err := parseDirectoryEntry(line)
		if err != nil {
			return nil, err
		}
		d.Directory = append(d.Directory, entry)
	}

	if line, err = src.ReadLine(); err != nil {
		return nil, err
	}
	id, err := ParseIdent(line)
	if err != nil {
		return nil, err
	}
	if !id.IsSEND() {
		return nil, fmt.Errorf("description section: %w", ErrMissingTerminator)
	}
	return &d, nil
}

func nextCont(src Source, dec *Decoder) (Cont, error) {
	line, err := src.ReadLine()
	if err != nil {
		return Cont{}, err
	}
	return dec.Cont(line)
}

// parseSymbolRow splits the fifth header line: ZSYMAM, ALAB, EDATE and the
// 33-column AUTH field.
func parseSymbolRow(line string) (zsymam, alab, edate, auth string, err error) {
	if len(line) < PayloadWidth {
		return "", "", "", "", fmt.Errorf("symbol row: %w", ErrRecordTooShort)
	}
	return line[0:11], line[11:22], line[22:33], line[33:66], nil
}

// parseReferenceRow splits the sixth header line: REF (22 columns), DDATE,
// RDATE and the right-aligned ENDATE integer.
func parseReferenceRow(line string) (ref, ddate, rdate string, endate int, err error) {
	if len(line) < PayloadWidth {
		return "", "", "", 0, fmt.Errorf("reference row: %w", ErrRecordTooShort)
	}
	endate, err = parseIntField(line[55:66])
	if err != nil {
		return "", "", "", 0, err
	}
	return line[0:22], line[22:33], line[33:44], endate, nil
}

// parseDirectoryEntry decodes one directory line: 22 blank columns followed
// by the MF, MT, NC and MOD integer fields.
func parseDirectoryEntry(line string) (DirectoryEntry, error) {
	if len(line) < PayloadWidth {
		return DirectoryEntry{}, fmt.Errorf("directory entry: %w", ErrRecordTooShort)
	}
	var entry DirectoryEntry
	var err error
	if entry.MF, err = parseIntField(line[22:33]); err != nil {
		return DirectoryEntry{}, err
	}
	if entry.MT, err = parseIntField(line[33:44]); err != nil {
		return DirectoryEntry{}, err
	}
	if entry.NC, err = parseIntField(line[44:55]); err != nil {
		return DirectoryEntry{}, err
	}
	if entry.MOD, err = parseIntField(line[55:66]); err != nil {
		return DirectoryEntry{}, err
	}
	return entry, nil
}
