package endf

import "errors"

// Sentinel errors for structural problems in an ENDF tape. Field-level
// numeric failures wrap the strconv error for the offending field instead.
var (
	// ErrRecordTooShort indicates a line with fewer columns than the record
	// shape requires (66 for payload records, 80 when the identifier trailer
	// is consulted).
	ErrRecordTooShort = errors.New("record too short")

	// ErrElementCount indicates that a flattened interval or data list does
	// not match the count declared in its header.
	ErrElementCount = errors.New("invalid number of elements")

	// ErrInvalidInterpolation indicates an interpolation scheme code outside
	// the six defined by the format.
	ErrInvalidInterpolation = errors.New("invalid interpolation scheme")

	// ErrMissingTerminator indicates a section that is not closed by a SEND
	// record (MT=0, NS=99999).
	ErrMissingTerminator = errors.New("missing section terminator")
)
