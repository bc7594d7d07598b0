package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelector decodes a section selector of the form "MF:MT" (for example
// "3:102"). The MT part may be omitted, in which case it defaults to zero
// and the lookup falls back to file-wide readers.
func ParseSelector(input string) (mf, mt int, err error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, 0, fmt.Errorf("empty section selector")
	}
	parts := strings.SplitN(s, ":", 2)
	mf, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid MF in selector %q: %w", input, err)
	}
	if mf < 1 || mf > 99 {
		return 0, 0, fmt.Errorf("MF %d out of range 1-99", mf)
	}
	if len(parts) == 2 {
		mt, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid MT in selector %q: %w", input, err)
		}
		if mt < 0 || mt > 999 {
			return 0, 0, fmt.Errorf("MT %d out of range 0-999", mt)
		}
	}
	return mf, mt, nil
}
