package endf

import "fmt"

// DelayedPhotonData is the delayed photon section (MF=1, MT=460), stored on
// tape in one of two representations selected by the LO flag.
type DelayedPhotonData struct {
	// Discrete holds one time-dependence Tab1 per photon when LO=1.
	Discrete []Tab1
	// Continuous holds the precursor decay constants when LO=2.
	Continuous []float64
}

// ReadDelayedPhotons reads the MF=1, MT=460 section starting from the
// source's current position.
func ReadDelayedPhotons(src Source) (*DelayedPhotonData, error) {
	var dec Decoder
	line, err := Seek(src, 1, 460)
	if err != nil {
		return nil, err
	}
	head, err := dec.Cont(line)
	if err != nil {
		return nil, err
	}
	lo, ng := head.L1, head.N1
	if ng < 0 {
		return nil, fmt.Errorf("delayed photon data: NG=%d: %w", ng, ErrElementCount)
	}

	switch lo {
	case 1:
		tabs := make([]Tab1, 0, ng)
		for i := 0; i < ng; i++ {
			tab, err := readTab1(src, &dec)
			if err != nil {
				return nil, err
			}
			tabs = append(tabs, tab)
		}
		return &DelayedPhotonData{Discrete: tabs}, nil
	case 2:
		c, err := nextCont(src, &dec)
		if err != nil {
			return nil, err
		}
		list, err := readRealList(src, &dec, c.N1)
		if err != nil {
			return nil, err
		}
		return &DelayedPhotonData{Continuous: list}, nil
	default:
		return nil, fmt.Errorf("delayed photon data: unsupported representation LO=%d", lo)
	}
}
