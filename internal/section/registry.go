package section

import (
	"context"
	"fmt"
	"sync"

	"github.com/m1el/goendf/pkg/endf"
)

// Detection names the sections a reader can decode. An MT of zero matches
// every section within the file number.
type Detection struct {
	MF int
	MT int
}

// Key identifies the section a caller wants decoded. A MAT of zero matches
// any material on the tape.
type Key struct {
	MAT int
	MF  int
	MT  int
}

// Reader decodes one section shape into a field map.
type Reader interface {
	Name() string
	Read(ctx context.Context, src endf.Source, key Key) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredReader
)

type registeredReader struct {
	detect Detection
	reader Reader
}

// Register stores a reader/detection pair in memory.
func Register(det Detection, r Reader) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredReader{detect: det, reader: r})
}

// Lookup returns the first reader that matches the (MF, MT) pair.
func Lookup(mf, mt int) (Reader, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rr := range registry {
		if rr.detect.MF == mf && (rr.detect.MT == mt || rr.detect.MT == 0) {
			return rr.reader, nil
		}
	}
	return nil, fmt.Errorf("no reader registered for MF=%d MT=%d", mf, mt)
}
