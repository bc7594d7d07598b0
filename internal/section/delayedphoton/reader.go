package delayedphoton

import (
	"context"

	"github.com/m1el/goendf/internal/section"
	"github.com/m1el/goendf/pkg/endf"
)

func init() {
	section.Register(section.Detection{MF: 1, MT: 460}, Reader{})
}

// Reader decodes the delayed photon data section into fields.
type Reader struct{}

// Name returns the canonical reader name.
func (Reader) Name() string { return "delayed-photons" }

// Read decodes MF=1, MT=460 in whichever representation the tape carries.
func (Reader) Read(_ context.Context, src endf.Source, _ section.Key) (map[string]any, error) {
	data, err := endf.ReadDelayedPhotons(src)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"_": "section"}
	if data.Continuous != nil {
		fields["representation"] = "continuous"
		fields["decay_constants"] = len(data.Continuous)
		return fields, nil
	}
	points := 0
	for _, tab := range data.Discrete {
		points += len(tab.Data)
	}
	fields["representation"] = "discrete"
	fields["photons"] = len(data.Discrete)
	fields["time_points"] = points
	return fields, nil
}
