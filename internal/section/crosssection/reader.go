package crosssection

import (
	"context"
	"fmt"
	"strings"

	"github.com/m1el/goendf/internal/section"
	"github.com/m1el/goendf/pkg/endf"
)

func init() {
	// MT=0 matches every reaction within File 3.
	section.Register(section.Detection{MF: 3, MT: 0}, Reader{})
}

// Reader decodes File 3 pointwise cross sections: a HEAD record followed by
// one TAB1 of (energy, cross section) points.
type Reader struct{}

// Name returns the canonical reader name.
func (Reader) Name() string { return "cross-section" }

// Read scans forward to the requested reaction and summarizes its TAB1 body.
func (Reader) Read(_ context.Context, src endf.Source, key section.Key) (map[string]any, error) {
	if key.MT == 0 {
		return nil, fmt.Errorf("cross sections require an explicit MT, e.g. 3:102")
	}
	var line string
	var err error
	if key.MAT != 0 {
		line, err = endf.SeekMaterial(src, key.MAT, key.MF, key.MT)
	} else {
		line, err = endf.Seek(src, key.MF, key.MT)
	}
	if err != nil {
		return nil, err
	}
	head, err := endf.ParseCont(line)
	if err != nil {
		return nil, err
	}
	tab, err := endf.ReadTab1(src)
	if err != nil {
		return nil, err
	}

	schemes := make([]string, 0, len(tab.Intervals))
	for _, iv := range tab.Intervals {
		schemes = append(schemes, iv.Scheme.String())
	}
	fields := map[string]any{
		"_":             "section",
		"za":            head.C1,
		"awr":           head.C2,
		"qm_ev":         tab.Head.C1,
		"qi_ev":         tab.Head.C2,
		"breakup_flag":  tab.Head.L2,
		"points":        len(tab.Data),
		"ranges":        len(tab.Intervals),
		"interpolation": strings.Join(schemes, ","),
	}
	if n := len(tab.Data); n > 0 {
		fields["energy_min_ev"] = tab.Data[0][0]
		fields["energy_max_ev"] = tab.Data[n-1][0]
	}
	return fields, nil
}
