package description

import (
	"context"
	"strings"

	"github.com/m1el/goendf/internal/section"
	"github.com/m1el/goendf/pkg/endf"
)

func init() {
	section.Register(section.Detection{MF: 1, MT: 451}, Reader{})
}

// Reader decodes the descriptive-data-and-directory section into fields.
type Reader struct{}

// Name returns the canonical reader name.
func (Reader) Name() string { return "description" }

// Read decodes MF=1, MT=451. The section opens every tape, so the key's
// material restriction is not needed: the underlying reader rewinds and
// takes the first description card it finds.
func (Reader) Read(_ context.Context, src endf.Source, _ section.Key) (map[string]any, error) {
	card, err := endf.ReadDescription(src)
	if err != nil {
		return nil, err
	}
	z, a := card.SplitZA()
	fields := map[string]any{
		"_":               "section",
		"material":        strings.TrimSpace(card.ZSYMAM),
		"z":               z,
		"a":               a,
		"awr":             card.AWR,
		"laboratory":      strings.TrimSpace(card.ALAB),
		"author":          strings.TrimSpace(card.AUTH),
		"evaluation_date": strings.TrimSpace(card.EDATE),
		"reference":       strings.TrimSpace(card.REF),
		"library":         card.NLIB,
		"version":         card.NVER,
		"release":         card.LREL,
		"fissionable":     card.LFI != 0,
		"temperature_k":   card.TEMP,
		"emax_ev":         card.EMAX,
	}
	directory := make([]map[string]any, 0, len(card.Directory))
	for _, e := range card.Directory {
		directory = append(directory, map[string]any{
			"mf":      e.MF,
			"mt":      e.MT,
			"records": e.NC,
		})
	}
	fields["directory"] = directory
	return fields, nil
}
