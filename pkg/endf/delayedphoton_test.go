package endf_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m1el/goendf/internal/testutil"
	"github.com/m1el/goendf/pkg/endf"
)

func TestReadDelayedPhotonsContinuous(t *testing.T) {
	src := testutil.OpenTape(t, "tapes/pu239.endf")
	data, err := endf.ReadDelayedPhotons(src)
	require.NoError(t, err)
	require.Nil(t, data.Discrete)
	require.Len(t, data.Continuous, 8)
	require.InEpsilon(t, 1.33e-2, data.Continuous[0], 1e-12)
	require.InEpsilon(t, 2.2e1, data.Continuous[7], 1e-12)
}

func TestReadDelayedPhotonsDiscrete(t *testing.T) {
	line := func(payload string, ns int) string {
		return fmt.Sprintf("%-66s%4d%2d%3d%5d", payload, 9437, 1, 460, ns)
	}
	field := func(vals ...any) string {
		var b strings.Builder
		for _, v := range vals {
			switch x := v.(type) {
			case int:
				fmt.Fprintf(&b, "%11d", x)
			case float64:
				fmt.Fprintf(&b, "%11.4e", x)
			}
		}
		return b.String()
	}
	tape := strings.Join([]string{
		line(field(94239.0, 236.9986, 1, 0, 2, 0), 1),
		// two discrete photons, each one TAB1 of multiplicity vs time
		line(field(0.5, 0.0, 0, 0, 1, 2), 2),
		line(field(2, 2), 3),
		line(field(0.0, 1.0, 10.0, 0.5), 4),
		line(field(0.25, 0.0, 0, 0, 1, 2), 5),
		line(field(2, 1), 6),
		line(field(0.0, 2.0, 10.0, 1.5), 7),
	}, "\n") + "\n"

	data, err := endf.ReadDelayedPhotons(endf.NewLineReader(strings.NewReader(tape)))
	require.NoError(t, err)
	require.Nil(t, data.Continuous)
	require.Len(t, data.Discrete, 2)
	require.Equal(t, [][2]float64{{0.0, 1.0}, {10.0, 0.5}}, data.Discrete[0].Data)
	require.Equal(t, endf.ConstantHistogram, data.Discrete[1].Intervals[0].Scheme)
}

func TestReadDelayedPhotonsUnknownRepresentation(t *testing.T) {
	tape := fmt.Sprintf("%-66s%4d%2d%3d%5d\n",
		fmt.Sprintf("%11.4e%11.4e%11d%11d%11d%11d", 94239.0, 236.9986, 3, 0, 0, 0),
		9437, 1, 460, 1)
	_, err := endf.ReadDelayedPhotons(endf.NewLineReader(strings.NewReader(tape)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "LO=3")
}
