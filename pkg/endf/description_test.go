package endf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m1el/goendf/internal/testutil"
	"github.com/m1el/goendf/pkg/endf"
)

func TestReadDescription(t *testing.T) {
	src := testutil.OpenTape(t, "tapes/pu239.endf")
	card, err := endf.ReadDescription(src)
	require.NoError(t, err)

	require.Equal(t, 94239.0, card.ZA)
	require.InEpsilon(t, 2.369986e2, card.AWR, 1e-12)
	require.Equal(t, 1, card.LRP)
	require.Equal(t, 1, card.LFI)
	require.Equal(t, 8, card.LREL)
	require.Equal(t, 10, card.NSUB)
	require.Equal(t, 4, card.NWD)
	require.Equal(t, 3, card.NXC)

	z, a := card.SplitZA()
	require.Equal(t, 94, z)
	require.Equal(t, 239, a)

	// string fields keep their raw column padding
	require.Equal(t, " 94-Pu-239 ", card.ZSYMAM)
	require.Equal(t, "LANL", strings.TrimSpace(card.ALAB))
	require.Equal(t, "ENDF/B-VIII.0", strings.TrimSpace(card.REF))
	require.Equal(t, 20210115, card.ENDATE)

	require.Contains(t, card.Comments, "fixture tape")
	require.Equal(t, []endf.DirectoryEntry{
		{MF: 1, MT: 451, NC: 9, MOD: 1},
		{MF: 1, MT: 460, NC: 5, MOD: 1},
		{MF: 3, MT: 102, NC: 6, MOD: 1},
	}, card.Directory)
}

func TestReadDescriptionRewindsFirst(t *testing.T) {
	src := testutil.OpenTape(t, "tapes/pu239.endf")
	// consume past the description section before reading it
	_, err := endf.Seek(src, 3, 102)
	require.NoError(t, err)

	card, err := endf.ReadDescription(src)
	require.NoError(t, err)
	require.Equal(t, 94239.0, card.ZA)
}

func TestReadDescriptionMissingTerminator(t *testing.T) {
	lines := testutil.LoadLines(t, "tapes/pu239.endf")
	// drop the description section's SEND record
	var truncated []string
	for _, line := range lines {
		id, err := endf.ParseIdent(line)
		require.NoError(t, err)
		if id.MF == 1 && id.IsSEND() {
			continue
		}
		truncated = append(truncated, line)
	}
	src := endf.NewLineReader(strings.NewReader(strings.Join(truncated, "\n") + "\n"))
	_, err := endf.ReadDescription(src)
	require.ErrorIs(t, err, endf.ErrMissingTerminator)
}
