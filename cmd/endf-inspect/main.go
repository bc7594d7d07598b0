package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m1el/goendf/internal/options"
	"github.com/m1el/goendf/internal/section"
	_ "github.com/m1el/goendf/internal/section/crosssection"  // register reader
	_ "github.com/m1el/goendf/internal/section/delayedphoton" // register reader
	_ "github.com/m1el/goendf/internal/section/description"   // register reader
	"github.com/m1el/goendf/pkg/endf"
)

var (
	rootCmd = &cobra.Command{
		Use:   "endf-inspect <tape>",
		Short: "Inspect ENDF-6 nuclear data tapes",
		Long:  "endf-inspect decodes section data from ENDF-6 tapes using the goendf library.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			src := endf.NewLineReader(file)
			ctx := cmd.Context()
			if interactive {
				return runInteractive(ctx, src)
			}
			return runInspect(ctx, src, selector)
		},
	}

	selector    string
	material    int
	interactive bool
)

func init() {
	rootCmd.Flags().StringVar(&selector, "section", "1:451",
		`section selector "MF:MT" (default: the description card)`)
	rootCmd.Flags().IntVar(&material, "material", 0, "restrict the scan to one MAT number")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "read section selectors from stdin")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, src *endf.LineReader) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("endf-inspect interactive mode. Enter a MF:MT selector and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := src.Rewind(); err != nil {
			return err
		}
		if err := runInspect(ctx, src, line); err != nil {
			logrus.WithError(err).Error("failed to decode section")
		}
	}
	return scanner.Err()
}

func runInspect(ctx context.Context, src endf.Source, sel string) error {
	mf, mt, err := options.ParseSelector(sel)
	if err != nil {
		return err
	}
	key := section.Key{MAT: material, MF: mf, MT: mt}
	name, fields, err := decodeSection(ctx, src, key)
	if err != nil {
		return err
	}
	fields["reader"] = name
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// decodeSection dispatches to a registered section reader, falling back to a
// generic head-record report for section shapes nobody claims.
func decodeSection(ctx context.Context, src endf.Source, key section.Key) (string, map[string]any, error) {
	if reader, err := section.Lookup(key.MF, key.MT); err == nil {
		fields, err := reader.Read(ctx, src, key)
		return reader.Name(), fields, err
	}
	var line string
	var err error
	if key.MAT != 0 {
		line, err = endf.SeekMaterial(src, key.MAT, key.MF, key.MT)
	} else {
		line, err = endf.Seek(src, key.MF, key.MT)
	}
	if err != nil {
		return "", nil, err
	}
	id, err := endf.ParseIdent(line)
	if err != nil {
		return "", nil, err
	}
	fields := map[string]any{
		"_":   "section",
		"mat": id.MAT,
		"mf":  id.MF,
		"mt":  id.MT,
	}
	if head, err := endf.ParseCont(line); err == nil {
		fields["c1"] = head.C1
		fields["c2"] = head.C2
		fields["l1"] = head.L1
		fields["l2"] = head.L2
		fields["n1"] = head.N1
		fields["n2"] = head.N2
	} else if text, err := endf.ParseText(line); err == nil {
		fields["text"] = strings.TrimRight(text, " ")
	}
	return "generic", fields, nil
}
