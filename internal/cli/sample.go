package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	service "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/internal/config"
	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/fields"
	"github.com/spf13/cobra"
)

const outputFilePermission = 0o600

func newSampleCommand(st *state) *cobra.Command {
	var (
		labels string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a generated sheet as CSV",
		Long: "Generates the same kind of data the server falls back to and writes it\n" +
			"with Greek or English header labels. Parsing the output reproduces the\n" +
			"generated records. Use --sample-seed for a repeatable sheet.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, ok := fields.LabelSetByName(labels)
			if !ok {
				return fmt.Errorf("%w: unknown label set %q (greek or english)", config.ErrInvalidConfig, labels)
			}
			text, err := sampleCSV(st.cfg, set)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = io.Copy(st.out, bytes.NewReader(text))
				return err
			}
			if err := os.WriteFile(out, text, outputFilePermission); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(text), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&labels, "labels", fields.Greek.Name, "header labels: greek or english")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// sampleCSV renders one generated record set with the configured delimiter.
func sampleCSV(cfg *config.Config, set fields.LabelSet) ([]byte, error) {
	var buf bytes.Buffer
	bets := service.GeneratorFromConfig(cfg).Generate()
	if err := csvparse.Encode(&buf, bets, set, cfg.DelimiterRune()); err != nil {
		return nil, fmt.Errorf("encoding sample: %w", err)
	}
	return buf.Bytes(), nil
}
