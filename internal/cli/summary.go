package cli

import (
	"encoding/json"
	"fmt"

	"github.com/okian/betcast/internal/adapters/source"
	service "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/pkg/logger"
	"github.com/spf13/cobra"
)

func newSummaryCommand(st *state) *cobra.Command {
	var (
		file    string
		asJSON  bool
		showAll bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Load the sheet and print weekly summaries",
		Long: "Loads the configured sheet once, exactly as the server does, and prints\n" +
			"one row per week. Generated data is used, and flagged, when the sheet\n" +
			"cannot be fetched or parsed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *st.cfg
			if file != "" {
				cfg.SourceKind = source.KindFile
				cfg.FilePath = file
			}
			src, err := source.FromConfig(&cfg)
			if err != nil {
				return err
			}
			defer func() { _ = source.Close(src) }()

			o := service.NewFromConfig(&cfg, src, logger.Get()).Load(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(st.out)
				enc.SetIndent("", "  ")
				if showAll {
					return enc.Encode(o)
				}
				return enc.Encode(o.Weeks)
			}

			fmt.Fprintln(st.out, renderBanner(o))
			fmt.Fprintln(st.out, renderWeeks(o.Weeks))
			if len(o.Skipped) > 0 || len(o.Issues) > 0 {
				fmt.Fprintln(st.out, renderProblems(o))
			}
			if showAll {
				fmt.Fprintln(st.out, renderBets(o.Bets))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read this CSV file instead of the configured source")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&showAll, "all", false, "include every record (JSON: the whole load outcome)")
	return cmd
}
