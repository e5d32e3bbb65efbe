// Package cli implements the betcast-cli commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/betcast/internal/config"
	"github.com/okian/betcast/pkg/logger"
	"github.com/spf13/cobra"
)

// state is shared by all commands of one invocation.
type state struct {
	cfg *config.Config
	out io.Writer
	err io.Writer
}

// NewRootCommand builds the command tree. Output goes to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	st := &state{out: out, err: errOut}

	root := &cobra.Command{
		Use:           "betcast-cli",
		Short:         "Inspect, generate and publish betting sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd.Context(), cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	// Flag names mirror config keys with dashes, so they overlay the
	// defaults, the config file and BETCAST_* variables.
	pf := root.PersistentFlags()
	pf.String("source-kind", "", "where sheet text comes from: http, file or redis")
	pf.String("sheet-url", "", "published CSV URL; overrides sheet id and gid")
	pf.String("proxy-prefix", "", "prefix prepended to the sheet URL")
	pf.String("file-path", "", "local CSV export read by the file source")
	pf.String("redis-addr", "", "redis address for the redis source")
	pf.String("redis-key", "", "redis key holding the sheet text")
	pf.String("delimiter", "", "field delimiter")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	pf.Uint64("sample-seed", 0, "seed for generated data; 0 draws a new set every time")
	pf.Int("sample-weeks", 0, "weeks of generated data")
	pf.Int("sample-bets-per-week", 0, "generated bets per week")

	root.AddCommand(
		newSummaryCommand(st),
		newSampleCommand(st),
		newPushCommand(st),
		newCheckCommand(st),
	)
	return root
}

// Execute runs the CLI with the process streams.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (s *state) load(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.LoadWithFlags(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(s.err)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	s.cfg = cfg
	return nil
}
