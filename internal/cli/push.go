package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/okian/betcast/internal/adapters/source"
	"github.com/okian/betcast/internal/domain/fields"
	"github.com/okian/betcast/pkg/logger"
	"github.com/spf13/cobra"
)

func newPushCommand(st *state) *cobra.Command {
	var (
		file string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Store sheet text in redis for the redis source",
		Long: "Stores a CSV file, or a generated sheet when --file is not given, under\n" +
			"the configured redis key. A server started with source_kind=redis then\n" +
			"serves it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				text []byte
				err  error
			)
			if file != "" {
				text, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
			} else {
				text, err = sampleCSV(st.cfg, fields.Greek)
				if err != nil {
					return err
				}
			}

			r := source.NewRedis(st.cfg.RedisAddr, st.cfg.RedisKey,
				source.WithRedisPassword(st.cfg.RedisPassword),
				source.WithRedisDB(st.cfg.RedisDB),
			)
			defer func() { _ = r.Close() }()

			if err := r.Store(cmd.Context(), string(text), ttl); err != nil {
				return err
			}
			logger.Get().Info(cmd.Context(), "stored sheet",
				logger.String("addr", st.cfg.RedisAddr),
				logger.String("key", st.cfg.RedisKey),
				logger.Int("bytes", len(text)),
				logger.Duration("ttl", ttl))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "CSV file to store (default: a generated sheet)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "expiry of the stored text; 0 keeps it forever")
	return cmd
}
