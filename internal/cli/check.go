package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/betcast/internal/adapters/http/api"
	"github.com/okian/betcast/internal/domain/model"
	"github.com/spf13/cobra"
)

const defaultCheckTimeout = 30 * time.Second

type summaryPayload struct {
	LoadID string                `json:"loadId"`
	Status string                `json:"status"`
	Reason string                `json:"reason"`
	Weeks  []model.WeeklySummary `json:"weeks"`
}

func newCheckCommand(st *state) *cobra.Command {
	var (
		baseURL     string
		timeout     time.Duration
		requireLive bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe a running server and report where its data comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: timeout}
			base := strings.TrimRight(baseURL, "/")

			if _, err := getJSON(cmd.Context(), client, base+"/healthz", nil); err != nil {
				return fmt.Errorf("%w: %w", ErrUnhealthy, err)
			}

			var p summaryPayload
			hdr, err := getJSON(cmd.Context(), client, base+"/api/v1/summary", &p)
			if err != nil {
				return err
			}

			src := hdr.Get(api.HeaderDataSource)
			if src == "live" {
				fmt.Fprintln(st.out, liveStyle.Render("LIVE")+" "+
					mutedStyle.Render(fmt.Sprintf("%d weeks, load %s", len(p.Weeks), p.LoadID)))
			} else {
				fmt.Fprintln(st.out, fallbackStyle.Render("FALLBACK")+" "+mutedStyle.Render(p.Reason))
			}
			fmt.Fprintln(st.out, renderWeeks(p.Weeks))

			if requireLive && src != "live" {
				return fmt.Errorf("%w: %s", ErrNotLive, p.Reason)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:9080", "base URL of the server")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultCheckTimeout, "HTTP request timeout")
	cmd.Flags().BoolVar(&requireLive, "require-live", false, "fail when the server is serving generated data")
	return cmd
}

// getJSON performs a GET and decodes the body into v when v is non-nil.
func getJSON(ctx context.Context, client *http.Client, url string, v any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s %d: %s", ErrBadResponse, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", url, err)
		}
	}
	return resp.Header, nil
}
