package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnai/cardir/internal/model"
	"github.com/karnai/cardir/internal/scryfall"
)

var (
	fetchOutDir string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <card name>...",
	Short: "Download card records from the Scryfall API",
	Long: `Fetch downloads one or more card records by exact name and writes
each as sample_card_<slug>.json in the output directory, the naming
convention batch conversion consumes.

Fetching is polite by default: robots.txt is consulted, requests are
rate-limited per host, and responses are cached on disk.

Example:
  cardir fetch "Lightning Bolt" --output ./cards
  cardir fetch "Lightning Bolt" "Rhystic Study" --output ./cards --no-cache`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchOutDir, "output", ".", "output directory for downloaded records")

	// HTTP flags
	fetchCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
	fetchCmd.Flags().StringVar(&userAgent, "ua", "cardir/0.1 (+https://github.com/karnai/cardir)", "HTTP User-Agent")
	fetchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	fetchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	fetchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	fetchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	fetchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if err := os.MkdirAll(fetchOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	client := scryfall.NewClient(cfg)

	for _, name := range args {
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", name)
		}

		data, err := client.CardByName(ctx, name)
		if err != nil {
			return fmt.Errorf("fetch %q: %w", name, err)
		}

		path := filepath.Join(fetchOutDir, "sample_card_"+scryfall.Slug(name)+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %q: %w", name, err)
		}

		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", name, path)
	}

	return nil
}
