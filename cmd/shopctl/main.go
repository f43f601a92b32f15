package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"shopconsole/internal/backend"
	"shopconsole/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	baseURL    string
	timeoutSec int
	logLevel   string
	jsonOutput bool
	pageSize   int

	api *backend.Client
)

// rootCmd is the shopctl entry point
var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Browse and manage shops, products and categories",
	Long: `shopctl talks to the shop management REST API.

The backend address comes from --base-url or API_BASE_URL (.env is read
when present).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		config.ConfigureLogging(logLevel)

		if baseURL == "" {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			baseURL = cfg.Backend.BaseURL
			if !cmd.Flags().Changed("timeout") {
				timeoutSec = cfg.Backend.TimeoutSec
			}
			if !cmd.Flags().Changed("size") {
				pageSize = cfg.Listing.PageSize
			}
		}
		api = backend.New(baseURL, timeoutSec)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 30, "request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON")
	rootCmd.PersistentFlags().IntVar(&pageSize, "size", 9, "page size")

	rootCmd.AddCommand(shopsCmd, productsCmd, categoriesCmd, pingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pageFooter(cmd *cobra.Command, displayPage, count int) {
	fmt.Fprintf(cmd.OutOrStdout(), "\npage %d/%d\n", displayPage, count)
}

func parseWait(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
