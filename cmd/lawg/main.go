// Package main provides the lawg CLI, a thin terminal front end over the
// lawg API client.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/internal/paths"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// Exit codes: 0 success, 1 user error (bad input, 4xx), 2 system error
// (network failure, 5xx, timeouts).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagToken     string
	flagBaseURL   string
	flagConfigDir string
	flagJSON      bool
	flagDebug     bool
	flagTimeout   time.Duration
)

// Resolved configuration, set by PersistentPreRunE so all subcommands
// can build a client from it.
var (
	cliToken   string
	cliBaseURL string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "lawg",
	Short: "lawg is a terminal client for the lawg event service",
	Long: `lawg manages projects, feeds, logs, and insights on a lawg server
from the terminal. The API token is read from --token, the LAWG_TOKEN
environment variable, a .env file in the working directory, or
config.yaml in the configuration directory, in that order.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (default: LAWG_TOKEN or config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (default: LAWG_BASE_URL or config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "dump requests and responses to stderr")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request timeout")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(insightCmd)
}

// loadSettings resolves token and base URL from flags, environment,
// .env, and config.yaml. The version command runs without settings.
func loadSettings(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// A .env in the working directory supplies LAWG_* variables without
	// overriding the real environment. Missing files are fine.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	cliToken = flagToken
	if cliToken == "" {
		cliToken = cfg.GetString(cfgKeyToken)
	}
	cliBaseURL = flagBaseURL
	if cliBaseURL == "" {
		cliBaseURL = cfg.GetString(cfgKeyBaseURL)
	}
	return nil
}

// exitCode classifies an error: server-side and transport failures are
// system errors, everything else is on the user.
func exitCode(err error) int {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return exitSysError
		}
		return exitUserError
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return exitSysError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return exitSysError
	}
	return exitUserError
}
