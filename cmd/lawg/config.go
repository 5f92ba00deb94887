// Config loading for the lawg CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lawgdev/lawg-go/pkg/lawg"
	"github.com/lawgdev/lawg-go/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyToken   = "token"
	cfgKeyBaseURL = "base_url"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# lawg CLI configuration

# API token (overridable by --token or LAWG_TOKEN)
# token:

# API base URL (overridable by --base-url or LAWG_BASE_URL)
# base_url: https://api.lawg.dev
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// Environment beats the config file: LAWG_TOKEN and LAWG_BASE_URL.
	_ = v.BindEnv(cfgKeyToken, "LAWG_TOKEN")
	_ = v.BindEnv(cfgKeyBaseURL, "LAWG_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o600)
}

// newAPIClient builds the API client from the resolved settings. The
// caller gets a ready client or an error suitable for the terminal.
func newAPIClient() (*lawg.Client, error) {
	var opts []lawg.Option
	if cliBaseURL != "" {
		opts = append(opts, lawg.WithBaseURL(cliBaseURL))
	}
	if flagTimeout > 0 {
		opts = append(opts, lawg.WithTimeout(flagTimeout))
	}
	if flagDebug {
		opts = append(opts, lawg.WithDebug())
	}

	client, err := lawg.NewClient(cliToken, opts...)
	if err != nil {
		if errors.Is(err, types.ErrTokenEmpty) {
			return nil, fmt.Errorf("no API token configured (set --token, LAWG_TOKEN, or token in config.yaml)")
		}
		return nil, err
	}
	return client, nil
}
