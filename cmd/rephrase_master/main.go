// Package main provides the rephrase_master CLI: the HTTP API server plus
// one-shot commands for rephrasing and share generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/rephrase-master/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "rephrase_master",
	Short:         "Rephrase Master text rewriting and sharing",
	Long:          "Rephrase Master rewrites text in playful styles with an LLM and formats the result for sharing on social platforms.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (JSON, YAML or TOML)")
}

// loadConfig reads settings from the optional --config file and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
