package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/observability"
	"github.com/jonathan/rephrase-master/internal/rephrase"
	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/spf13/cobra"
)

var rephraseCmd = &cobra.Command{
	Use:   "rephrase",
	Short: "Rephrase text in one or more styles",
	Long:  "Calls Gemini to rewrite the text in each requested style. With --platform the results are also formatted for sharing.",
	RunE:  runRephrase,
}

var (
	rephraseText     string
	rephraseStyles   []string
	rephrasePlatform string
	rephrasePro      bool
	rephraseNoTags   bool
	rephraseNoLink   bool
	rephraseJSON     bool
)

func init() {
	rephraseCmd.Flags().StringVarP(&rephraseText, "text", "t", "", "Text to rephrase (required)")
	rephraseCmd.Flags().StringSliceVarP(&rephraseStyles, "style", "s", nil, "Style IDs, comma separated or repeated (required)")
	rephraseCmd.Flags().StringVarP(&rephrasePlatform, "platform", "p", "", "Also format each result for this platform: "+sharing.PlatformList())
	rephraseCmd.Flags().BoolVar(&rephrasePro, "pro", false, "Format share content as a Pro user")
	rephraseCmd.Flags().BoolVar(&rephraseNoTags, "no-tags", false, "Omit hashtags from share content (Pro only)")
	rephraseCmd.Flags().BoolVar(&rephraseNoLink, "no-link", false, "Omit the landing page link from share content (Pro only)")
	rephraseCmd.Flags().BoolVar(&rephraseJSON, "json", false, "Print results as JSON")

	if err := rephraseCmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}
	if err := rephraseCmd.MarkFlagRequired("style"); err != nil {
		panic(fmt.Sprintf("failed to mark style flag as required: %v", err))
	}

	rootCmd.AddCommand(rephraseCmd)
}

func runRephrase(cmd *cobra.Command, _ []string) error {
	list := make([]styles.Style, 0, len(rephraseStyles))
	for _, s := range rephraseStyles {
		style := styles.Style(s)
		if !styles.Known(style) {
			return &rephrase.InvalidStyleError{Style: s}
		}
		list = append(list, style)
	}

	var platform sharing.Platform
	if rephrasePlatform != "" {
		p, err := sharing.ParsePlatform(rephrasePlatform)
		if err != nil {
			return err
		}
		platform = p
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	service, closeClient, err := newRephraseService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	results, err := service.RephraseMany(ctx, rephraseText, list)
	if err != nil {
		return fmt.Errorf("failed to rephrase: %w", err)
	}

	snap := shareSnapshot(rephrasePro, rephraseNoTags, rephraseNoLink)
	return printRephrased(cmd.OutOrStdout(), results, platform, snap, rephraseJSON)
}

// printRephrased writes results and, when platform is set, the share content
// for each result.
func printRephrased(out io.Writer, results []rephrase.Result, platform sharing.Platform, snap entitlement.Snapshot, asJSON bool) error {
	var deliveries []sharing.Delivery
	if platform != "" {
		for _, r := range results {
			deliveries = append(deliveries, sharing.Prepare(sharing.Request{
				Text:     r.Text,
				Style:    r.Style,
				Platform: platform,
			}, snap))
		}
	}

	if asJSON {
		return writeJSON(out, map[string]any{
			"results": results,
			"shares":  deliveries,
		})
	}

	printer := observability.NewPrinter(out)
	printer.PrintRephrased(results)
	for _, d := range deliveries {
		printer.PrintDelivery(d)
	}
	return nil
}
