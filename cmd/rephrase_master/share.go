package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/rephrase-master/internal/delivery"
	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/observability"
	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Generate share content for a platform",
	Long: `Generate the post for a platform from already rephrased text, including the
app hashtag, style hashtag and landing page link the current tier requires.`,
	RunE: runShare,
}

var (
	shareText     string
	shareStyle    string
	sharePlatform string
	sharePro      bool
	shareNoTags   bool
	shareNoLink   bool
	shareCopy     bool
	shareOpen     bool
	shareJSON     bool
)

// Desktop collaborators; replaced in tests.
var (
	clipboardImpl delivery.Clipboard = delivery.SystemClipboard{}
	openerImpl    delivery.Opener    = delivery.SystemOpener{}
)

func init() {
	shareCmd.Flags().StringVarP(&shareText, "text", "t", "", "Text to share (required)")
	shareCmd.Flags().StringVarP(&shareStyle, "style", "s", "", "Style ID used for the hashtag (required)")
	shareCmd.Flags().StringVarP(&sharePlatform, "platform", "p", "general", "Target platform: "+sharing.PlatformList())
	shareCmd.Flags().BoolVar(&sharePro, "pro", false, "Generate as a Pro user")
	shareCmd.Flags().BoolVar(&shareNoTags, "no-tags", false, "Omit hashtags (Pro only)")
	shareCmd.Flags().BoolVar(&shareNoLink, "no-link", false, "Omit the landing page link (Pro only)")
	shareCmd.Flags().BoolVar(&shareCopy, "copy", false, "Copy the content to the clipboard")
	shareCmd.Flags().BoolVar(&shareOpen, "open", false, "Open the platform share link when there is one")
	shareCmd.Flags().BoolVar(&shareJSON, "json", false, "Print the delivery as JSON")

	if err := shareCmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}
	if err := shareCmd.MarkFlagRequired("style"); err != nil {
		panic(fmt.Sprintf("failed to mark style flag as required: %v", err))
	}

	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, _ []string) error {
	platform, err := sharing.ParsePlatform(sharePlatform)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap := shareSnapshot(sharePro, shareNoTags, shareNoLink)
	if !snap.IsPro && (shareNoTags || shareNoLink) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: hashtags and the link can only be removed on Pro; they are kept.")
	}

	d := sharing.Prepare(sharing.Request{
		Text:     shareText,
		Style:    styles.Style(shareStyle),
		Platform: platform,
	}, snap)

	if shareJSON {
		if err := writeJSON(out, d); err != nil {
			return err
		}
	} else {
		printer := observability.NewPrinter(out)
		printer.PrintEntitlement(snap)
		printer.PrintDelivery(d)
	}

	return deliver(out, d, shareCopy, shareOpen, clipboardImpl, openerImpl)
}

// shareSnapshot builds the entitlement implied by the command-line flags.
func shareSnapshot(pro, noTags, noLink bool) entitlement.Snapshot {
	snap := entitlement.DefaultSnapshot()
	snap.IsPro = pro
	snap.ShareTagsEnabled = !noTags
	snap.LpLinkEnabled = !noLink
	return snap
}

// deliver copies and/or opens prepared content as requested.
func deliver(w io.Writer, d sharing.Delivery, copyText, openURL bool, cb delivery.Clipboard, op delivery.Opener) error {
	if copyText {
		copied, err := cb.Copy(d.Content)
		if err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		if copied {
			_, _ = fmt.Fprintln(w, "Copied to clipboard.")
		} else {
			_, _ = fmt.Fprintln(w, "Clipboard is not available; copy the text above manually.")
		}
	}

	if openURL {
		if d.Method != sharing.MethodOpenURL {
			_, _ = fmt.Fprintf(w, "%s has no share link; paste the text into the app instead.\n", d.Platform)
			return nil
		}
		if err := op.Open(d.URL); err != nil {
			return fmt.Errorf("failed to open share link: %w", err)
		}
		_, _ = fmt.Fprintln(w, "Opened share link.")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
