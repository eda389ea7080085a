package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available rephrase styles",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tHASHTAG\tDESCRIPTION")
	for _, e := range styles.All() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Hashtag, e.Description)
	}
	return tw.Flush()
}
