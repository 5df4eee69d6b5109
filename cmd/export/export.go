// Package export handles CSV export of schedule summaries
package export

import (
	"github.com/spf13/cobra"

	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/internal/report"
	"fjacquet/subscan/internal/store"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a schedule summary CSV for stored subscriptions",
	Long: `Write one CSV row per stored subscription with its next billing date,
days until due, monthly-equivalent cost, and total spent to date.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "subscriptions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	today, err := root.Today()
	if err != nil {
		return err
	}

	subs, err := store.NewSubscriptionStore(root.SharedFlags.File).Load()
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		root.Log.Info("No subscriptions stored yet, nothing to export")
		return nil
	}

	return report.WriteCSV(subs, today, outputFile)
}
