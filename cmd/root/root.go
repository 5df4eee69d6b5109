// Package root contains the root command for the application
package root

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/subscan/internal/config"
	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/extractor"
	"fjacquet/subscan/internal/report"
	"fjacquet/subscan/internal/store"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	File   string // subscriptions YAML store
	Locale string // drives ambiguous date resolution
	Today  string // override "today" (YYYY-MM-DD) for reproducible output
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "subscan",
		Short: "Parse subscription receipts and compute billing schedules.",
		Long: `subscan extracts structured subscription data from noisy OCR text
(receipts and billing screenshots, English or Chinese) and computes recurring
billing schedules: next due date, per-month projection, cumulative spend, and
normalized monthly cost.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to subscan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			Cfg = config.GetConfig()

			extractor.SetLogger(Log)
			store.SetLogger(Log)
			report.SetLogger(Log)

			if SharedFlags.Locale == "" {
				SharedFlags.Locale = Cfg.Locale
			}
			if SharedFlags.File == "" {
				SharedFlags.File = Cfg.Data.File
			}
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Subscriptions YAML file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Locale, "locale", "l", "", "Locale for ambiguous date parsing (e.g. en_US)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Today, "today", "", "Override today's date (YYYY-MM-DD)")
}

// Today resolves the effective "today": the --today override when given,
// otherwise the current date, truncated to day granularity.
func Today() (time.Time, error) {
	if SharedFlags.Today == "" {
		return dateutils.Truncate(time.Now()), nil
	}
	t, err := time.Parse(dateutils.DateLayoutISO, SharedFlags.Today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today value '%s': %w", SharedFlags.Today, err)
	}
	return dateutils.Truncate(t), nil
}
