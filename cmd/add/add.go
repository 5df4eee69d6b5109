// Package add handles the add subscription command
package add

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/subscan/cmd/common"
	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/internal/currencyutils"
	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/logging"
	"fjacquet/subscan/internal/models"
	"fjacquet/subscan/internal/store"
)

var (
	name       string
	url        string
	amount     string
	currency   string
	cycle      string
	billingDay int
	startDate  string
	trialEnd   string
	category   string
	status     string
	notes      string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subscription to the store",
	Long: `Add a subscription record to the YAML store. Only --name and --amount
are required; currency, cycle, status and category fall back to sensible
defaults, and the billing day defaults to the start date's day of month.`,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Service name (required)")
	Cmd.Flags().StringVar(&url, "url", "", "Service URL")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount per billing cycle (required)")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "ISO currency code (default USD)")
	Cmd.Flags().StringVar(&cycle, "cycle", "", "Billing cycle: monthly, yearly, weekly, quarterly, one-time")
	Cmd.Flags().IntVar(&billingDay, "billing-day", 0, "Day of month the subscription bills (default: start date's day)")
	Cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date (YYYY-MM-DD, default today)")
	Cmd.Flags().StringVar(&trialEnd, "trial-end", "", "Trial end date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&category, "category", "", "Category (default Other)")
	Cmd.Flags().StringVar(&status, "status", "", "Status: active, paused, cancelled, trial")
	Cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
}

func addFunc(cmd *cobra.Command, args []string) error {
	form, err := buildForm()
	if err != nil {
		return err
	}

	s := store.NewSubscriptionStore(root.SharedFlags.File)
	sub, err := common.AddSubscription(s, form, logging.NewLogrusAdapterFromLogger(root.Log))
	if err != nil {
		return err
	}

	fmt.Printf("Added %s  %s%s  next billing day %d\n",
		sub.Name,
		currencyutils.FormatAmount(sub.Amount, sub.Currency),
		sub.Cycle.ShortLabel(),
		sub.BillingDay)
	return nil
}

func buildForm() (models.SubscriptionForm, error) {
	var form models.SubscriptionForm

	if cycle != "" && !models.CycleKind(cycle).IsValid() {
		return form, fmt.Errorf("invalid --cycle value '%s'", cycle)
	}
	if currency != "" {
		if !currencyutils.IsKnownCode(currency) {
			return form, fmt.Errorf("unsupported --currency value '%s'", currency)
		}
		currency = strings.ToUpper(currency)
	}

	start, err := root.Today()
	if err != nil {
		return form, err
	}
	if startDate != "" {
		start, err = time.Parse(dateutils.DateLayoutISO, startDate)
		if err != nil {
			return form, fmt.Errorf("invalid --start value '%s': %w", startDate, err)
		}
		start = dateutils.Truncate(start)
	}

	var trialEndDate *time.Time
	if trialEnd != "" {
		t, err := time.Parse(dateutils.DateLayoutISO, trialEnd)
		if err != nil {
			return form, fmt.Errorf("invalid --trial-end value '%s': %w", trialEnd, err)
		}
		t = dateutils.Truncate(t)
		trialEndDate = &t
	}

	return models.SubscriptionForm{
		Name:         name,
		URL:          url,
		Amount:       amount,
		Currency:     currency,
		Cycle:        models.CycleKind(cycle),
		BillingDay:   billingDay,
		StartDate:    start,
		TrialEndDate: trialEndDate,
		Category:     category,
		Status:       models.SubscriptionStatus(status),
		Notes:        notes,
	}, nil
}
