// Package schedule handles the billing schedule commands
package schedule

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/internal/billing"
	"fjacquet/subscan/internal/currencyutils"
	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/models"
	"fjacquet/subscan/internal/store"
)

var (
	month    string
	leadDays int
)

// Cmd represents the schedule command
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show upcoming billing dates for stored subscriptions",
	Long: `Compute the billing schedule for every subscription in the store:
next billing date, days until due, monthly-equivalent cost, and either the
upcoming renewals within the reminder window or the projection for one
calendar month (--month YYYY-MM).`,
	RunE: scheduleFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Project billing dates for a calendar month (YYYY-MM)")
	Cmd.Flags().IntVarP(&leadDays, "days", "d", 0, "Upcoming-renewal window in days (default from config)")
}

func scheduleFunc(cmd *cobra.Command, args []string) error {
	today, err := root.Today()
	if err != nil {
		return err
	}

	subs, err := store.NewSubscriptionStore(root.SharedFlags.File).Load()
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		root.Log.Info("No subscriptions stored yet")
		return nil
	}

	if month != "" {
		return printMonthProjection(subs, month)
	}
	return printUpcoming(subs, today)
}

// printMonthProjection lists every billing event inside one calendar month.
func printMonthProjection(subs []models.Subscription, month string) error {
	target, err := time.Parse(dateutils.DateLayoutMonth, month)
	if err != nil {
		return fmt.Errorf("invalid --month value '%s': %w", month, err)
	}
	year, m := target.Year(), target.Month()

	fmt.Printf("Billing events in %s:\n", month)
	count := 0
	for _, sub := range subs {
		if sub.Cycle == models.CycleWeekly {
			for _, date := range billing.WeeklyBillingDatesInMonth(sub, year, m) {
				printEvent(sub, date)
				count++
			}
			continue
		}
		if date, ok := billing.BillingDateInMonth(sub, year, m); ok {
			printEvent(sub, date)
			count++
		}
	}
	if count == 0 {
		fmt.Println("  (none)")
	}
	return nil
}

// printUpcoming lists renewals inside the reminder window plus the
// per-currency monthly totals.
func printUpcoming(subs []models.Subscription, today time.Time) error {
	days := leadDays
	if days <= 0 {
		days = root.Cfg.Reminders.LeadDays
	}

	renewals := billing.UpcomingRenewals(subs, today, days)
	fmt.Printf("Renewals in the next %d days:\n", days)
	if len(renewals) == 0 {
		fmt.Println("  (none)")
	}
	for _, r := range renewals {
		fmt.Printf("  %s  %-24s %s (%d days)\n",
			dateutils.ToISODate(r.Date),
			r.Subscription.Name,
			currencyutils.FormatAmount(r.Subscription.Amount, r.Subscription.Currency),
			r.DaysUntil)
	}

	fmt.Println("\nMonthly total:")
	for _, total := range billing.MonthlyTotal(subs) {
		fmt.Printf("  %s\n", currencyutils.FormatAmount(total.Amount, total.Currency))
	}
	return nil
}

func printEvent(sub models.Subscription, date time.Time) {
	fmt.Printf("  %s  %-24s %s%s\n",
		dateutils.ToISODate(date),
		sub.Name,
		currencyutils.FormatAmount(sub.Amount, sub.Currency),
		sub.Cycle.ShortLabel())
}
