// Package billing computes recurring billing schedules for subscription
// records. Every function is a pure function of the subscription and an
// explicit "today"; nothing reads the wall clock, so results are
// deterministic and safe to call concurrently.
//
// Calendar conventions: weeks start on Monday, all dates are truncated to
// day granularity before comparison, and the billing day is clamped to the
// length of whatever month it is projected into (a billing day of 31 bills
// on February 28).
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/models"
)

// Weekly cost normalization factor: average weeks per month.
var weeksPerMonth = decimal.NewFromFloat(4.33)

const hoursPerDay = 24

// advanceOneCycle moves a billing anchor forward by one cycle. Month-based
// cycles re-anchor on the clamped billing day; weekly moves exactly seven
// days; one-time never advances.
func advanceOneCycle(date time.Time, cycle models.CycleKind, billingDay int) time.Time {
	switch cycle {
	case models.CycleMonthly:
		return dateutils.AddMonthsClamped(date, 1, billingDay)
	case models.CycleYearly:
		return dateutils.AddMonthsClamped(date, 12, billingDay)
	case models.CycleQuarterly:
		return dateutils.AddMonthsClamped(date, 3, billingDay)
	case models.CycleWeekly:
		return date.AddDate(0, 0, 7)
	default: // one-time
		return date
	}
}

// NextBillingDate returns the next billing date on or after today.
// For one-time subscriptions the (possibly past) anchor date is returned
// unchanged.
func NextBillingDate(sub models.Subscription, today time.Time) time.Time {
	today = dateutils.Truncate(today)
	start := dateutils.Truncate(sub.StartDate)

	next := start
	if sub.Cycle != models.CycleWeekly {
		next = dateutils.ClampDay(start, sub.BillingDay)
	}

	if sub.Cycle == models.CycleOneTime {
		return next
	}

	// Every recurring cycle strictly advances, so this terminates.
	for next.Before(today) {
		next = advanceOneCycle(next, sub.Cycle, sub.BillingDay)
	}
	return next
}

// BillingDateInMonth projects whether and when the subscription bills in the
// given month. Weekly subscriptions always return false here; use
// WeeklyBillingDatesInMonth for those.
func BillingDateInMonth(sub models.Subscription, year int, month time.Month) (time.Time, bool) {
	start := dateutils.Truncate(sub.StartDate)

	if sub.Cycle == models.CycleOneTime {
		if start.Year() == year && start.Month() == month {
			return start, true
		}
		return time.Time{}, false
	}

	if sub.Cycle == models.CycleWeekly {
		return time.Time{}, false
	}

	day := sub.BillingDay
	if max := dateutils.DaysInMonth(year, month); day > max {
		day = max
	}
	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// A subscription cannot bill before it began.
	if candidate.Before(start) {
		return time.Time{}, false
	}

	switch sub.Cycle {
	case models.CycleYearly:
		// Fires only in the anniversary month.
		if start.Month() != month {
			return time.Time{}, false
		}
	case models.CycleQuarterly:
		monthDiff := (year-start.Year())*12 + int(month) - int(start.Month())
		if monthDiff < 0 || monthDiff%3 != 0 {
			return time.Time{}, false
		}
	}

	return candidate, true
}

// WeeklyBillingDatesInMonth enumerates every weekly occurrence falling in
// the given month, in order. Returns nil for non-weekly subscriptions.
func WeeklyBillingDatesInMonth(sub models.Subscription, year int, month time.Month) []time.Time {
	if sub.Cycle != models.CycleWeekly {
		return nil
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	current := dateutils.Truncate(sub.StartDate)
	for current.Before(monthStart) {
		current = current.AddDate(0, 0, 7)
	}

	var dates []time.Time
	for dateutils.SameMonth(current, monthStart) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 7)
	}
	return dates
}

// TotalSpent returns the cumulative amount billed from the start date until
// today: the full amount for one-time subscriptions, otherwise the number of
// complete elapsed cycles times the amount. A future start date costs zero.
func TotalSpent(sub models.Subscription, today time.Time) decimal.Decimal {
	today = dateutils.Truncate(today)
	start := dateutils.Truncate(sub.StartDate)

	if today.Before(start) {
		return decimal.Zero
	}
	if sub.Cycle == models.CycleOneTime {
		return sub.Amount
	}

	var cycles int
	switch sub.Cycle {
	case models.CycleWeekly:
		cycles = dateutils.WeeksBetween(start, today)
	case models.CycleMonthly:
		cycles = dateutils.MonthsBetween(start, today)
	case models.CycleQuarterly:
		cycles = dateutils.MonthsBetween(start, today) / 3
	case models.CycleYearly:
		cycles = dateutils.YearsBetween(start, today)
	}
	if cycles < 0 {
		cycles = 0
	}

	return sub.Amount.Mul(decimal.NewFromInt(int64(cycles)))
}

// DaysUntilBilling returns the number of days from today to the next billing
// date. Non-negative for recurring cycles; a one-time subscription whose
// date already passed yields a negative count.
func DaysUntilBilling(sub models.Subscription, today time.Time) int {
	next := NextBillingDate(sub, today)
	today = dateutils.Truncate(today)
	diff := next.Sub(today).Hours() / hoursPerDay
	days := int(diff)
	if diff > float64(days) {
		days++ // ceiling
	}
	return days
}

// MonthlyEquivalent normalizes the subscription cost to a per-month basis
// for cross-subscription comparison. One-time purchases contribute nothing
// to a monthly budget.
func MonthlyEquivalent(sub models.Subscription) decimal.Decimal {
	switch sub.Cycle {
	case models.CycleYearly:
		return sub.Amount.Div(decimal.NewFromInt(12))
	case models.CycleWeekly:
		return sub.Amount.Mul(weeksPerMonth)
	case models.CycleQuarterly:
		return sub.Amount.Div(decimal.NewFromInt(3))
	case models.CycleOneTime:
		return decimal.Zero
	default:
		return sub.Amount
	}
}
