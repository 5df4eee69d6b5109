package billing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/models"
)

// MonthlyTotal sums the monthly-equivalent cost of the given subscriptions,
// grouped by currency and sorted by currency code. Cancelled subscriptions
// are excluded; paused and trial ones still count toward the projected
// budget.
func MonthlyTotal(subs []models.Subscription) []models.Money {
	totals := make(map[string]decimal.Decimal)
	for _, sub := range subs {
		if sub.Status == models.StatusCancelled {
			continue
		}
		totals[sub.Currency] = totals[sub.Currency].Add(MonthlyEquivalent(sub))
	}

	result := make([]models.Money, 0, len(totals))
	for currency, total := range totals {
		result = append(result, models.NewMoney(total, currency))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Currency < result[j].Currency
	})
	return result
}

// Renewal is one upcoming billing event.
type Renewal struct {
	Subscription models.Subscription
	Date         time.Time
	DaysUntil    int
}

// UpcomingRenewals lists the subscriptions that bill within the next `days`
// days, soonest first. One-time subscriptions whose date already passed are
// excluded. This feeds reminder scheduling.
func UpcomingRenewals(subs []models.Subscription, today time.Time, days int) []Renewal {
	today = dateutils.Truncate(today)

	var renewals []Renewal
	for _, sub := range subs {
		if sub.Status == models.StatusCancelled {
			continue
		}
		until := DaysUntilBilling(sub, today)
		if until < 0 || until > days {
			continue
		}
		renewals = append(renewals, Renewal{
			Subscription: sub,
			Date:         NextBillingDate(sub, today),
			DaysUntil:    until,
		})
	}

	sort.SliceStable(renewals, func(i, j int) bool {
		return renewals[i].DaysUntil < renewals[j].DaysUntil
	})
	return renewals
}
