package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCycleKindLabel(t *testing.T) {
	tests := []struct {
		cycle    CycleKind
		expected string
	}{
		{CycleMonthly, "Monthly"},
		{CycleYearly, "Yearly"},
		{CycleWeekly, "Weekly"},
		{CycleQuarterly, "Quarterly"},
		{CycleOneTime, "One-time"},
		{CycleKind("bogus"), "bogus"},
	}

	for _, tc := range tests {
		t.Run(string(tc.cycle), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cycle.Label())
		})
	}
}

func TestCycleKindShortLabel(t *testing.T) {
	assert.Equal(t, "/mo", CycleMonthly.ShortLabel())
	assert.Equal(t, "/yr", CycleYearly.ShortLabel())
	assert.Equal(t, "/wk", CycleWeekly.ShortLabel())
	assert.Equal(t, "/qtr", CycleQuarterly.ShortLabel())
	assert.Equal(t, "", CycleOneTime.ShortLabel())
}

func TestCycleKindIsValid(t *testing.T) {
	for _, cycle := range AllCycles {
		assert.True(t, cycle.IsValid(), "cycle %s", cycle)
	}
	assert.False(t, CycleKind("fortnightly").IsValid())
	assert.False(t, CycleKind("").IsValid())
}

func TestSubscriptionStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusActive.Label())
	assert.Equal(t, "Paused", StatusPaused.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Equal(t, "Trial", StatusTrial.Label())
	assert.Equal(t, "", SubscriptionStatus("").Label())
}

func TestParsedSubscriptionIsEmpty(t *testing.T) {
	assert.True(t, ParsedSubscription{}.IsEmpty())
	assert.False(t, ParsedSubscription{Name: "Netflix"}.IsEmpty())
	assert.False(t, ParsedSubscription{Amount: "9.99"}.IsEmpty())

	now := time.Now()
	assert.False(t, ParsedSubscription{StartDate: &now}.IsEmpty())
}

func TestSubscriptionFormParsedAmount(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		expected   string
		expectedOk bool
	}{
		{"Simple", "9.99", "9.99", true},
		{"Whitespace", " 12 ", "12", true},
		{"Empty", "", "", false},
		{"Garbage", "free", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := SubscriptionForm{Amount: tc.amount}.ParsedAmount()
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expected, d.String())
			}
		})
	}
}

func TestSubscriptionFormValidate(t *testing.T) {
	tests := []struct {
		name        string
		form        SubscriptionForm
		expectedErr error
	}{
		{"Valid", SubscriptionForm{Name: "Netflix", Amount: "9.99"}, nil},
		{"Missing name", SubscriptionForm{Amount: "9.99"}, ErrMissingName},
		{"Whitespace name", SubscriptionForm{Name: "   ", Amount: "9.99"}, ErrMissingName},
		{"Unparseable amount", SubscriptionForm{Name: "Netflix", Amount: "abc"}, ErrInvalidAmount},
		{"Zero amount", SubscriptionForm{Name: "Netflix", Amount: "0"}, ErrInvalidAmount},
		{"Negative amount", SubscriptionForm{Name: "Netflix", Amount: "-5"}, ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestSubscriptionFormSubscription(t *testing.T) {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Defaults fill empty fields", func(t *testing.T) {
		sub, err := SubscriptionForm{
			Name:      "  Netflix  ",
			Amount:    "15.49",
			StartDate: start,
		}.Subscription()

		assert.NoError(t, err)
		assert.Equal(t, "Netflix", sub.Name)
		assert.True(t, sub.Amount.Equal(decimal.NewFromFloat(15.49)))
		assert.Equal(t, DefaultCurrency, sub.Currency)
		assert.Equal(t, CycleMonthly, sub.Cycle)
		assert.Equal(t, StatusActive, sub.Status)
		assert.Equal(t, CategoryOther, sub.Category)
		assert.Equal(t, 15, sub.BillingDay, "billing day defaults to the start date's day")
	})

	t.Run("Explicit fields are kept", func(t *testing.T) {
		sub, err := SubscriptionForm{
			Name:       "Tidal",
			Amount:     "10.99",
			Currency:   "EUR",
			Cycle:      CycleYearly,
			BillingDay: 28,
			StartDate:  start,
			Category:   CategoryMusic,
			Status:     StatusTrial,
			Notes:      "family plan",
		}.Subscription()

		assert.NoError(t, err)
		assert.Equal(t, "EUR", sub.Currency)
		assert.Equal(t, CycleYearly, sub.Cycle)
		assert.Equal(t, 28, sub.BillingDay)
		assert.Equal(t, CategoryMusic, sub.Category)
		assert.Equal(t, StatusTrial, sub.Status)
		assert.Equal(t, "family plan", sub.Notes)
	})

	t.Run("Out-of-range billing day falls back to the start day", func(t *testing.T) {
		sub, err := SubscriptionForm{
			Name:       "Netflix",
			Amount:     "15.49",
			BillingDay: 42,
			StartDate:  start,
		}.Subscription()

		assert.NoError(t, err)
		assert.Equal(t, 15, sub.BillingDay)
	})

	t.Run("Invalid form returns the validation error", func(t *testing.T) {
		_, err := SubscriptionForm{Amount: "9.99"}.Subscription()
		assert.ErrorIs(t, err, ErrMissingName)
	})
}
