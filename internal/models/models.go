// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CycleKind classifies how often a subscription bills.
type CycleKind string

const (
	CycleMonthly   CycleKind = "monthly"
	CycleYearly    CycleKind = "yearly"
	CycleWeekly    CycleKind = "weekly"
	CycleQuarterly CycleKind = "quarterly"
	CycleOneTime   CycleKind = "one-time"
)

// AllCycles lists every billing cycle in display order.
var AllCycles = []CycleKind{CycleMonthly, CycleYearly, CycleWeekly, CycleQuarterly, CycleOneTime}

// Label returns the human-readable form of the cycle ("Monthly", "One-time", ...).
func (c CycleKind) Label() string {
	switch c {
	case CycleMonthly:
		return "Monthly"
	case CycleYearly:
		return "Yearly"
	case CycleWeekly:
		return "Weekly"
	case CycleQuarterly:
		return "Quarterly"
	case CycleOneTime:
		return "One-time"
	default:
		return string(c)
	}
}

// ShortLabel returns the compact suffix form of the cycle ("/mo", "/yr", ...).
func (c CycleKind) ShortLabel() string {
	switch c {
	case CycleMonthly:
		return "/mo"
	case CycleYearly:
		return "/yr"
	case CycleWeekly:
		return "/wk"
	case CycleQuarterly:
		return "/qtr"
	default:
		return ""
	}
}

// IsValid reports whether c is one of the known cycle kinds.
func (c CycleKind) IsValid() bool {
	for _, k := range AllCycles {
		if c == k {
			return true
		}
	}
	return false
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusTrial     SubscriptionStatus = "trial"
)

// Label returns the capitalized display form of the status.
func (s SubscriptionStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

// Subscription is a fully-formed subscription record as stored on disk.
// BillingDay is only meaningful for monthly/yearly/quarterly cycles and is
// clamped to the length of whatever month it is projected into.
type Subscription struct {
	Name         string             `yaml:"name" json:"name"`
	URL          string             `yaml:"url,omitempty" json:"url,omitempty"`
	Amount       decimal.Decimal    `yaml:"amount" json:"amount"`
	Currency     string             `yaml:"currency" json:"currency"`
	Cycle        CycleKind          `yaml:"cycle" json:"cycle"`
	BillingDay   int                `yaml:"billing_day" json:"billingDay"`
	StartDate    time.Time          `yaml:"start_date" json:"startDate"`
	TrialEndDate *time.Time         `yaml:"trial_end_date,omitempty" json:"trialEndDate,omitempty"`
	Category     string             `yaml:"category" json:"category"`
	Status       SubscriptionStatus `yaml:"status" json:"status"`
	Notes        string             `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ParsedSubscription is the sparse output of the OCR text extractor.
// Every field is optional; absence means "not detected". The caller merges
// the detected fields into an editable form and validates before persisting.
type ParsedSubscription struct {
	Name         string             `yaml:"name,omitempty" json:"name,omitempty"`
	URL          string             `yaml:"url,omitempty" json:"url,omitempty"`
	Amount       string             `yaml:"amount,omitempty" json:"amount,omitempty"`
	Currency     string             `yaml:"currency,omitempty" json:"currency,omitempty"`
	Cycle        CycleKind          `yaml:"cycle,omitempty" json:"cycle,omitempty"`
	StartDate    *time.Time         `yaml:"start_date,omitempty" json:"startDate,omitempty"`
	TrialEndDate *time.Time         `yaml:"trial_end_date,omitempty" json:"trialEndDate,omitempty"`
	Category     string             `yaml:"category,omitempty" json:"category,omitempty"`
	Status       SubscriptionStatus `yaml:"status,omitempty" json:"status,omitempty"`
}

// IsEmpty reports whether the extractor detected nothing at all.
func (p ParsedSubscription) IsEmpty() bool {
	return p.Name == "" && p.URL == "" && p.Amount == "" && p.Currency == "" &&
		p.Cycle == "" && p.StartDate == nil && p.TrialEndDate == nil &&
		p.Category == "" && p.Status == ""
}

// SubscriptionForm holds user-editable, not-yet-validated subscription data,
// typically pre-filled from a ParsedSubscription.
type SubscriptionForm struct {
	Name         string
	URL          string
	Amount       string
	Currency     string
	Cycle        CycleKind
	BillingDay   int
	StartDate    time.Time
	TrialEndDate *time.Time
	Category     string
	Status       SubscriptionStatus
	Notes        string
}

// ParsedAmount returns the form amount as a decimal, or false when the text
// is not a valid number.
func (f SubscriptionForm) ParsedAmount() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Validate checks the minimum requirements for persisting the form: a
// non-empty name and a positive amount.
func (f SubscriptionForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrMissingName
	}
	amount, ok := f.ParsedAmount()
	if !ok || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Subscription converts a validated form into a Subscription record.
// Call Validate first; a zero Subscription is returned alongside the error
// otherwise.
func (f SubscriptionForm) Subscription() (Subscription, error) {
	if err := f.Validate(); err != nil {
		return Subscription{}, err
	}
	amount, _ := f.ParsedAmount()

	currency := f.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	cycle := f.Cycle
	if cycle == "" {
		cycle = CycleMonthly
	}
	status := f.Status
	if status == "" {
		status = StatusActive
	}
	category := f.Category
	if category == "" {
		category = CategoryOther
	}
	billingDay := f.BillingDay
	if billingDay < 1 || billingDay > 31 {
		billingDay = f.StartDate.Day()
	}

	return Subscription{
		Name:         strings.TrimSpace(f.Name),
		URL:          f.URL,
		Amount:       amount,
		Currency:     currency,
		Cycle:        cycle,
		BillingDay:   billingDay,
		StartDate:    f.StartDate,
		TrialEndDate: f.TrialEndDate,
		Category:     category,
		Status:       status,
		Notes:        f.Notes,
	}, nil
}
