package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		locale     string
		expectedOk bool
		expected   time.Time
	}{
		{
			"Chinese date",
			"2025年1月15日", "zh_CN",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"ISO date",
			"Start date: 2025-01-15", "en_US",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"ISO date with slashes",
			"2025/1/5", "en_US",
			true, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			"Month name first",
			"January 15, 2025", "en_US",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"Month name with ordinal",
			"Renews Jan 3rd, 2025", "en_US",
			true, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"Day before month name",
			"15 January 2025", "en_GB",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"Unambiguous slash date is day-first regardless of locale",
			"15/01/2025", "en_US",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"Unambiguous slash date month-first",
			"01/15/2025", "fr_FR",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"Ambiguous slash date in a US locale",
			"03/04/2025", "en_US",
			true, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			"Ambiguous slash date elsewhere",
			"03/04/2025", "en_GB",
			true, time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"Dotted fallback layout",
			"2025.01.15", "en_US",
			true, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"No date at all",
			"Thank you for subscribing", "en_US",
			false, time.Time{},
		},
		{
			"Invalid month rejected",
			"2025-13-40", "en_US",
			false, time.Time{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := extractDate(tc.text, tc.locale)
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expected, date)
			}
		})
	}
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		expectedStart    *time.Time
		expectedTrialEnd *time.Time
	}{
		{
			"Explicit start keyword",
			"Billing started 2025-01-15",
			ptrDate(2025, time.January, 15), nil,
		},
		{
			"Trial end keyword",
			"Your free trial ends 2025-01-20",
			nil, ptrDate(2025, time.January, 20),
		},
		{
			"Start and trial on separate lines",
			"Start date: 2025-01-01\nFree trial ends 2025-01-15",
			ptrDate(2025, time.January, 1), ptrDate(2025, time.January, 15),
		},
		{
			"Renewal date stands in for a missing start",
			"Renewal date: 2025-02-10",
			ptrDate(2025, time.February, 10), nil,
		},
		{
			"Single unlabeled date becomes the start",
			"Receipt\n2025-03-01\nThanks!",
			ptrDate(2025, time.March, 1), nil,
		},
		{
			"Two unlabeled dates assign nothing",
			"2025-03-01\n2025-04-01",
			nil, nil,
		},
		{
			"Later start line overwrites an earlier one",
			"Billing started 2025-01-15\nBilling started 2025-02-15",
			ptrDate(2025, time.February, 15), nil,
		},
		{
			"Chinese trial keyword",
			"试用到期：2025年1月20日",
			nil, ptrDate(2025, time.January, 20),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ExtractDates(tc.text, "en_US")
			assert.Equal(t, tc.expectedStart, result.Start)
			assert.Equal(t, tc.expectedTrialEnd, result.TrialEnd)
		})
	}
}

func TestLocalePrefersMonthFirst(t *testing.T) {
	assert.True(t, localePrefersMonthFirst("en_US"))
	assert.True(t, localePrefersMonthFirst("en_US.UTF-8"))
	assert.False(t, localePrefersMonthFirst("en_GB"))
	assert.False(t, localePrefersMonthFirst("fr_FR"))
	assert.False(t, localePrefersMonthFirst(""))
}
