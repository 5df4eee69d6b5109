package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/subscan/internal/dateutils"
)

// DateResult carries the dates the extractor could assign a role to.
type DateResult struct {
	Start    *time.Time
	TrialEnd *time.Time
}

// dateCandidate is a date found on one line, kept with its lowercased source
// line so role keywords can be matched against the context.
type dateCandidate struct {
	date    time.Time
	context string
}

// Role keyword tables. Trial beats start beats next-billing when a line
// matches more than one.
var (
	startKeywords = []string{"start", "billing", "billed", "began", "since", "开始", "生效"}
	trialKeywords = []string{"trial end", "trial expire", "free trial", "试用到期", "试用截止", "试用结束"}
	nextKeywords  = []string{"next billing", "next payment", "renewal", "renew", "下次扣款", "续费"}
)

const monthNames = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

// The date pattern cascade, tried in order; first match wins per line.
var (
	chineseDateRe = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	isoDateRe     = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	monthFirstRe  = regexp.MustCompile(`(?i)(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})`)
	dayFirstRe    = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\s+(\d{4})`)
	slashDateRe   = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

// Last-resort layouts for dates none of the regex patterns recognized.
var fallbackLayouts = []string{
	dateutils.DateLayoutISO,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	dateutils.DateLayoutWithMonth,
	"2006.01.02",
	"02.01.2006",
}

// ExtractDates scans every line of text for a calendar date and classifies
// each found date by the keywords on its line: trial-end, start, or
// next-billing (used as start when no start was found). When exactly one
// date was found and no keyword claimed it, it becomes the start date.
// Later matches of the same role overwrite earlier ones.
func ExtractDates(text, locale string) DateResult {
	var result DateResult
	var candidates []dateCandidate

	for _, line := range strings.Split(text, "\n") {
		if date, ok := extractDate(line, locale); ok {
			candidates = append(candidates, dateCandidate{date: date, context: strings.ToLower(line)})
		}
	}

	for _, c := range candidates {
		date := c.date
		switch {
		case containsAny(c.context, trialKeywords):
			result.TrialEnd = &date
		case containsAny(c.context, startKeywords):
			result.Start = &date
		case containsAny(c.context, nextKeywords):
			if result.Start == nil {
				result.Start = &date
			}
		}
	}

	if len(candidates) == 1 && result.Start == nil && result.TrialEnd == nil {
		result.Start = &candidates[0].date
	}

	return result
}

// extractDate runs the pattern cascade over one string.
func extractDate(text, locale string) (time.Time, bool) {
	// Chinese: 2025年1月15日
	if m := chineseDateRe.FindStringSubmatch(text); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	// ISO / slash: 2025-1-15 or 2025/1/15
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if mo >= 1 && mo <= 12 && d >= 1 && d <= 31 {
			return makeDate(y, mo, d)
		}
	}

	// English month first: January 15, 2025 / Jan 15th 2025
	if m := monthFirstRe.FindStringSubmatch(text); m != nil {
		if mo, ok := monthNumber(m[1]); ok {
			return makeDate(atoi(m[3]), mo, atoi(m[2]))
		}
	}

	// Day first: 15 January 2025
	if m := dayFirstRe.FindStringSubmatch(text); m != nil {
		if mo, ok := monthNumber(m[2]); ok {
			return makeDate(atoi(m[3]), mo, atoi(m[1]))
		}
	}

	// Ambiguous slash: MM/DD/YYYY vs DD/MM/YYYY.
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		a, b, y := atoi(m[1]), atoi(m[2]), atoi(m[3])
		switch {
		case a > 12 && b <= 12:
			return makeDate(y, b, a) // day first
		case b > 12 && a <= 12:
			return makeDate(y, a, b) // month first
		case a <= 12 && b <= 31:
			// Both plausible; fall back to the caller's locale preference.
			if localePrefersMonthFirst(locale) {
				return makeDate(y, a, b)
			}
			return makeDate(y, b, a)
		}
	}

	// Last resort: try whole-line parses against common natural layouts.
	cleaned := strings.TrimSpace(text)
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return dateutils.Truncate(t), true
		}
	}

	return time.Time{}, false
}

// localePrefersMonthFirst reports whether the locale writes dates
// month-first. The heuristic mirrors common US-style identifiers; all other
// locales are treated as day-first.
func localePrefersMonthFirst(locale string) bool {
	return strings.HasPrefix(locale, "en_US")
}

func makeDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || day < 1 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func monthNumber(name string) (int, bool) {
	months := map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
	lower := strings.ToLower(name)
	if len(lower) > 3 {
		lower = lower[:3]
	}
	n, ok := months[lower]
	return n, ok
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
