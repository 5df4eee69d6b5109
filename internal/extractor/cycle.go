package extractor

import (
	"strings"

	"fjacquet/subscan/internal/models"
)

// cycleRule maps a set of synonyms to a billing cycle. Rules are evaluated
// in table order, not match position: a text mentioning both "weekly pass"
// and "billed monthly" classifies as weekly.
type cycleRule struct {
	keywords []string
	cycle    models.CycleKind
}

var cycleRules = []cycleRule{
	{[]string{"weekly", "per week", "/wk", "/week", "every week", "每周"}, models.CycleWeekly},
	{[]string{"monthly", "per month", "/mo", "/month", "every month", "each month", "每月", "月度", "包月"}, models.CycleMonthly},
	{[]string{"quarterly", "every 3 months", "per quarter", "/qtr", "每季", "季度"}, models.CycleQuarterly},
	{[]string{"yearly", "annual", "per year", "/yr", "/year", "annually", "every year", "年度", "包年", "每年"}, models.CycleYearly},
	{[]string{"one-time", "one time", "lifetime", "once", "一次性", "终身", "买断"}, models.CycleOneTime},
}

// ClassifyCycle finds the billing cycle mentioned in the text.
// Returns false when no cycle keyword appears.
func ClassifyCycle(text string) (models.CycleKind, bool) {
	lower := strings.ToLower(text)
	for _, rule := range cycleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.cycle, true
			}
		}
	}
	return "", false
}
