package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fjacquet/subscan/internal/currencyutils"
	"fjacquet/subscan/internal/models"
)

// amountCandidate is one scored possible amount found on a line of text.
type amountCandidate struct {
	value    string
	currency string // empty when no currency was attached
	priority int    // higher wins
}

// Amounts on lines carrying one of these words are most likely the real
// price rather than a tax line or an item price.
var priorityKeywords = []string{
	"total", "charge", "amount", "payment", "price",
	"billed", "due", "subtotal", "cost", "fee",
	"合计", "总计", "金额", "价格", "费用", "支付",
}

const (
	keywordBonus  = 10
	currencyBonus = 5
)

// symbolPattern pairs a compiled symbol-prefixed amount regex with the
// currency code the symbol implies.
type symbolPattern struct {
	re   *regexp.Regexp
	code string
}

var (
	symbolPatterns = buildSymbolPatterns()

	// "9.99 USD" or "9,99eur": number then a known 3-letter code.
	codeAmountRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d{1,2})?)\s*(` + strings.Join(models.Currencies, "|") + `)`)

	// Bare decimal fallback, only trusted on priority-keyword lines.
	bareAmountRe = regexp.MustCompile(`(\d+[.,]\d{2})`)
)

func buildSymbolPatterns() []symbolPattern {
	patterns := make([]symbolPattern, 0, len(currencyutils.SymbolTable))
	for _, entry := range currencyutils.SymbolTable {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(entry.Symbol) + `\s*(\d+(?:[.,]\d{1,2})?)`)
		patterns = append(patterns, symbolPattern{re: re, code: entry.Code})
	}
	return patterns
}

// ExtractAmount finds the most plausible amount and currency in the text.
// Candidates are collected per line, scored (keyword-line bonus, attached
// currency bonus), and ranked by priority then numeric value. Either return
// value may be empty. Shared-symbol currencies are disambiguated from the
// surrounding text: ¥ becomes JPY near Japanese context, kr becomes NOK or
// DKK near Norwegian or Danish context.
func ExtractAmount(text string) (amount, currency string) {
	var candidates []amountCandidate

	for _, line := range strings.Split(text, "\n") {
		lowerLine := strings.ToLower(line)
		base := 0
		if containsAny(lowerLine, priorityKeywords) {
			base = keywordBonus
		}

		// Symbol-prefixed amounts. Multi-character symbols are tried before
		// the bare "$" (table order).
		for _, p := range symbolPatterns {
			if m := p.re.FindStringSubmatch(line); m != nil {
				candidates = append(candidates, amountCandidate{
					value:    currencyutils.NormalizeAmount(m[1]),
					currency: p.code,
					priority: base + currencyBonus,
				})
			}
		}

		// Trailing currency code: "9.99 USD".
		if m := codeAmountRe.FindStringSubmatch(line); m != nil {
			candidates = append(candidates, amountCandidate{
				value:    currencyutils.NormalizeAmount(m[1]),
				currency: strings.ToUpper(m[2]),
				priority: base + currencyBonus,
			})
		}

		// A bare decimal is only a candidate when the line looks like a
		// price line.
		if base > 0 {
			if m := bareAmountRe.FindStringSubmatch(line); m != nil {
				candidates = append(candidates, amountCandidate{
					value:    currencyutils.NormalizeAmount(m[1]),
					priority: base,
				})
			}
		}
	}

	if len(candidates) == 0 {
		return "", ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority > candidates[j].priority
		}
		return candidateValue(candidates[i]).GreaterThan(candidateValue(candidates[j]))
	})

	best := candidates[0]
	currency = disambiguateCurrency(best.currency, strings.ToLower(text))

	log.WithFields(logrus.Fields{
		"amount":     best.value,
		"currency":   currency,
		"candidates": len(candidates),
	}).Debug("Selected amount candidate")

	return best.value, currency
}

func candidateValue(c amountCandidate) decimal.Decimal {
	d, err := decimal.NewFromString(c.value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// disambiguateCurrency reassigns shared-symbol currencies using hints from
// the full text.
func disambiguateCurrency(currency, lowerText string) string {
	switch currency {
	case "CNY":
		if containsAny(lowerText, []string{"jpy", "japan", "日本", "円"}) {
			return "JPY"
		}
	case "SEK":
		if containsAny(lowerText, []string{"nok", "norway", "norsk"}) {
			return "NOK"
		}
		if containsAny(lowerText, []string{"dkk", "denmark", "dansk"}) {
			return "DKK"
		}
	}
	return currency
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
