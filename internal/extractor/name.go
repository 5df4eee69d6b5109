package extractor

import (
	"strconv"
	"strings"
)

// Lines carrying these generic receipt words are never a service name.
var nameSkipWords = []string{
	"receipt", "invoice", "order", "payment", "confirmation",
	"thank you", "thanks", "dear", "hello", "hi ",
	"total", "subtotal", "tax", "收据", "发票", "订单", "确认",
}

const (
	nameScanLines = 5
	nameMaxLength = 40
)

// InferName picks the most prominent line of text as the service name when
// no known service matched. It scans the first few non-empty lines, skipping
// anything that looks like a sentence, a price, a generic receipt word, or a
// bare number. Returns false when every scanned line was skipped.
func InferName(text string) (string, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		if len([]rune(line)) > nameMaxLength {
			continue
		}
		if strings.ContainsAny(line, "$€£¥") {
			continue
		}
		if containsAny(strings.ToLower(line), nameSkipWords) {
			continue
		}
		if _, err := strconv.ParseFloat(line, 64); err == nil {
			continue
		}
		return line, true
	}
	return "", false
}
