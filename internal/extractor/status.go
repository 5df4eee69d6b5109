package extractor

import (
	"strings"

	"fjacquet/subscan/internal/models"
)

// ClassifyStatus derives the subscription status from the text.
// Priority: trial > cancelled > paused > active. Always returns one of the
// four; active is the default when nothing else matches.
func ClassifyStatus(text string) models.SubscriptionStatus {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "trial") || strings.Contains(lower, "试用") {
		return models.StatusTrial
	}
	if strings.Contains(lower, "cancel") || strings.Contains(lower, "已取消") || strings.Contains(lower, "取消") {
		return models.StatusCancelled
	}
	if strings.Contains(lower, "pause") || strings.Contains(lower, "暂停") {
		return models.StatusPaused
	}
	return models.StatusActive
}
