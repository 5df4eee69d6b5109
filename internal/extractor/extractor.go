// Package extractor turns noisy OCR text (receipts, billing screenshots,
// possibly bilingual English/Chinese) into a sparse ParsedSubscription.
// Extraction is best-effort: every sub-extractor returns absence instead of
// failing, and the result is only a pre-fill for a user-editable form.
package extractor

import (
	"context"

	"github.com/sirupsen/logrus"

	"fjacquet/subscan/internal/catalog"
	"fjacquet/subscan/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse runs the full extraction pipeline over one text blob. The locale
// only influences ambiguous slash-date resolution (MM/DD vs DD/MM).
//
// Merge order:
//  1. known-service match seeds name, url, category and default cycle
//  2. amount/currency always overwrite, even when empty
//  3. an explicit cycle keyword overrides the known-service default
//  4. dates only set the roles that were actually found
//  5. status is only set when it is not the "active" default
//  6. name falls back to the most prominent text line
//  7. category falls back to keyword inference
func Parse(text, locale string) models.ParsedSubscription {
	var result models.ParsedSubscription

	if service, ok := catalog.Match(text); ok {
		result.Name = service.DisplayName()
		result.URL = service.Domain
		result.Category = service.Category
		result.Cycle = service.DefaultCycle
		log.WithFields(logrus.Fields{
			"service": result.Name,
			"domain":  service.Domain,
		}).Debug("Matched known service")
	}

	result.Amount, result.Currency = ExtractAmount(text)

	if cycle, ok := ClassifyCycle(text); ok {
		result.Cycle = cycle
	}

	dates := ExtractDates(text, locale)
	if dates.Start != nil {
		result.StartDate = dates.Start
	}
	if dates.TrialEnd != nil {
		result.TrialEndDate = dates.TrialEnd
	}

	// "active" means the classifier had no opinion; leave the field unset so
	// the caller's own default stands.
	if status := ClassifyStatus(text); status != models.StatusActive {
		result.Status = status
	}

	if result.Name == "" {
		if name, ok := InferName(text); ok {
			result.Name = name
		}
	}

	if result.Category == "" {
		if category, ok := InferCategory(text); ok {
			result.Category = category
		}
	}

	return result
}

// Extractor wraps Parse with an optional AI-backed category fallback for
// texts where keyword inference finds nothing.
type Extractor struct {
	locale string
	ai     AIClient
}

// New creates an Extractor for the given locale.
func New(locale string) *Extractor {
	return &Extractor{locale: locale}
}

// WithAIClient attaches an AI category fallback and returns the extractor.
func (e *Extractor) WithAIClient(client AIClient) *Extractor {
	e.ai = client
	return e
}

// Parse runs the heuristic pipeline and, when the category is still unknown
// and an AI client is configured, asks it for a category suggestion. AI
// failures are logged and ignored; the heuristic result always stands.
func (e *Extractor) Parse(ctx context.Context, text string) models.ParsedSubscription {
	result := Parse(text, e.locale)

	if result.Category == "" && e.ai != nil {
		category, err := e.ai.SuggestCategory(ctx, result.Name, text)
		if err != nil {
			log.WithError(err).Warn("AI category suggestion failed")
		} else if category != "" {
			result.Category = category
		}
	}

	return result
}
