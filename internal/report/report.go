// Package report renders billing schedule summaries for stored
// subscriptions, including CSV export.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/subscan/internal/billing"
	"fjacquet/subscan/internal/dateutils"
	"fjacquet/subscan/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is one subscription's schedule summary as exported to CSV.
type Row struct {
	Name              string `csv:"name"`
	Category          string `csv:"category"`
	Status            string `csv:"status"`
	Cycle             string `csv:"cycle"`
	Amount            string `csv:"amount"`
	Currency          string `csv:"currency"`
	NextBillingDate   string `csv:"next_billing_date"`
	DaysUntilBilling  int    `csv:"days_until_billing"`
	MonthlyEquivalent string `csv:"monthly_equivalent"`
	TotalSpent        string `csv:"total_spent"`
}

// BuildRows computes the schedule summary for every subscription as of the
// given day.
func BuildRows(subs []models.Subscription, today time.Time) []Row {
	rows := make([]Row, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, Row{
			Name:              sub.Name,
			Category:          sub.Category,
			Status:            string(sub.Status),
			Cycle:             string(sub.Cycle),
			Amount:            sub.Amount.StringFixed(2),
			Currency:          sub.Currency,
			NextBillingDate:   dateutils.ToISODate(billing.NextBillingDate(sub, today)),
			DaysUntilBilling:  billing.DaysUntilBilling(sub, today),
			MonthlyEquivalent: billing.MonthlyEquivalent(sub).StringFixed(2),
			TotalSpent:        billing.TotalSpent(sub, today).StringFixed(2),
		})
	}
	return rows
}

// WriteCSV writes the schedule summary for the subscriptions to a CSV file.
func WriteCSV(subs []models.Subscription, today time.Time, path string) error {
	rows := BuildRows(subs, today)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionExport)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file_path": path,
		"count":     len(rows),
	}).Info("Wrote schedule summary CSV")

	return nil
}
