package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/subscan/internal/models"
)

func sampleSubscriptions() []models.Subscription {
	trialEnd := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	return []models.Subscription{
		{
			Name:       "Netflix",
			URL:        "netflix.com",
			Amount:     decimal.NewFromFloat(15.49),
			Currency:   "USD",
			Cycle:      models.CycleMonthly,
			BillingDay: 15,
			StartDate:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			Category:   models.CategoryStreaming,
			Status:     models.StatusActive,
		},
		{
			Name:         "Spotify",
			Amount:       decimal.NewFromFloat(9.99),
			Currency:     "EUR",
			Cycle:        models.CycleMonthly,
			BillingDay:   1,
			StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			TrialEndDate: &trialEnd,
			Category:     models.CategoryMusic,
			Status:       models.StatusTrial,
			Notes:        "student plan",
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewSubscriptionStore(filepath.Join(t.TempDir(), "nope.yaml"))
	subs, err := s.Load()
	assert.NoError(t, err)
	assert.Empty(t, subs)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not valid: ["), 0600))

	_, err := NewSubscriptionStore(path).Load()
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "subscriptions.yaml")
	s := NewSubscriptionStore(path)
	original := sampleSubscriptions()

	require.NoError(t, s.Save(original))

	// The parent directory was created and no temp file is left behind.
	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Netflix", loaded[0].Name)
	assert.True(t, loaded[0].Amount.Equal(original[0].Amount))
	assert.Equal(t, models.CycleMonthly, loaded[0].Cycle)
	assert.Equal(t, original[0].StartDate, loaded[0].StartDate.UTC())
	assert.Nil(t, loaded[0].TrialEndDate)

	assert.Equal(t, "Spotify", loaded[1].Name)
	assert.Equal(t, models.StatusTrial, loaded[1].Status)
	require.NotNil(t, loaded[1].TrialEndDate)
	assert.Equal(t, *original[1].TrialEndDate, loaded[1].TrialEndDate.UTC())
	assert.Equal(t, "student plan", loaded[1].Notes)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.yaml")
	s := NewSubscriptionStore(path)

	require.NoError(t, s.Save(sampleSubscriptions()))
	require.NoError(t, s.Save(sampleSubscriptions()[:1]))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestSaveEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.yaml")
	s := NewSubscriptionStore(path)

	require.NoError(t, s.Save(nil))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
