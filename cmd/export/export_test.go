package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/internal/models"
	"fjacquet/subscan/internal/store"
)

func TestExportCommandMetadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	outputFlag := Cmd.Flags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}
}

func TestExportFunc(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "subscriptions.yaml")
	csvPath := filepath.Join(dir, "out.csv")

	subs := []models.Subscription{{
		Name:       "Netflix",
		Amount:     decimal.NewFromFloat(15.49),
		Currency:   "USD",
		Cycle:      models.CycleMonthly,
		BillingDay: 15,
		StartDate:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		Category:   models.CategoryStreaming,
		Status:     models.StatusActive,
	}}
	require.NoError(t, store.NewSubscriptionStore(storePath).Save(subs))

	origFlags := root.SharedFlags
	defer func() { root.SharedFlags = origFlags }()
	root.SharedFlags.File = storePath
	root.SharedFlags.Today = "2025-01-10"
	outputFile = csvPath

	require.NoError(t, exportFunc(Cmd, nil))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "name,"))
	assert.Contains(t, string(data), "Netflix")
	assert.Contains(t, string(data), "2025-01-15")
}

func TestExportFuncEmptyStore(t *testing.T) {
	dir := t.TempDir()

	origFlags := root.SharedFlags
	defer func() { root.SharedFlags = origFlags }()
	root.SharedFlags.File = filepath.Join(dir, "missing.yaml")
	root.SharedFlags.Today = ""
	outputFile = filepath.Join(dir, "out.csv")

	require.NoError(t, exportFunc(Cmd, nil))

	// Nothing stored, so no file is written.
	_, err := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err))
}
