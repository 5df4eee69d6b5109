package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/subscan/internal/models"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		service  Service
		expected string
	}{
		{"First alias wins", Service{Names: []string{"Netflix", "NETFLIX"}}, "Netflix"},
		{"Empty service", Service{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.service.DisplayName())
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedOk   bool
		expectedName string
	}{
		{
			"Exact name",
			"Netflix\nYour membership renews on Jan 15",
			true,
			"Netflix",
		},
		{
			"Case-insensitive",
			"Thank you for subscribing to SPOTIFY premium",
			true,
			"Spotify",
		},
		{
			"Longest alias wins over shorter substring",
			"YouTube Premium membership receipt",
			true,
			"YouTube Premium",
		},
		{
			"Chinese service name",
			"感谢您订阅爱奇艺会员",
			true,
			"爱奇艺",
		},
		{
			"iCloud storage receipt",
			"Receipt for your iCloud+ storage plan",
			true,
			"iCloud",
		},
		{
			"No match",
			"Invoice #4821 for consulting services",
			false,
			"",
		},
		{
			"Empty text",
			"",
			false,
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, ok := Match(tc.text)
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expectedName, service.DisplayName())
			}
		})
	}
}

func TestMatchMetadata(t *testing.T) {
	service, ok := Match("Netflix receipt")
	assert.True(t, ok)
	assert.Equal(t, "netflix.com", service.Domain)
	assert.Equal(t, models.CategoryStreaming, service.Category)
	assert.Equal(t, models.CycleMonthly, service.DefaultCycle)
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	for _, service := range All {
		assert.NotEmpty(t, service.Names, "service %q has no aliases", service.Domain)
		assert.NotEmpty(t, service.Domain)
		assert.True(t, service.DefaultCycle.IsValid(), "service %q has invalid cycle", service.Domain)
	}
}
