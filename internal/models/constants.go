package models

import "errors"

// Supported ISO currency codes, in the order they are tried when matching
// trailing currency codes in text.
var Currencies = []string{
	"USD", "EUR", "GBP", "CNY", "JPY", "KRW", "CAD", "AUD",
	"CHF", "HKD", "SGD", "SEK", "NOK", "DKK", "INR", "BRL",
	"MXN", "TWD", "THB", "RUB",
}

// CurrencySymbols maps currency codes to their display symbol.
// CNY/JPY and SEK/NOK/DKK share symbols; disambiguation happens from context
// during extraction.
var CurrencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "CNY": "¥", "JPY": "¥",
	"KRW": "₩", "CAD": "C$", "AUD": "A$", "CHF": "CHF", "HKD": "HK$",
	"SGD": "S$", "SEK": "kr", "NOK": "kr", "DKK": "kr", "INR": "₹",
	"BRL": "R$", "MXN": "MX$", "TWD": "NT$", "THB": "฿", "RUB": "₽",
}

// DefaultCurrency is used when a form carries no currency.
const DefaultCurrency = "USD"

// Subscription categories.
const (
	CategoryStreaming    = "Streaming"
	CategoryMusic        = "Music"
	CategorySoftware     = "Software"
	CategoryCloudStorage = "Cloud Storage"
	CategoryProductivity = "Productivity"
	CategoryAI           = "AI"
	CategoryEducation    = "Education"
	CategoryNews         = "News"
	CategoryGaming       = "Gaming"
	CategoryFitness      = "Fitness"
	CategoryFinance      = "Finance"
	CategoryOther        = "Other"
)

// Categories lists all categories in display order.
var Categories = []string{
	CategoryStreaming, CategoryMusic, CategorySoftware, CategoryCloudStorage,
	CategoryProductivity, CategoryAI, CategoryEducation, CategoryNews,
	CategoryGaming, CategoryFitness, CategoryFinance, CategoryOther,
}

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)

// Form validation errors.
var (
	ErrMissingName   = errors.New("subscription name is required")
	ErrInvalidAmount = errors.New("subscription amount must be a positive number")
)
