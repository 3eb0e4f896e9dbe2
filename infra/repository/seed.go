package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultCurrencies is the built-in currency catalog. Codes not listed here
// are rejected at account creation.
var defaultCurrencies = []Currency{
	{Code: "RSD", Name: "Serbian Dinar", Symbol: "дин.", Decimals: 2, Active: true},
	{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2, Active: true},
	{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2, Active: true},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: 2, Active: true},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Decimals: 2, Active: true},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0, Active: true},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2, Active: true},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Decimals: 2, Active: true},
}

// SeedCurrencies upserts the built-in catalog. Existing rows keep their
// Active flag so operators can disable a currency without it reappearing.
func SeedCurrencies(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "symbol", "decimals"}),
	}).Create(&defaultCurrencies).Error
}
