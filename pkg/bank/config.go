package bank

import "math"

const (
	// MaxBalance is the absolute ceiling for any configured max balance.
	MaxBalance int64 = math.MaxInt64

	DefaultBankName       = "Bank"
	DefaultCurrencyName   = "credits"
	DefaultMaxBalance     = 2_000_000_000
	DefaultDefaultBalance = 0
)

type Config struct {
	BankName       string `json:"bankName" db:"bank_name"`
	CurrencyName   string `json:"currency" db:"currency"`
	DefaultBalance int64  `json:"defaultBalance" db:"default_balance"`
	MaxBalance     int64  `json:"maxBalance" db:"max_balance"`
}

func MakeDefaultConfig() *Config {
	return &Config{
		BankName:       DefaultBankName,
		CurrencyName:   DefaultCurrencyName,
		DefaultBalance: DefaultDefaultBalance,
		MaxBalance:     DefaultMaxBalance,
	}
}
