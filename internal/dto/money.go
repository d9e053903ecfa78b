package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	titler  = cases.Title(language.AmericanEnglish)
	usd     = currency.USD
)

// FormatUSD renders an amount with the dollar sign, thousands separators and
// two decimals, e.g. $1,234.50.
func FormatUSD(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "$" + printer.Sprintf("%.2f", f)
}

// CurrencyCode is the ISO code invoices and exports are issued in.
func CurrencyCode() string {
	return usd.String()
}

// Title capitalizes each word, for carrier and category names typed in lower case.
func Title(s string) string {
	return titler.String(s)
}
