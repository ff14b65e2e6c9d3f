// Package format renders money the way the storefront shows it: ru-RU digit grouping,
// no fraction digits and a trailing rouble sign.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySign = "₽"

var printer = message.NewPrinter(language.Russian)

// Price formats a whole-rouble amount, e.g. 119990 -> "119 990 ₽".
func Price(amount int64) string {
	return printer.Sprintf("%d", amount) + " " + currencySign
}

// Amount rounds half away from zero to whole roubles before formatting.
func Amount(amount decimal.Decimal) string {
	return Price(amount.Round(0).IntPart())
}
