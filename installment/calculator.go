// Package installment computes zero-interest instalment plans.
package installment

import (
	"strconv"

	"github.com/shopspring/decimal"

	"storefront/format"
)

// Periods and DownPayments are the choices offered on the installment page.
var (
	Periods      = []int{3, 6, 12, 24}
	DownPayments = []int{0, 10, 20, 30, 50}
)

var hundred = decimal.NewFromInt(100)

// Result keeps exact values; round only when displaying.
type Result struct {
	InitialPayment decimal.Decimal `json:"initial_payment"`
	Remaining      decimal.Decimal `json:"remaining"`
	Monthly        decimal.Decimal `json:"monthly"`
	Total          decimal.Decimal `json:"total"`
	Overpayment    decimal.Decimal `json:"overpayment"`
}

// Calculate returns the plan for price paid over period months after a percent down payment.
// ok is false when period is not positive; callers keep their previous result then.
func Calculate(price decimal.Decimal, period, percent int) (Result, bool) {
	if period <= 0 {
		return Result{}, false
	}
	initial := price.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	remaining := price.Sub(initial)
	return Result{
		InitialPayment: initial,
		Remaining:      remaining,
		Monthly:        remaining.Div(decimal.NewFromInt(int64(period))),
		Total:          price,
		Overpayment:    decimal.Zero,
	}, true
}

type Option struct {
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// DownPaymentOptions labels every offered percent with its amount for price,
// e.g. "20% (24 000 ₽)".
func DownPaymentOptions(price decimal.Decimal) []Option {
	out := make([]Option, 0, len(DownPayments))
	for _, p := range DownPayments {
		amount := price.Mul(decimal.NewFromInt(int64(p))).Div(hundred)
		out = append(out, Option{
			Percent: p,
			Label:   strconv.Itoa(p) + "% (" + format.Amount(amount) + ")",
		})
	}
	return out
}
