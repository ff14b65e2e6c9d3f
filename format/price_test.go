package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// plain folds the locale's no-break spaces so expectations stay readable.
func plain(s string) string {
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}

func TestPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 ₽"},
		{990, "990 ₽"},
		{3990, "3 990 ₽"},
		{119990, "119 990 ₽"},
		{1234567, "1 234 567 ₽"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, plain(Price(tt.in)))
	}
}

func TestAmount_RoundsToWholeRoubles(t *testing.T) {
	assert.Equal(t, "8 000 ₽", plain(Amount(decimal.NewFromInt(8000))))
	assert.Equal(t, "6 667 ₽", plain(Amount(decimal.RequireFromString("6666.5"))))
	assert.Equal(t, "6 666 ₽", plain(Amount(decimal.RequireFromString("6666.4999"))))
}
