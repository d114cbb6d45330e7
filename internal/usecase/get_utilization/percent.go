package get_utilization

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// formatPercent booked/total*100 с двумя знаками и суффиксом "%"
// При total == 0 возвращает "0%"
func formatPercent(booked, total int) string {
	if total <= 0 {
		return "0%"
	}
	ratio := decimal.NewFromInt(int64(booked)).Mul(hundred).Div(decimal.NewFromInt(int64(total)))
	return ratio.StringFixed(2) + "%"
}
