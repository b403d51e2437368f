// Package view renders console screens as plain text tables.
package view

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CompactThreshold is the value from which numbers switch to compact form.
const CompactThreshold = 10000

const peso = "₱"

var printer = message.NewPrinter(language.English)

var compactUnits = []struct {
	div    float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCompact renders n with grouping, or as 12.3K / 4.5M once it
// reaches CompactThreshold.
func FormatCompact(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	if n >= CompactThreshold {
		return compact(n)
	}
	return printer.Sprintf("%v", number.Decimal(n))
}

// FormatPHP renders an amount in pesos with two decimals, or compact once
// it reaches CompactThreshold.
func FormatPHP(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return peso + "0"
	}
	if amount >= CompactThreshold {
		return peso + compact(amount)
	}
	s := printer.Sprintf("%v", number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if amount < 0 {
		return "-" + peso + s
	}
	return peso + s
}

func compact(n float64) string {
	for i, u := range compactUnits {
		if n < u.div {
			continue
		}
		scaled := math.Round(n/u.div*10) / 10
		// 999,960 rounds to 1000K; promote it to the next unit.
		if scaled >= 1000 && i > 0 {
			prev := compactUnits[i-1]
			scaled = math.Round(n/prev.div*10) / 10
			return printer.Sprintf("%v", number.Decimal(scaled, number.MaxFractionDigits(1))) + prev.suffix
		}
		return printer.Sprintf("%v", number.Decimal(scaled, number.MaxFractionDigits(1))) + u.suffix
	}
	return printer.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(1)))
}
