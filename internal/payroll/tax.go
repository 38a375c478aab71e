package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateTax applies the graduated bracket table to taxableIncome. Each
// bracket taxes only the slice of income that falls inside it, tracked with a
// running remaining-income ledger so no cedi is taxed twice. Brackets are
// sorted by their lower bound before use; the caller's ordering is not trusted.
func CalculateTax(taxableIncome decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if taxableIncome.Sign() <= 0 || len(brackets) == 0 {
		return decimal.Zero
	}

	sorted := make([]TaxBracket, len(brackets))
	copy(sorted, brackets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From.LessThan(sorted[j].From)
	})

	tax := decimal.Zero
	remaining := taxableIncome
	for _, b := range sorted {
		if remaining.Sign() <= 0 {
			break
		}

		slice := remaining
		if b.To != nil {
			width := b.To.Sub(b.From)
			if width.Sign() <= 0 {
				continue
			}
			if width.LessThan(slice) {
				slice = width
			}
		}

		tax = tax.Add(slice.Mul(b.Rate).Div(oneHundred))
		remaining = remaining.Sub(slice)
	}

	return tax
}
