package billing

import (
	"github.com/shopspring/decimal"
)

// Applicability tags carried by fee item definitions.
const (
	AppliesNew     = "new"
	AppliesTerm1   = "term1"
	AppliesTerm2_3 = "term2_3"
)

// ItemDefinition is the fee-item metadata needed to judge applicability.
type ItemDefinition struct {
	ID        string
	Name      string
	Optional  bool
	AppliesTo []string
}

// StructureItem is one configured line of a fee structure.
type StructureItem struct {
	FeeItemID string
	Amount    decimal.Decimal
}

// ApplicableItem is a line a specific student actually owes.
type ApplicableItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ResolveApplicableItems filters a fee structure down to the lines owed by one
// student. Lines referencing an unknown fee item are dropped silently; that is
// a configuration mismatch, not an error. Order of the structure is preserved.
//
// Mandatory items follow the admission rules: a new student owes every line
// tagged "new" regardless of term, and both new and continuing students owe
// the line matching the numeric term ("term1" for term 1, "term2_3" beyond).
// A continuing student never owes a "new"-tagged line.
//
// Optional items are never billed in advance: they become applicable only once
// a payment naming them exists, so they show up on invoices retroactively.
func ResolveApplicableItems(
	items []StructureItem,
	definitions map[string]ItemDefinition,
	isNewStudent bool,
	termNumber int,
	paidNames map[string]bool,
) []ApplicableItem {
	applicable := make([]ApplicableItem, 0, len(items))

	for _, item := range items {
		def, ok := definitions[item.FeeItemID]
		if !ok {
			continue
		}

		if def.Optional {
			if paidNames[def.Name] {
				applicable = append(applicable, ApplicableItem{Name: def.Name, Amount: item.Amount})
			}
			continue
		}

		owed := false
		switch {
		case isNewStudent && containsTag(def.AppliesTo, AppliesNew):
			owed = true
		case termNumber == 1 && containsTag(def.AppliesTo, AppliesTerm1):
			owed = true
		case termNumber > 1 && containsTag(def.AppliesTo, AppliesTerm2_3):
			owed = true
		}

		if owed {
			applicable = append(applicable, ApplicableItem{Name: def.Name, Amount: item.Amount})
		}
	}

	return applicable
}
