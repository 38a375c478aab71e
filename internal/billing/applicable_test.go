package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/grehub24-dot/campusflow/internal/billing"
)

func amount(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testDefinitions() map[string]billing.ItemDefinition {
	return map[string]billing.ItemDefinition{
		"admission": {ID: "admission", Name: "Admission Fee", AppliesTo: []string{billing.AppliesNew}},
		"tuition1":  {ID: "tuition1", Name: "Tuition Term 1", AppliesTo: []string{billing.AppliesTerm1}},
		"tuition23": {ID: "tuition23", Name: "Tuition Later Terms", AppliesTo: []string{billing.AppliesTerm2_3}},
		"books":     {ID: "books", Name: "Books Fee", Optional: true},
	}
}

func testStructure() []billing.StructureItem {
	return []billing.StructureItem{
		{FeeItemID: "admission", Amount: amount("150")},
		{FeeItemID: "tuition1", Amount: amount("300")},
		{FeeItemID: "tuition23", Amount: amount("280")},
		{FeeItemID: "books", Amount: amount("80")},
	}
}

func names(items []billing.ApplicableItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestResolveApplicableItems_NewStudentOwesNewTagRegardlessOfTerm(t *testing.T) {
	// Admission is tagged "new"; a new student owes it even in term 2.
	items := billing.ResolveApplicableItems(testStructure(), testDefinitions(), true, 2, nil)

	assert.Contains(t, names(items), "Admission Fee")
	assert.Contains(t, names(items), "Tuition Later Terms")
	assert.NotContains(t, names(items), "Tuition Term 1")
}

func TestResolveApplicableItems_ContinuingStudentTermRules(t *testing.T) {
	term1 := billing.ResolveApplicableItems(testStructure(), testDefinitions(), false, 1, nil)
	assert.Equal(t, []string{"Tuition Term 1"}, names(term1))

	term2 := billing.ResolveApplicableItems(testStructure(), testDefinitions(), false, 2, nil)
	assert.Equal(t, []string{"Tuition Later Terms"}, names(term2))
}

func TestResolveApplicableItems_ContinuingStudentNeverOwesNewTag(t *testing.T) {
	items := billing.ResolveApplicableItems(testStructure(), testDefinitions(), false, 1, nil)

	assert.NotContains(t, names(items), "Admission Fee")
}

func TestResolveApplicableItems_OptionalRetroactiveInclusion(t *testing.T) {
	// Not paid yet: excluded.
	before := billing.ResolveApplicableItems(testStructure(), testDefinitions(), false, 1, nil)
	assert.NotContains(t, names(before), "Books Fee")

	// After a payment naming the item: included.
	after := billing.ResolveApplicableItems(testStructure(), testDefinitions(), false, 1, map[string]bool{"Books Fee": true})
	assert.Contains(t, names(after), "Books Fee")
}

func TestResolveApplicableItems_UnknownDefinitionDropped(t *testing.T) {
	structure := append(testStructure(), billing.StructureItem{FeeItemID: "ghost", Amount: amount("999")})

	items := billing.ResolveApplicableItems(structure, testDefinitions(), true, 1, nil)

	for _, item := range items {
		assert.NotEqual(t, amount("999"), item.Amount)
	}
}

func TestResolveApplicableItems_PreservesStructureOrder(t *testing.T) {
	items := billing.ResolveApplicableItems(testStructure(), testDefinitions(), true, 1, map[string]bool{"Books Fee": true})

	assert.Equal(t, []string{"Admission Fee", "Tuition Term 1", "Books Fee"}, names(items))
}

func TestResolveApplicableItems_Idempotent(t *testing.T) {
	paid := map[string]bool{"Books Fee": true}

	first := billing.ResolveApplicableItems(testStructure(), testDefinitions(), true, 2, paid)
	second := billing.ResolveApplicableItems(testStructure(), testDefinitions(), true, 2, paid)

	assert.Equal(t, first, second)
}
