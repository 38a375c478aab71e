package billing

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus is the tri-state shown on invoices and dashboards.
type PaymentStatus string

const (
	StatusPaid        PaymentStatus = "Paid"
	StatusPartPayment PaymentStatus = "Part-Payment"
	StatusUnpaid      PaymentStatus = "Unpaid"
)

// Balance is the computed position for one student in one term.
type Balance struct {
	TotalDue    decimal.Decimal `json:"total_due"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Status      PaymentStatus   `json:"status"`
}

// ComputeBalance sums the applicable items against the payment amounts for the
// same year and term. Nothing owed means Paid no matter what was paid; the
// function is pure, so recomputing with identical inputs yields identical
// output.
func ComputeBalance(items []ApplicableItem, paymentAmounts []decimal.Decimal) Balance {
	totalDue := decimal.Zero
	for _, item := range items {
		totalDue = totalDue.Add(item.Amount)
	}

	totalPaid := sum(paymentAmounts)
	outstanding := totalDue.Sub(totalPaid)

	status := StatusUnpaid
	switch {
	case totalDue.IsZero():
		// Nothing owed is Paid regardless of payment history.
		status = StatusPaid
	case totalPaid.GreaterThanOrEqual(totalDue):
		status = StatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		status = StatusPartPayment
	}

	return Balance{
		TotalDue:    totalDue,
		TotalPaid:   totalPaid,
		Outstanding: outstanding,
		Status:      status,
	}
}

func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
