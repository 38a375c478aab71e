package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grehub24-dot/campusflow/internal/payroll"
	"github.com/grehub24-dot/campusflow/internal/staff"
)

func testSettings() payroll.PayrollSettings {
	return payroll.PayrollSettings{
		SSNITEmployeeRate: amount("5.5"),
		SSNITEmployerRate: amount("13"),
		TaxBrackets:       graBrackets(),
	}
}

func TestCalculateDeductions_Breakdown(t *testing.T) {
	breakdown := payroll.CalculateDeductions(amount("1000"), nil, nil, testSettings())

	assert.True(t, breakdown.SSNITEmployee.Equal(amount("55")), "ssnit employee %s", breakdown.SSNITEmployee)
	assert.True(t, breakdown.SSNITEmployer.Equal(amount("130")), "ssnit employer %s", breakdown.SSNITEmployer)
	assert.True(t, breakdown.TaxableIncome.Equal(amount("945")), "taxable %s", breakdown.TaxableIncome)

	// 490 free + 110*5% + 130*10% + 215*17.5% = 56.125
	assert.True(t, breakdown.IncomeTax.Equal(amount("56.125")), "tax %s", breakdown.IncomeTax)

	// 1000 - 55 - 56.125
	assert.True(t, breakdown.NetSalary.Equal(amount("888.875")), "net %s", breakdown.NetSalary)
}

func TestCalculateDeductions_ArrearsAddedToNetNotTaxed(t *testing.T) {
	without := payroll.CalculateDeductions(amount("1000"), nil, nil, testSettings())

	arrears := staff.ArrearList{{Description: "March top-up", Amount: amount("200")}}
	with := payroll.CalculateDeductions(amount("1000"), arrears, nil, testSettings())

	// Same tax base, net shifted by exactly the arrears total.
	assert.True(t, with.IncomeTax.Equal(without.IncomeTax))
	assert.True(t, with.TaxableIncome.Equal(without.TaxableIncome))
	assert.True(t, with.NetSalary.Equal(without.NetSalary.Add(amount("200"))))
	assert.True(t, with.ArrearsTotal.Equal(amount("200")))
}

func TestCalculateDeductions_CustomDeductionsComeOffNet(t *testing.T) {
	deductions := staff.DeductionList{
		{Name: "Welfare", Amount: amount("20")},
		{Name: "Loan Repayment", Amount: amount("50")},
	}

	without := payroll.CalculateDeductions(amount("1000"), nil, nil, testSettings())
	with := payroll.CalculateDeductions(amount("1000"), nil, deductions, testSettings())

	assert.True(t, with.NetSalary.Equal(without.NetSalary.Sub(amount("70"))))
	assert.True(t, with.IncomeTax.Equal(without.IncomeTax))
}
