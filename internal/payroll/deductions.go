package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/grehub24-dot/campusflow/internal/staff"
)

type DeductionBreakdown struct {
	SSNITEmployee decimal.Decimal
	SSNITEmployer decimal.Decimal
	TaxableIncome decimal.Decimal
	IncomeTax     decimal.Decimal
	ArrearsTotal  decimal.Decimal
	NetSalary     decimal.Decimal
}

// CalculateDeductions produces the statutory breakdown for one staff member.
// SSNIT is withheld from gross; tax is computed on gross minus the employee
// SSNIT contribution. Arrears are disbursed on top of net pay without entering
// the taxable base, and custom deductions come off after tax.
func CalculateDeductions(
	gross decimal.Decimal,
	arrears staff.ArrearList,
	deductions staff.DeductionList,
	settings PayrollSettings,
) DeductionBreakdown {
	ssnitEmployee := gross.Mul(settings.SSNITEmployeeRate).Div(oneHundred)
	ssnitEmployer := gross.Mul(settings.SSNITEmployerRate).Div(oneHundred)

	taxable := gross.Sub(ssnitEmployee)
	incomeTax := CalculateTax(taxable, settings.TaxBrackets)

	arrearsTotal := arrears.Total()
	net := gross.
		Add(arrearsTotal).
		Sub(ssnitEmployee).
		Sub(incomeTax).
		Sub(deductions.Total())

	return DeductionBreakdown{
		SSNITEmployee: ssnitEmployee,
		SSNITEmployer: ssnitEmployer,
		TaxableIncome: taxable,
		IncomeTax:     incomeTax,
		ArrearsTotal:  arrearsTotal,
		NetSalary:     net,
	}
}
