// Package finance holds the pure calculation formulas for the move
// calculator: fixed-rate amortization, selling-cost aggregation, loan sizing,
// and monthly cost composition.
//
// Functions here are total for finite numeric input and perform no range
// validation; callers (services and HTTP handlers) validate first.
package finance

import (
	"math"

	"move-calculator/domain"
)

// Round2 rounds to 2 decimal places. Applied at output edges only, never
// inside intermediate calculations.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AmortizedPayment returns the fixed monthly payment for a loan of the given
// principal at annualRatePercent over years:
//
//	M = P·r·(1+r)^n / ((1+r)^n − 1)
//
// The zero-rate case is special-cased to principal/n; the general formula is
// 0/0 there.
func AmortizedPayment(principal, annualRatePercent, years float64) float64 {
	monthlyRate := annualRatePercent / 100 / 12
	n := years * 12

	if monthlyRate == 0 {
		return principal / n
	}

	pow := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * pow / (pow - 1)
}

// AmortizationSchedule returns the month-by-month breakdown of a fixed-rate
// loan. The reported balance is floored at 0 so rounding drift on the final
// month never shows a negative balance.
func AmortizationSchedule(principal, annualRatePercent, years float64) []domain.ScheduleEntry {
	monthlyRate := annualRatePercent / 100 / 12
	months := int(years * 12)
	payment := AmortizedPayment(principal, annualRatePercent, years)

	entries := make([]domain.ScheduleEntry, 0, months)
	balance := principal

	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		balance -= principalPart

		entries = append(entries, domain.ScheduleEntry{
			Month:     month,
			Payment:   payment,
			Principal: principalPart,
			Interest:  interest,
			Balance:   math.Max(0, balance),
		})
	}

	return entries
}

// TotalSellingCosts sums the percentage-based costs (agent commission,
// transfer tax) with the fixed-dollar line items.
func TotalSellingCosts(d domain.SaleDetails, salePrice float64) float64 {
	commission := salePrice * d.AgentCommission / 100
	transferTax := salePrice * d.TransferTax / 100

	return commission +
		transferTax +
		d.TitleAndEscrow +
		d.HomeWarranty +
		d.PreSaleRepairs +
		d.StagingCosts +
		d.ProfessionalCleaning +
		d.Photography +
		d.MarketingCosts
}

// NetProceeds is what the sale yields after selling costs.
func NetProceeds(salePrice, totalSellingCosts float64) float64 {
	return salePrice - totalSellingCosts
}

// NetAtClosing is the cash left after paying off existing obligations, the
// money actually available for the next down payment.
func NetAtClosing(netProceeds, totalPayoff float64) float64 {
	return netProceeds - totalPayoff
}

// DownPaymentAmount converts a down-payment percentage into dollars.
func DownPaymentAmount(purchasePrice, downPaymentPercent float64) float64 {
	return purchasePrice * downPaymentPercent / 100
}

// LoanAmount sizes the loan from the desired down-payment percentage alone,
// ignoring cash availability.
func LoanAmount(purchasePrice, downPaymentPercent float64) float64 {
	return purchasePrice - DownPaymentAmount(purchasePrice, downPaymentPercent)
}

// MonthlyPropertyTax converts an annual property-tax rate percentage into a
// monthly dollar amount.
func MonthlyPropertyTax(purchasePrice, ratePercent float64) float64 {
	return purchasePrice * ratePercent / 100 / 12
}

// MonthlyInsurance converts an annual insurance premium into a monthly cost.
func MonthlyInsurance(annualInsurance float64) float64 {
	return annualInsurance / 12
}

// TotalMonthlyPayment composes the full monthly housing cost.
func TotalMonthlyPayment(monthlyMortgage, monthlyPropertyTax, monthlyInsurance, monthlyHOA float64) float64 {
	return monthlyMortgage + monthlyPropertyTax + monthlyInsurance + monthlyHOA
}
