package service

import (
	"fmt"
	"math"

	"move-calculator/domain"
	"move-calculator/finance"
)

// ScenarioService builds the sale-price × purchase-price outcome matrix.
type ScenarioService struct{}

func NewScenarioService() *ScenarioService {
	return &ScenarioService{}
}

// BuildMatrix computes a ScenarioResult for every (salePrice, purchasePrice)
// pair, row-major with the sale ladder outer. Both ladders are expected in
// ascending order. Cells are independent of each other; the payoff total is
// shared across the whole grid.
func (s *ScenarioService) BuildMatrix(
	salePrices, purchasePrices []int64,
	sale domain.SaleDetails,
	payoff domain.PayoffDetails,
	purchase domain.PurchaseDetails,
) domain.ScenarioMatrix {
	totalPayoff := payoff.Total()

	cells := make([][]domain.ScenarioResult, len(salePrices))
	for i, salePrice := range salePrices {
		row := make([]domain.ScenarioResult, len(purchasePrices))
		for j, purchasePrice := range purchasePrices {
			row[j] = buildCell(salePrice, purchasePrice, sale, totalPayoff, purchase)
		}
		cells[i] = row
	}

	matrix := domain.ScenarioMatrix{
		SalePrices:     salePrices,
		PurchasePrices: purchasePrices,
		Cells:          cells,
	}
	if len(salePrices) > 0 && len(purchasePrices) > 0 {
		matrix.Current = cells[len(salePrices)/2][len(purchasePrices)/2]
	}
	return matrix
}

// buildCell runs the full pipeline for one scenario: selling costs → net
// proceeds → net at closing → effective down payment → loan sizing → monthly
// cost composition. The effective down payment is capped at the cash actually
// available at closing, regardless of the desired percentage.
func buildCell(
	salePrice, purchasePrice int64,
	sale domain.SaleDetails,
	totalPayoff float64,
	purchase domain.PurchaseDetails,
) domain.ScenarioResult {
	sp := float64(salePrice)
	pp := float64(purchasePrice)

	sellingCosts := finance.TotalSellingCosts(sale, sp)
	netProceeds := finance.NetProceeds(sp, sellingCosts)
	netAtClosing := finance.NetAtClosing(netProceeds, totalPayoff)

	requiredDown := finance.DownPaymentAmount(pp, purchase.DownPayment)
	effectiveDown := math.Min(netAtClosing, requiredDown)
	loanAmount := pp - effectiveDown

	monthlyMortgage := finance.AmortizedPayment(loanAmount, purchase.InterestRate, purchase.LoanTerm)
	monthlyTax := finance.MonthlyPropertyTax(pp, purchase.PropertyTaxRate)
	monthlyInsurance := finance.MonthlyInsurance(purchase.InsuranceCost)

	return domain.ScenarioResult{
		SalePrice:            salePrice,
		PurchasePrice:        purchasePrice,
		NetProceeds:          netProceeds,
		NetAtClosing:         netAtClosing,
		EffectiveDownPayment: effectiveDown,
		LoanAmount:           loanAmount,
		MonthlyMortgage:      monthlyMortgage,
		MonthlyPropertyTax:   monthlyTax,
		MonthlyInsurance:     monthlyInsurance,
		MonthlyHOA:           purchase.HOACost,
		TotalMonthlyPayment: finance.TotalMonthlyPayment(
			monthlyMortgage, monthlyTax, monthlyInsurance, purchase.HOACost),
	}
}

// BuildPaymentMatrix is the legacy purchase-price × down-payment-percent
// matrix: loans are sized from the desired percentage alone, with no
// availability cap. Keys are "<price>-<downPaymentPercent>".
func (s *ScenarioService) BuildPaymentMatrix(
	purchasePrices []int64,
	downPayments []float64,
	purchase domain.PurchaseDetails,
) map[string]domain.PaymentOption {
	results := make(map[string]domain.PaymentOption, len(purchasePrices)*len(downPayments))

	for _, price := range purchasePrices {
		pp := float64(price)
		for _, down := range downPayments {
			loanAmount := finance.LoanAmount(pp, down)
			monthlyMortgage := finance.AmortizedPayment(loanAmount, purchase.InterestRate, purchase.LoanTerm)
			monthlyTax := finance.MonthlyPropertyTax(pp, purchase.PropertyTaxRate)
			monthlyInsurance := finance.MonthlyInsurance(purchase.InsuranceCost)

			key := fmt.Sprintf("%d-%g", price, down)
			results[key] = domain.PaymentOption{
				LoanAmount:         loanAmount,
				MonthlyMortgage:    monthlyMortgage,
				MonthlyPropertyTax: monthlyTax,
				MonthlyInsurance:   monthlyInsurance,
				MonthlyHOA:         purchase.HOACost,
				TotalMonthlyPayment: finance.TotalMonthlyPayment(
					monthlyMortgage, monthlyTax, monthlyInsurance, purchase.HOACost),
			}
		}
	}

	return results
}

// ClassifyPayment buckets a total monthly payment against the target: within
// target, within target plus the warning threshold, or beyond.
func ClassifyPayment(totalMonthlyPayment, target float64) domain.PaymentStatus {
	switch {
	case totalMonthlyPayment <= target:
		return domain.PaymentSufficient
	case totalMonthlyPayment <= target*(1+PaymentWarningThreshold):
		return domain.PaymentWarning
	default:
		return domain.PaymentInsufficient
	}
}
