package domain

// PriceRange is a symmetric price ladder around a base value. Prices holds
// Count rounded integers from Min to Max inclusive, ascending.
type PriceRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Step   float64 `json:"step"`
	Prices []int64 `json:"prices"`
}

// ScenarioResult is one cell of the scenario matrix: the full outcome of
// selling at SalePrice and buying at PurchasePrice.
type ScenarioResult struct {
	SalePrice            int64   `json:"salePrice"`
	PurchasePrice        int64   `json:"purchasePrice"`
	NetProceeds          float64 `json:"netProceeds"`
	NetAtClosing         float64 `json:"netAtClosing"`
	EffectiveDownPayment float64 `json:"effectiveDownPayment"`
	LoanAmount           float64 `json:"loanAmount"`
	MonthlyMortgage      float64 `json:"monthlyMortgage"`
	MonthlyPropertyTax   float64 `json:"monthlyPropertyTax"`
	MonthlyInsurance     float64 `json:"monthlyInsurance"`
	MonthlyHOA           float64 `json:"monthlyHOA"`
	TotalMonthlyPayment  float64 `json:"totalMonthlyPayment"`
}

// ScenarioMatrix is the cross product of a sale-price ladder and a
// purchase-price ladder. Cells is indexed [saleIndex][purchaseIndex], both
// axes in ascending price order. Current is the cell at the center indices.
type ScenarioMatrix struct {
	SalePrices     []int64            `json:"salePrices"`
	PurchasePrices []int64            `json:"purchasePrices"`
	Cells          [][]ScenarioResult `json:"cells"`
	Current        ScenarioResult     `json:"current"`
}

// PaymentStatus classifies a cell's total monthly payment against the target.
type PaymentStatus string

const (
	PaymentSufficient   PaymentStatus = "sufficient"
	PaymentWarning      PaymentStatus = "warning"
	PaymentInsufficient PaymentStatus = "insufficient"
)

// PaymentOption is one cell of the legacy purchase-price × down-payment-percent
// matrix, which sizes the loan from the desired percentage alone.
type PaymentOption struct {
	LoanAmount          float64 `json:"loanAmount"`
	MonthlyMortgage     float64 `json:"monthlyMortgage"`
	MonthlyPropertyTax  float64 `json:"monthlyPropertyTax"`
	MonthlyInsurance    float64 `json:"monthlyInsurance"`
	MonthlyHOA          float64 `json:"monthlyHOA"`
	TotalMonthlyPayment float64 `json:"totalMonthlyPayment"`
}

// CalculatorResults is the derived output of the calculator state controller,
// rebuilt in full on every state change.
type CalculatorResults struct {
	SaleRange     PriceRange     `json:"saleRange"`
	PurchaseRange PriceRange     `json:"purchaseRange"`
	Matrix        ScenarioMatrix `json:"matrix"`
	Current       ScenarioResult `json:"current"`
	CurrentStatus PaymentStatus  `json:"currentStatus"`
}
