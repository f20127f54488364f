package domain

// SliderState is one of the three main calculator sliders. Expanded controls
// whether the detail breakdown or the aggregate value is writable next; it has
// no effect on computed results.
type SliderState struct {
	Value      float64 `json:"value"`
	Confidence string  `json:"confidence"`
	Expanded   bool    `json:"expanded"`
}

// SaleDetails are the itemized selling costs. AgentCommission and TransferTax
// are percentages of the sale price; the rest are fixed dollar amounts.
type SaleDetails struct {
	AgentCommission      float64 `json:"agentCommission"`
	TitleAndEscrow       float64 `json:"titleAndEscrow"`
	TransferTax          float64 `json:"transferTax"`
	HomeWarranty         float64 `json:"homeWarranty"`
	PreSaleRepairs       float64 `json:"preSaleRepairs"`
	StagingCosts         float64 `json:"stagingCosts"`
	ProfessionalCleaning float64 `json:"professionalCleaning"`
	Photography          float64 `json:"photography"`
	MarketingCosts       float64 `json:"marketingCosts"`
}

// PayoffMode tags which view of the payoff is authoritative: the aggregate
// slider or the per-loan breakdown. Exactly one is writable at a time; the
// other is derived.
type PayoffMode string

const (
	PayoffAggregate PayoffMode = "aggregate"
	PayoffDetailed  PayoffMode = "detailed"
)

// PayoffDetails are the obligations cleared at closing.
type PayoffDetails struct {
	Mode           PayoffMode `json:"mode"`
	FirstMortgage  float64    `json:"firstMortgage"`
	SecondMortgage float64    `json:"secondMortgage"`
	HELOC          float64    `json:"heloc"`
	OtherPayments  float64    `json:"otherPayments"`
}

// Total is the aggregate payoff across all four components.
func (p PayoffDetails) Total() float64 {
	return p.FirstMortgage + p.SecondMortgage + p.HELOC + p.OtherPayments
}

// AggregatePayoff converts an aggregate payoff value into detail form: the
// first mortgage absorbs the full amount and the other components reset to
// zero, keeping the aggregate and detail views consistent.
func AggregatePayoff(total float64) PayoffDetails {
	return PayoffDetails{
		Mode:          PayoffAggregate,
		FirstMortgage: total,
	}
}

// PurchaseDetails are the financing terms for the new property. DownPayment,
// InterestRate and PropertyTaxRate are percentages; LoanTerm is in years;
// HOACost is monthly and InsuranceCost annual.
type PurchaseDetails struct {
	DownPayment     float64 `json:"downPayment"`
	InterestRate    float64 `json:"interestRate"`
	LoanTerm        float64 `json:"loanTerm"`
	PropertyTaxRate float64 `json:"propertyTaxRate"`
	HOACost         float64 `json:"hoaCost"`
	InsuranceCost   float64 `json:"insuranceCost"`
}
