package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"move-calculator/config"
	"move-calculator/domain"
	"move-calculator/finance"
)

// Section names one of the three main calculator sliders.
type Section string

const (
	SectionSale     Section = "sale"
	SectionPayoff   Section = "payoff"
	SectionPurchase Section = "purchase"
)

// Calculator is the state controller: it owns the three main sliders, the
// detail breakdowns, and the target monthly payment, and rebuilds the full
// scenario matrix after every mutation. One instance serves one session;
// the controller itself is not safe for concurrent use.
type Calculator struct {
	sale     domain.SliderState
	payoff   domain.SliderState
	purchase domain.SliderState

	saleDetails     domain.SaleDetails
	payoffDetails   domain.PayoffDetails
	purchaseDetails domain.PurchaseDetails

	targetPayment float64
	saleCount     int
	purchaseCount int

	scenarios *ScenarioService
	results   domain.CalculatorResults
}

// NewCalculator builds a controller seeded from the configured fallback
// values and computes the initial matrix.
func NewCalculator(cfg config.CalculatorConfig, scenarios *ScenarioService) (*Calculator, error) {
	if cfg.SaleRangeCount < 2 || cfg.PurchaseRangeCount < 2 {
		return nil, fmt.Errorf("range counts must be at least 2, got %d and %d",
			cfg.SaleRangeCount, cfg.PurchaseRangeCount)
	}
	if _, ok := domain.SpreadFor(cfg.Confidence); !ok {
		return nil, fmt.Errorf("unknown confidence level %q", cfg.Confidence)
	}

	payoffDetails := domain.AggregatePayoff(cfg.PayoffAmount)

	c := &Calculator{
		sale:     domain.SliderState{Value: cfg.SalePrice, Confidence: cfg.Confidence},
		payoff:   domain.SliderState{Value: payoffDetails.Total(), Confidence: cfg.Confidence},
		purchase: domain.SliderState{Value: cfg.PurchasePrice, Confidence: cfg.Confidence},
		saleDetails: domain.SaleDetails{
			AgentCommission:      6,
			TitleAndEscrow:       2000,
			TransferTax:          1.1,
			HomeWarranty:         500,
			PreSaleRepairs:       5000,
			StagingCosts:         2000,
			ProfessionalCleaning: 500,
			Photography:          500,
			MarketingCosts:       1000,
		},
		payoffDetails: payoffDetails,
		purchaseDetails: domain.PurchaseDetails{
			DownPayment:     cfg.DownPayment,
			InterestRate:    cfg.InterestRate,
			LoanTerm:        cfg.LoanTermYears,
			PropertyTaxRate: cfg.PropertyTaxRate,
			HOACost:         cfg.HOACost,
			InsuranceCost:   cfg.InsuranceCost,
		},
		targetPayment: cfg.TargetPayment,
		saleCount:     cfg.SaleRangeCount,
		purchaseCount: cfg.PurchaseRangeCount,
		scenarios:     scenarios,
	}

	if err := c.recompute(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetMainSlider parses and applies a new value for a main slider. Setting the
// payoff slider while its detail view is collapsed rewrites the breakdown:
// the first mortgage absorbs the full amount and the rest reset to zero.
func (c *Calculator) SetMainSlider(section Section, raw string) error {
	value, err := parseSliderValue(raw)
	if err != nil {
		return err
	}

	switch section {
	case SectionSale:
		if value <= 0 {
			return fmt.Errorf("sale price must be positive, got %g", value)
		}
		c.sale.Value = value
	case SectionPayoff:
		c.payoff.Value = value
		if !c.payoff.Expanded {
			c.payoffDetails = domain.AggregatePayoff(value)
		}
	case SectionPurchase:
		if value <= 0 {
			return fmt.Errorf("purchase price must be positive, got %g", value)
		}
		c.purchase.Value = value
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	return c.recompute()
}

// SetConfidence applies a new confidence label to a main slider.
func (c *Calculator) SetConfidence(section Section, label string) error {
	if _, ok := domain.SpreadFor(label); !ok {
		return fmt.Errorf("unknown confidence level %q", label)
	}

	switch section {
	case SectionSale:
		c.sale.Confidence = label
	case SectionPayoff:
		c.payoff.Confidence = label
	case SectionPurchase:
		c.purchase.Confidence = label
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	return c.recompute()
}

// SetDetail parses and applies a value to one named detail field. Editing any
// payoff component switches the payoff to detailed mode and re-derives the
// aggregate slider as the sum of the components.
func (c *Calculator) SetDetail(section Section, field, raw string) error {
	value, err := parseSliderValue(raw)
	if err != nil {
		return err
	}

	switch section {
	case SectionSale:
		if err := c.setSaleDetail(field, value); err != nil {
			return err
		}
	case SectionPayoff:
		if err := c.setPayoffDetail(field, value); err != nil {
			return err
		}
		c.payoffDetails.Mode = domain.PayoffDetailed
		c.payoff.Value = c.payoffDetails.Total()
	case SectionPurchase:
		if err := c.setPurchaseDetail(field, value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	return c.recompute()
}

func (c *Calculator) setSaleDetail(field string, value float64) error {
	switch field {
	case "agentCommission":
		c.saleDetails.AgentCommission = value
	case "titleAndEscrow":
		c.saleDetails.TitleAndEscrow = value
	case "transferTax":
		c.saleDetails.TransferTax = value
	case "homeWarranty":
		c.saleDetails.HomeWarranty = value
	case "preSaleRepairs":
		c.saleDetails.PreSaleRepairs = value
	case "stagingCosts":
		c.saleDetails.StagingCosts = value
	case "professionalCleaning":
		c.saleDetails.ProfessionalCleaning = value
	case "photography":
		c.saleDetails.Photography = value
	case "marketingCosts":
		c.saleDetails.MarketingCosts = value
	default:
		return fmt.Errorf("unknown sale detail field %q", field)
	}
	return nil
}

func (c *Calculator) setPayoffDetail(field string, value float64) error {
	switch field {
	case "firstMortgage":
		c.payoffDetails.FirstMortgage = value
	case "secondMortgage":
		c.payoffDetails.SecondMortgage = value
	case "heloc":
		c.payoffDetails.HELOC = value
	case "otherPayments":
		c.payoffDetails.OtherPayments = value
	default:
		return fmt.Errorf("unknown payoff detail field %q", field)
	}
	return nil
}

func (c *Calculator) setPurchaseDetail(field string, value float64) error {
	switch field {
	case "downPayment":
		c.purchaseDetails.DownPayment = value
	case "interestRate":
		c.purchaseDetails.InterestRate = value
	case "loanTerm":
		if value <= 0 {
			return fmt.Errorf("loan term must be positive, got %g", value)
		}
		c.purchaseDetails.LoanTerm = value
	case "propertyTaxRate":
		c.purchaseDetails.PropertyTaxRate = value
	case "hoaCost":
		c.purchaseDetails.HOACost = value
	case "insuranceCost":
		c.purchaseDetails.InsuranceCost = value
	default:
		return fmt.Errorf("unknown purchase detail field %q", field)
	}
	return nil
}

// ToggleExpanded flips the expanded flag for a section. Display only: it
// changes which of aggregate/detail is writable next, never the values or the
// results.
func (c *Calculator) ToggleExpanded(section Section) error {
	switch section {
	case SectionSale:
		c.sale.Expanded = !c.sale.Expanded
	case SectionPayoff:
		c.payoff.Expanded = !c.payoff.Expanded
	case SectionPurchase:
		c.purchase.Expanded = !c.purchase.Expanded
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return nil
}

// SetTargetPayment parses and applies a new target monthly payment.
func (c *Calculator) SetTargetPayment(raw string) error {
	value, err := parseSliderValue(raw)
	if err != nil {
		return err
	}
	c.targetPayment = value
	return c.recompute()
}

// SetRangeCounts resizes the two ladders. Both counts must be at least 2.
func (c *Calculator) SetRangeCounts(saleCount, purchaseCount int) error {
	if saleCount < 2 || purchaseCount < 2 {
		return fmt.Errorf("range counts must be at least 2, got %d and %d", saleCount, purchaseCount)
	}
	c.saleCount = saleCount
	c.purchaseCount = purchaseCount
	return c.recompute()
}

// recompute rebuilds the entire scenario matrix from current state. On error
// the stale results are cleared rather than left visible.
func (c *Calculator) recompute() error {
	saleSpread, _ := domain.SpreadFor(c.sale.Confidence)
	purchaseSpread, _ := domain.SpreadFor(c.purchase.Confidence)

	saleRange, err := finance.GeneratePriceRange(c.sale.Value, saleSpread, c.saleCount)
	if err != nil {
		c.results = domain.CalculatorResults{}
		return fmt.Errorf("sale price range: %w", err)
	}
	purchaseRange, err := finance.GeneratePriceRange(c.purchase.Value, purchaseSpread, c.purchaseCount)
	if err != nil {
		c.results = domain.CalculatorResults{}
		return fmt.Errorf("purchase price range: %w", err)
	}

	matrix := c.scenarios.BuildMatrix(
		saleRange.Prices, purchaseRange.Prices,
		c.saleDetails, c.payoffDetails, c.purchaseDetails,
	)

	c.results = domain.CalculatorResults{
		SaleRange:     saleRange,
		PurchaseRange: purchaseRange,
		Matrix:        matrix,
		Current:       matrix.Current,
		CurrentStatus: ClassifyPayment(matrix.Current.TotalMonthlyPayment, c.targetPayment),
	}
	return nil
}

// Results returns the matrix and current scenario derived from the latest
// successful recomputation.
func (c *Calculator) Results() domain.CalculatorResults {
	return c.results
}

// Slider returns the state of one main slider.
func (c *Calculator) Slider(section Section) (domain.SliderState, error) {
	switch section {
	case SectionSale:
		return c.sale, nil
	case SectionPayoff:
		return c.payoff, nil
	case SectionPurchase:
		return c.purchase, nil
	}
	return domain.SliderState{}, fmt.Errorf("unknown section %q", section)
}

// SaleCosts returns the current itemized selling costs.
func (c *Calculator) SaleCosts() domain.SaleDetails {
	return c.saleDetails
}

// PayoffBreakdown returns the current payoff components and mode.
func (c *Calculator) PayoffBreakdown() domain.PayoffDetails {
	return c.payoffDetails
}

// PurchaseTerms returns the current financing terms.
func (c *Calculator) PurchaseTerms() domain.PurchaseDetails {
	return c.purchaseDetails
}

// TargetPayment returns the target monthly payment.
func (c *Calculator) TargetPayment() float64 {
	return c.targetPayment
}

// parseSliderValue converts raw slider input to a float, rejecting anything
// that would otherwise propagate NaN or infinities into the matrix.
func parseSliderValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid numeric value %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("value cannot be negative, got %g", v)
	}
	return v, nil
}
