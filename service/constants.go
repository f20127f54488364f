package service

const (
	MaxLoanAmount    = 1_000_000_000.0 // sanity ceiling for endpoint input
	MaxInterestRate  = 100.0           // percent, annual
	MaxLoanTermYears = 50.0

	DefaultSchedulePage     = 1
	DefaultSchedulePageSize = 12

	// MaxScheduleMonths is the longest schedule the term ceiling allows.
	// Pagination input is clamped here so offset math cannot overflow.
	MaxScheduleMonths = int(MaxLoanTermYears * 12)

	// A cell whose total monthly payment is within this fraction above the
	// target still counts as a warning rather than insufficient.
	PaymentWarningThreshold = 0.10
)

// FixedDownPayments is the down-payment-percent axis of the legacy payment
// matrix. The scenario matrix uses confidence-derived price ladders on both
// axes instead; this axis survives only for BuildPaymentMatrix.
var FixedDownPayments = []float64{5, 10, 15, 20, 25, 30}
