package domain

import "time"

type MortgageInput struct {
	LoanAmount   Number `json:"loanAmount"`
	InterestRate Number `json:"interestRate"`
	LoanTerm     Number `json:"loanTerm"` // years
}

type MortgageResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

type ScheduleInput struct {
	MortgageInput
	Page     Number `json:"page"`
	PageSize Number `json:"pageSize"`
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type ScheduleSummary struct {
	TotalMonths    int     `json:"totalMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPrincipal float64 `json:"totalPrincipal"`
	CurrentPage    int     `json:"currentPage"`
	TotalPages     int     `json:"totalPages"`
	PageSize       int     `json:"pageSize"`
}

type ScheduleResult struct {
	Schedule []ScheduleEntry `json:"schedule"`
	Summary  ScheduleSummary `json:"summary"`
}

// CalculationRecord is a stored mortgage calculation. The repository assigns
// ID and CreatedAt when empty.
type CalculationRecord struct {
	ID           string         `json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	LoanAmount   float64        `json:"loanAmount"`
	InterestRate float64        `json:"interestRate"`
	LoanTerm     float64        `json:"loanTerm"`
	Result       MortgageResult `json:"result"`
}
