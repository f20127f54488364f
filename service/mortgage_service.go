package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"move-calculator/domain"
	"move-calculator/finance"
	"move-calculator/repository"
)

// MortgageService backs the two stateless calculation endpoints. Results are
// cached by input and every fresh payment calculation is saved to the
// repository.
type MortgageService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *slog.Logger
}

// NewMortgageService creates a MortgageService with the given repository and
// cache.
func NewMortgageService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *MortgageService {
	return &MortgageService{repo: repo, cache: cache, logger: logger}
}

// validateLoanInput checks presence and range of the three required fields
// and returns them as plain floats.
func validateLoanInput(input domain.MortgageInput) (amount, rate, years float64, err error) {
	if !input.LoanAmount.IsSet() || !input.InterestRate.IsSet() || !input.LoanTerm.IsSet() {
		return 0, 0, 0, errors.New("missing required fields: loanAmount, interestRate, and loanTerm are required")
	}

	amount = input.LoanAmount.Float64()
	rate = input.InterestRate.Float64()
	years = input.LoanTerm.Float64()

	if amount <= 0 {
		return 0, 0, 0, errors.New("loan amount must be positive")
	}
	if amount > MaxLoanAmount {
		return 0, 0, 0, fmt.Errorf("loan amount exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if rate < 0 {
		return 0, 0, 0, errors.New("interest rate cannot be negative")
	}
	if rate > MaxInterestRate {
		return 0, 0, 0, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if years <= 0 {
		return 0, 0, 0, errors.New("loan term must be positive")
	}
	if years > MaxLoanTermYears {
		return 0, 0, 0, fmt.Errorf("loan term exceeds the maximum of %.0f years", MaxLoanTermYears)
	}
	return amount, rate, years, nil
}

// clampPageParam resolves a user-supplied pagination value: def when absent
// or non-positive, capped at max so slice offsets stay in range. Any value
// past the cap addresses the same empty region past the schedule end.
func clampPageParam(n domain.Number, def, max int) int {
	if !n.IsSet() {
		return def
	}
	v := n.Float64()
	if v <= 0 {
		return def
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

// Calculate computes the fixed monthly payment and loan totals, rounded to
// 2 decimals.
func (s *MortgageService) Calculate(input domain.MortgageInput) (domain.MortgageResult, error) {
	amount, rate, years, err := validateLoanInput(input)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	key := fmt.Sprintf("mortgage:%g:%g:%g", amount, rate, years)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.MortgageResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	payment := finance.Round2(finance.AmortizedPayment(amount, rate, years))
	months := years * 12
	total := payment * months

	result := domain.MortgageResult{
		MonthlyPayment: payment,
		TotalPayment:   finance.Round2(total),
		TotalInterest:  finance.Round2(total - amount),
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(data)); err != nil {
			s.logger.Warn("failed to cache mortgage result", slog.String("error", err.Error()))
		}
	}

	// Saving the record is not critical; the caller still gets the result.
	record := domain.CalculationRecord{
		LoanAmount:   amount,
		InterestRate: rate,
		LoanTerm:     years,
		Result:       result,
	}
	if err := s.repo.Save(record); err != nil {
		s.logger.Warn("failed to save mortgage calculation", slog.String("error", err.Error()))
	}

	return result, nil
}

// Schedule computes one page of the amortization schedule plus whole-loan
// summary figures. Non-positive page or pageSize fall back to the defaults;
// a page past the end yields an empty schedule with a valid summary, and
// pagination values beyond the longest possible schedule behave the same.
func (s *MortgageService) Schedule(input domain.ScheduleInput) (domain.ScheduleResult, error) {
	amount, rate, years, err := validateLoanInput(input.MortgageInput)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	page := clampPageParam(input.Page, DefaultSchedulePage, MaxScheduleMonths+1)
	pageSize := clampPageParam(input.PageSize, DefaultSchedulePageSize, MaxScheduleMonths)

	key := fmt.Sprintf("schedule:%g:%g:%g:%d:%d", amount, rate, years, page, pageSize)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.ScheduleResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	entries := finance.AmortizationSchedule(amount, rate, years)
	months := len(entries)

	var totalInterest, totalPrincipal float64
	for _, e := range entries {
		totalInterest += e.Interest
		totalPrincipal += e.Principal
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > months {
		end = months
	}
	pageEntries := []domain.ScheduleEntry{}
	if start < months {
		pageEntries = entries[start:end]
	}

	payment := finance.AmortizedPayment(amount, rate, years)
	result := domain.ScheduleResult{
		Schedule: pageEntries,
		Summary: domain.ScheduleSummary{
			TotalMonths:    months,
			MonthlyPayment: payment,
			TotalPayment:   payment * float64(months),
			TotalInterest:  totalInterest,
			TotalPrincipal: totalPrincipal,
			CurrentPage:    page,
			TotalPages:     (months + pageSize - 1) / pageSize,
			PageSize:       pageSize,
		},
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(data)); err != nil {
			s.logger.Warn("failed to cache schedule page", slog.String("error", err.Error()))
		}
	}

	return result, nil
}
