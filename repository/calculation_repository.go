package repository

import "move-calculator/domain"

// CalculationRepository stores completed mortgage calculations.
type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
}
