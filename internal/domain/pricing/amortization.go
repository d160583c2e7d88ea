package pricing

import (
	"errors"
	"math"
)

// MaxTenureMonths is the longest tenure the calculator schedules (30 years).
const MaxTenureMonths = 360

var (
	ErrNegativePrincipal = errors.New("principal must not be negative")
	ErrNegativeRate      = errors.New("interest rate must not be negative")
	ErrInvalidTenure     = errors.New("tenure must be between 1 and 360 months")
	ErrNonFinite         = errors.New("amounts must be finite numbers")
)

func validateLoanTerms(principal, annualRatePercent float64, tenureMonths int) error {
	switch {
	case math.IsNaN(principal) || math.IsInf(principal, 0),
		math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0):
		return ErrNonFinite
	case principal < 0:
		return ErrNegativePrincipal
	case annualRatePercent < 0:
		return ErrNegativeRate
	case tenureMonths <= 0 || tenureMonths > MaxTenureMonths:
		return ErrInvalidTenure
	}
	return nil
}

// EMI returns the equated monthly installment for a fully amortizing loan.
//
//	r   = annualRatePercent / 12 / 100
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate splits the principal evenly across the tenure.
func EMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if err := validateLoanTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	installment := emi(principal, monthlyRate(annualRatePercent), tenureMonths)
	if !finite(installment) {
		return 0, ErrNonFinite
	}
	return installment, nil
}

// Amortize computes the EMI and the month-by-month schedule. The schedule has
// exactly tenureMonths entries; the final balance is zero up to float error.
func Amortize(principal, annualRatePercent float64, tenureMonths int) (AmortizationResult, error) {
	if err := validateLoanTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return AmortizationResult{}, err
	}

	r := monthlyRate(annualRatePercent)
	installment := emi(principal, r, tenureMonths)
	if !finite(installment) || !finite(installment*float64(tenureMonths)) {
		return AmortizationResult{}, ErrNonFinite
	}

	schedule := make([]Installment, 0, tenureMonths)
	balance := principal
	totalInterest := 0.0
	for period := 1; period <= tenureMonths; period++ {
		interest := balance * r
		principalPart := installment - interest
		balance -= principalPart
		totalInterest += interest

		schedule = append(schedule, Installment{
			Period:    period,
			EMI:       installment,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return AmortizationResult{
		EMI:           installment,
		TotalInterest: totalInterest,
		TotalAmount:   principal + totalInterest,
		Schedule:      schedule,
	}, nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// emi evaluates the annuity formula as P*r / (1 - (1+r)^-n). Growth is taken
// through Log1p/Expm1 so a rate too small to move 1+r still yields a nonzero
// denominator.
func emi(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	denom := -math.Expm1(-float64(n) * math.Log1p(r))
	if denom == 0 {
		return principal / float64(n)
	}
	return principal * r / denom
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
