package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// MaxDebtServiceRatio caps total EMI obligations at half of monthly income.
	MaxDebtServiceRatio = 0.5
	// ReferenceTenureMonths is the tenure used to size the eligible principal
	// and the suggested EMI.
	ReferenceTenureMonths = 36

	MessageEligible   = "Congratulations! You are eligible for a loan."
	MessageIneligible = "Based on the information provided, you do not meet the eligibility criteria at this time."
)

// Evaluate produces the eligibility verdict for a validated profile.
//
// The eligible principal is the free monthly capacity times the 36 month
// reference tenure. It is a flat multiple, not an inversion of the EMI formula.
func Evaluate(p Profile) (Verdict, error) {
	breakdown := Score(p)
	eligible := IsEligible(breakdown.Total)
	rate := EligibilityRate(p.LoanType, p.CreditScore, p.EmploymentType)

	capacity := p.MonthlyIncome*MaxDebtServiceRatio - p.ExistingMonthlyEMI
	maxEligible := math.Max(0, capacity*ReferenceTenureMonths)
	if !finite(maxEligible) {
		return Verdict{}, ErrNonFinite
	}

	suggested := 0.0
	if maxEligible > 0 {
		installment, err := EMI(maxEligible, rate, ReferenceTenureMonths)
		if err != nil {
			return Verdict{}, err
		}
		suggested = installment
	}

	v := Verdict{
		Eligible:             eligible,
		Score:                breakdown.Total,
		MaxEligibleAmount:    RoundCurrency(maxEligible),
		SuggestedEMI:         RoundCurrency(suggested),
		InterestRate:         rate,
		RawMaxEligibleAmount: maxEligible,
		RawSuggestedEMI:      suggested,
	}
	if eligible {
		v.Message = MessageEligible
	} else {
		v.Message = MessageIneligible
		v.Reasons = breakdown.Reasons
	}
	return v, nil
}

// RoundCurrency rounds to the nearest whole currency unit, halves away from zero.
func RoundCurrency(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}
