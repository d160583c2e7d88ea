package pricing

import "math"

const (
	// EligibilityThreshold is the minimum total score for an eligible verdict.
	EligibilityThreshold = 60

	BandAge        = "age"
	BandIncome     = "income"
	BandEmployment = "employment"
	BandCredit     = "credit"
	BandDTI        = "dti"

	ReasonAge        = "Age outside of preferred range (21-65 years)"
	ReasonIncome     = "Income below minimum requirement"
	ReasonEmployment = "Insufficient employment history"
	ReasonCredit     = "Low credit score"
	ReasonDTI        = "High debt-to-income ratio"

	creditFloorPoints = 5
)

// Score runs the five scorecard bands in a fixed order (age, income,
// employment, credit, DTI). A band that pays its floor adds its reason; the
// credit floor is 5 points, every other floor is 0.
func Score(p Profile) ScoreBreakdown {
	out := ScoreBreakdown{
		Bands:   make([]BandScore, 0, 5),
		Reasons: []string{},
	}

	add := func(band string, points, floor int, reason string) {
		out.Bands = append(out.Bands, BandScore{Band: band, Points: points})
		out.Total += points
		if points == floor {
			out.Reasons = append(out.Reasons, reason)
		}
	}

	add(BandAge, agePoints(p.Age), 0, ReasonAge)
	add(BandIncome, incomePoints(p.MonthlyIncome), 0, ReasonIncome)
	add(BandEmployment, employmentPoints(p.EmploymentDurationYears), 0, ReasonEmployment)
	add(BandCredit, creditPoints(p.CreditScore), creditFloorPoints, ReasonCredit)
	add(BandDTI, dtiPoints(DebtToIncome(p.ExistingMonthlyEMI, p.MonthlyIncome)), 0, ReasonDTI)

	return out
}

// IsEligible reports whether a total score clears the threshold.
func IsEligible(total int) bool {
	return total >= EligibilityThreshold
}

// DebtToIncome returns existing EMI as a percentage of monthly income.
// Zero or negative income yields +Inf so the DTI band pays nothing.
func DebtToIncome(existingEMI, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return math.Inf(1)
	}
	return existingEMI / monthlyIncome * 100
}

func agePoints(age int) int {
	switch {
	case age >= 21 && age <= 35:
		return 20
	case age > 35 && age <= 50:
		return 15
	case age > 50 && age <= 65:
		return 10
	default:
		return 0
	}
}

func incomePoints(income float64) int {
	switch {
	case income >= 50000:
		return 25
	case income >= 30000:
		return 20
	case income >= 15000:
		return 15
	default:
		return 0
	}
}

func employmentPoints(years float64) int {
	switch {
	case years >= 3:
		return 15
	case years >= 1:
		return 10
	default:
		return 0
	}
}

func creditPoints(score int) int {
	switch {
	case score >= 750:
		return 25
	case score >= 700:
		return 20
	case score >= 650:
		return 15
	default:
		return creditFloorPoints
	}
}

func dtiPoints(dti float64) int {
	switch {
	case dti < 30:
		return 15
	case dti < 50:
		return 10
	default:
		return 0
	}
}
