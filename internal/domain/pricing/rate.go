package pricing

type Tier string

const (
	TierPrime     Tier = "prime"
	TierNearPrime Tier = "near-prime"
	TierStandard  Tier = "standard"

	primeMinScore     = 750
	nearPrimeMinScore = 700

	// FallbackRate applies to loan types missing from the rate card.
	FallbackRate = 12.99

	selfEmployedSurcharge = 1.0
)

type tierRates struct {
	prime     float64
	nearPrime float64
	standard  float64
}

func (r tierRates) forTier(t Tier) float64 {
	switch t {
	case TierPrime:
		return r.prime
	case TierNearPrime:
		return r.nearPrime
	default:
		return r.standard
	}
}

var rateCard = map[LoanType]tierRates{
	LoanTypePersonal:  {prime: 10.99, nearPrime: 12.99, standard: 14.99},
	LoanTypeHome:      {prime: 7.99, nearPrime: 8.99, standard: 9.99},
	LoanTypeBusiness:  {prime: 11.99, nearPrime: 13.99, standard: 15.99},
	LoanTypeEducation: {prime: 8.99, nearPrime: 9.99, standard: 11.99},
	LoanTypeCar:       {prime: 8.50, nearPrime: 9.50, standard: 10.50},
}

// TierFor buckets a credit score. Lower bounds are inclusive and scores outside
// the bureau range land in the standard tier.
func TierFor(creditScore int) Tier {
	switch {
	case creditScore >= primeMinScore:
		return TierPrime
	case creditScore >= nearPrimeMinScore:
		return TierNearPrime
	default:
		return TierStandard
	}
}

// ApplicationRate is the annual rate fixed on a submitted loan application.
// It carries no employment surcharge.
func ApplicationRate(loanType LoanType, creditScore int) float64 {
	rates, ok := rateCard[loanType]
	if !ok {
		return FallbackRate
	}
	return rates.forTier(TierFor(creditScore))
}

// EligibilityRate is the annual rate quoted by an eligibility check:
// the application rate plus one point for self-employed applicants.
func EligibilityRate(loanType LoanType, creditScore int, employment EmploymentType) float64 {
	rate := ApplicationRate(loanType, creditScore)
	if employment == EmploymentSelfEmployed {
		rate += selfEmployedSurcharge
	}
	return rate
}
