package pricing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEligibleSalariedApplicant(t *testing.T) {
	v, err := Evaluate(strongProfile())
	require.NoError(t, err)

	assert.True(t, v.Eligible)
	assert.Equal(t, 100, v.Score)
	assert.Equal(t, MessageEligible, v.Message)
	assert.Equal(t, 10.99, v.InterestRate)
	assert.Equal(t, 1080000.0, v.MaxEligibleAmount)
	assert.Nil(t, v.Reasons)

	emi, err := EMI(1080000, 10.99, ReferenceTenureMonths)
	require.NoError(t, err)
	assert.Equal(t, RoundCurrency(emi), v.SuggestedEMI)
	assert.InDelta(t, emi, v.RawSuggestedEMI, 1e-9)
}

func TestEvaluateIneligibleApplicant(t *testing.T) {
	v, err := Evaluate(Profile{
		Age:                     19,
		MonthlyIncome:           10000,
		EmploymentType:          EmploymentSelfEmployed,
		EmploymentDurationYears: 0.5,
		CreditScore:             600,
		ExistingMonthlyEMI:      6000,
		LoanType:                LoanTypePersonal,
	})
	require.NoError(t, err)

	assert.False(t, v.Eligible)
	assert.Equal(t, 5, v.Score)
	assert.Equal(t, MessageIneligible, v.Message)
	assert.InDelta(t, 15.99, v.InterestRate, 1e-9)
	assert.Equal(t, 0.0, v.MaxEligibleAmount)
	assert.Equal(t, 0.0, v.SuggestedEMI)
	assert.Len(t, v.Reasons, 5)
}

func TestEvaluateEligibleDoesNotDependOnAffordability(t *testing.T) {
	p := strongProfile()
	p.ExistingMonthlyEMI = 40000 // DTI 66%, capacity negative

	v, err := Evaluate(p)
	require.NoError(t, err)
	assert.Equal(t, 85, v.Score)
	assert.True(t, v.Eligible)
	assert.Equal(t, 0.0, v.MaxEligibleAmount)
	assert.Equal(t, 0.0, v.SuggestedEMI)
}

func TestEvaluateRejectsIncomeThatOverflows(t *testing.T) {
	p := strongProfile()
	p.MonthlyIncome = 1e307

	_, err := Evaluate(p)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestEvaluateRoundsDisplayAmounts(t *testing.T) {
	p := strongProfile()
	p.MonthlyIncome = 33333.33
	p.ExistingMonthlyEMI = 1000.01

	v, err := Evaluate(p)
	require.NoError(t, err)

	assert.InDelta(t, (33333.33*0.5-1000.01)*36, v.RawMaxEligibleAmount, 1e-6)
	assert.Equal(t, RoundCurrency(v.RawMaxEligibleAmount), v.MaxEligibleAmount)
	assert.Equal(t, RoundCurrency(v.RawSuggestedEMI), v.SuggestedEMI)
}

func TestEvaluateIsIdempotentAndConcurrencySafe(t *testing.T) {
	p := strongProfile()
	p.EmploymentType = EmploymentSelfEmployed
	want, err := Evaluate(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Verdict, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Evaluate(p)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 3.0, RoundCurrency(2.5))
	assert.Equal(t, 2.0, RoundCurrency(2.49))
	assert.Equal(t, 0.0, RoundCurrency(0))
	assert.Equal(t, 35353.0, RoundCurrency(35352.5))
}
