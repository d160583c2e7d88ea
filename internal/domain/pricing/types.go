// Package pricing holds the loan eligibility and pricing engine: credit-tier
// rate selection, the eligibility scorecard, EMI amortization and the
// eligibility decision that combines them. Everything here is pure and safe for
// concurrent use.
package pricing

type LoanType string

const (
	LoanTypePersonal  LoanType = "personal"
	LoanTypeHome      LoanType = "home"
	LoanTypeBusiness  LoanType = "business"
	LoanTypeEducation LoanType = "education"
	LoanTypeCar       LoanType = "car"
)

var LoanTypes = []LoanType{LoanTypePersonal, LoanTypeHome, LoanTypeBusiness, LoanTypeEducation, LoanTypeCar}

func (t LoanType) Valid() bool {
	for _, lt := range LoanTypes {
		if lt == t {
			return true
		}
	}
	return false
}

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "salaried"
	EmploymentSelfEmployed EmploymentType = "self-employed"
	EmploymentBusiness     EmploymentType = "business"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusiness:
		return true
	}
	return false
}

// Profile is the applicant data the engine scores. It is never persisted here.
type Profile struct {
	Age                     int
	MonthlyIncome           float64
	EmploymentType          EmploymentType
	EmploymentDurationYears float64
	CreditScore             int
	ExistingMonthlyEMI      float64
	LoanType                LoanType
}

type BandScore struct {
	Band   string `json:"band"`
	Points int    `json:"points"`
}

type ScoreBreakdown struct {
	Total   int         `json:"total"`
	Bands   []BandScore `json:"bands"`
	Reasons []string    `json:"reasons"`
}

type Installment struct {
	Period    int     `json:"month"`
	EMI       float64 `json:"emi"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type AmortizationResult struct {
	EMI           float64       `json:"emi"`
	TotalInterest float64       `json:"totalInterest"`
	TotalAmount   float64       `json:"totalAmount"`
	Schedule      []Installment `json:"amortizationSchedule"`
}

// Verdict is the outcome of an eligibility check. MaxEligibleAmount and
// SuggestedEMI are rounded to whole currency units; the Raw fields keep the
// unrounded values for callers that compose further.
type Verdict struct {
	Eligible          bool     `json:"eligible"`
	Score             int      `json:"score"`
	Message           string   `json:"message"`
	MaxEligibleAmount float64  `json:"maxEligibleAmount"`
	SuggestedEMI      float64  `json:"suggestedEmi"`
	InterestRate      float64  `json:"interestRate"`
	Reasons           []string `json:"reasons,omitempty"`

	RawMaxEligibleAmount float64 `json:"-"`
	RawSuggestedEMI      float64 `json:"-"`
}
