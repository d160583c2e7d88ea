// Package bank exposes partner bank products and branches, and compares
// offers for a requested loan.
package bank

type Product string

const (
	ProductPersonal Product = "personal"
	ProductHome     Product = "home"
	ProductAuto     Product = "auto"
)

func (p Product) Valid() bool {
	switch p {
	case ProductPersonal, ProductHome, ProductAuto:
		return true
	}
	return false
}

type FeeType string

const (
	FeePercentage FeeType = "percentage"
	FeeFixed      FeeType = "fixed"
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type ProcessingFee struct {
	Type  FeeType `json:"type"`
	Value float64 `json:"value"`
}

type LoanProduct struct {
	InterestType    string        `json:"interestType"`
	InterestRange   Range         `json:"interestRange"`
	PrincipalLimits Range         `json:"principalLimits"`
	TenureRange     Range         `json:"tenureRange"`
	ProcessingFee   ProcessingFee `json:"processingFee"`
	Features        []string      `json:"features"`
	Eligibility     []string      `json:"eligibility"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Branch struct {
	ID           string   `json:"id"`
	BankID       string   `json:"bankId"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Pincode      string   `json:"pincode"`
	Phone        string   `json:"phone"`
	Location     Location `json:"location"`
	WorkingHours string   `json:"workingHours"`
}

type Bank struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Logo     string                  `json:"logo"`
	Loans    map[Product]LoanProduct `json:"loans"`
	Branches []Branch                `json:"branches"`
}

type Comparison struct {
	BankID         string  `json:"bankId"`
	BankName       string  `json:"bankName"`
	InterestType   string  `json:"interestType"`
	InterestRate   float64 `json:"interestRate"`
	EMI            float64 `json:"emi"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalAmount    float64 `json:"totalAmount"`
	ProcessingFee  float64 `json:"processingFee"`
	WithinLimits   bool    `json:"withinLimits"`
	PrincipalRange Range   `json:"principalLimits"`
	TenureRange    Range   `json:"tenureRange"`
}

type BranchFilter struct {
	BankID string
	City   string
}

type NearbyBranch struct {
	Branch
	DistanceKM float64 `json:"distanceKm"`
}
