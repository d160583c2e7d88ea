package loan

import (
	"context"
	"time"

	"github.com/nidhisakhi/backend/internal/domain/pricing"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusClosed    Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDisbursed, StatusClosed:
		return true
	}
	return false
}

// transitions lists the statuses reachable from each state.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusDisbursed, StatusRejected},
	StatusDisbursed: {StatusClosed},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Entity struct {
	ID                      string                 `json:"id"`
	UserID                  string                 `json:"userId"`
	LoanType                pricing.LoanType       `json:"loanType"`
	Amount                  float64                `json:"amount"`
	InterestRate            float64                `json:"interestRate"`
	TenureMonths            int                    `json:"tenure"`
	Status                  Status                 `json:"status"`
	MonthlyIncome           float64                `json:"monthlyIncome"`
	EmploymentType          pricing.EmploymentType `json:"employmentType"`
	EmploymentDurationYears float64                `json:"employmentDuration"`
	ExistingEMI             float64                `json:"existingEmi"`
	CreditScore             int                    `json:"creditScore"`
	Documents               []string               `json:"documents"`
	RejectionReason         string                 `json:"rejectionReason,omitempty"`
	ApplicationDate         time.Time              `json:"applicationDate"`
	ApprovalDate            *time.Time             `json:"approvalDate,omitempty"`
	DisbursementDate        *time.Time             `json:"disbursementDate,omitempty"`
	CreatedAt               time.Time              `json:"createdAt"`
	UpdatedAt               time.Time              `json:"updatedAt"`
}

type ApplicationInput struct {
	LoanType                pricing.LoanType       `json:"loanType" binding:"required"`
	Amount                  float64                `json:"amount" binding:"required,gt=0"`
	TenureMonths            int                    `json:"tenure" binding:"required,gt=0,lte=360"`
	MonthlyIncome           float64                `json:"monthlyIncome" binding:"gte=0"`
	EmploymentType          pricing.EmploymentType `json:"employmentType" binding:"required"`
	EmploymentDurationYears float64                `json:"employmentDuration" binding:"gte=0"`
	ExistingEMI             float64                `json:"existingEmi" binding:"gte=0"`
	CreditScore             int                    `json:"creditScore" binding:"gte=0"`
	Documents               []string               `json:"documents"`
}

// CreateInput is what the repository persists for a new application.
type CreateInput struct {
	UserID                  string
	LoanType                pricing.LoanType
	Amount                  float64
	InterestRate            float64
	TenureMonths            int
	MonthlyIncome           float64
	EmploymentType          pricing.EmploymentType
	EmploymentDurationYears float64
	ExistingEMI             float64
	CreditScore             int
	Documents               []string
	ApplicationDate         time.Time
}

type StatusUpdate struct {
	Status          Status `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// StatusChange is the persisted effect of an admin status update.
type StatusChange struct {
	From             Status
	To               Status
	RejectionReason  string
	ApprovalDate     *time.Time
	DisbursementDate *time.Time
}

type Application struct {
	Loan         *Entity `json:"loan"`
	ProjectedEMI float64 `json:"projected_emi"`
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*Entity, error)
	GetByID(ctx context.Context, id string) (*Entity, error)
	ListByUser(ctx context.Context, userID string) ([]Entity, error)
	UpdateStatus(ctx context.Context, id string, change StatusChange) (*Entity, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte) error
}
