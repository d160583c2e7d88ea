package loan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/domain/pricing"
)

const (
	TopicLoanSubmitted     = "loan_submitted"
	TopicLoanStatusChanged = "loan_status_changed"
)

var (
	ErrNotFound              = errors.New("loan not found")
	ErrForbidden             = errors.New("loan belongs to another user")
	ErrInvalidLoanType       = errors.New("invalid loan type")
	ErrInvalidEmploymentType = errors.New("invalid employment type")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidTenure         = errors.New("tenure must be between 1 and 360 months")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrReasonRequired        = errors.New("rejection reason required")
)

type Service struct {
	loanRepo   Repository
	outboxRepo OutboxRepository
	now        func() time.Time
}

func NewService(loanRepo Repository, outboxRepo OutboxRepository) *Service {
	return &Service{
		loanRepo:   loanRepo,
		outboxRepo: outboxRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a pending application priced off the rate card. The applied
// rate carries no employment surcharge.
func (s *Service) Create(ctx context.Context, userID string, in ApplicationInput) (*Application, error) {
	if err := validateApplication(in); err != nil {
		return nil, err
	}

	rate := pricing.ApplicationRate(in.LoanType, in.CreditScore)
	projected, err := pricing.EMI(in.Amount, rate, in.TenureMonths)
	if err != nil {
		return nil, fmt.Errorf("project emi: %w", err)
	}

	documents := in.Documents
	if documents == nil {
		documents = []string{}
	}

	created, err := s.loanRepo.Create(ctx, CreateInput{
		UserID:                  userID,
		LoanType:                in.LoanType,
		Amount:                  in.Amount,
		InterestRate:            rate,
		TenureMonths:            in.TenureMonths,
		MonthlyIncome:           in.MonthlyIncome,
		EmploymentType:          in.EmploymentType,
		EmploymentDurationYears: in.EmploymentDurationYears,
		ExistingEMI:             in.ExistingEMI,
		CreditScore:             in.CreditScore,
		Documents:               documents,
		ApplicationDate:         s.now(),
	})
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{
		"loan_id":   created.ID,
		"user_id":   created.UserID,
		"loan_type": created.LoanType,
		"amount":    created.Amount,
	})
	if err := s.outboxRepo.Enqueue(ctx, TopicLoanSubmitted, payload); err != nil {
		return nil, err
	}

	return &Application{Loan: created, ProjectedEMI: pricing.RoundCurrency(projected)}, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Entity, error) {
	return s.loanRepo.ListByUser(ctx, userID)
}

func (s *Service) GetForUser(ctx context.Context, userID, loanID string) (*Entity, error) {
	l, err := s.get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.UserID != userID {
		return nil, ErrForbidden
	}
	return l, nil
}

func (s *Service) Schedule(ctx context.Context, userID, loanID string) (pricing.AmortizationResult, error) {
	l, err := s.GetForUser(ctx, userID, loanID)
	if err != nil {
		return pricing.AmortizationResult{}, err
	}
	return pricing.Amortize(l.Amount, l.InterestRate, l.TenureMonths)
}

func (s *Service) UpdateStatus(ctx context.Context, loanID string, in StatusUpdate) (*Entity, error) {
	if !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	reason := strings.TrimSpace(in.RejectionReason)
	if in.Status == StatusRejected && reason == "" {
		return nil, ErrReasonRequired
	}

	current, err := s.get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, in.Status) {
		return nil, ErrInvalidTransition
	}

	change := StatusChange{From: current.Status, To: in.Status}
	now := s.now()
	switch in.Status {
	case StatusApproved:
		change.ApprovalDate = &now
	case StatusDisbursed:
		change.DisbursementDate = &now
	case StatusRejected:
		change.RejectionReason = reason
	}

	updated, err := s.loanRepo.UpdateStatus(ctx, loanID, change)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// status moved underneath us
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{
		"loan_id": updated.ID,
		"user_id": updated.UserID,
		"from":    change.From,
		"to":      change.To,
		"reason":  change.RejectionReason,
	})
	if err := s.outboxRepo.Enqueue(ctx, TopicLoanStatusChanged, payload); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) get(ctx context.Context, loanID string) (*Entity, error) {
	l, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func validateApplication(in ApplicationInput) error {
	switch {
	case !in.LoanType.Valid():
		return ErrInvalidLoanType
	case !in.EmploymentType.Valid():
		return ErrInvalidEmploymentType
	case in.Amount <= 0:
		return ErrInvalidAmount
	case in.TenureMonths <= 0 || in.TenureMonths > pricing.MaxTenureMonths:
		return ErrInvalidTenure
	}
	return nil
}
