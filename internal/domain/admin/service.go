package admin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nidhisakhi/backend/internal/domain/contact"
	loandomain "github.com/nidhisakhi/backend/internal/domain/loan"
)

const (
	ActionLoanStatusUpdated    = "loan_status_updated"
	ActionContactStatusUpdated = "contact_status_updated"

	TargetLoan    = "loan"
	TargetContact = "contact"

	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

type LoanService interface {
	UpdateStatus(ctx context.Context, loanID string, in loandomain.StatusUpdate) (*loandomain.Entity, error)
}

type ContactService interface {
	List(ctx context.Context, status contact.Status) ([]contact.Entity, error)
	UpdateStatus(ctx context.Context, id string, status contact.Status) (*contact.Entity, error)
}

type AuditRepository interface {
	Log(ctx context.Context, in AuditLogInput) error
	List(ctx context.Context, limit int) ([]AuditEntry, error)
}

type AuditLogInput struct {
	AdminUserID string
	Action      string
	TargetType  string
	TargetID    string
	Payload     []byte
}

type AuditEntry struct {
	ID          int64           `json:"id"`
	AdminUserID string          `json:"adminUserId"`
	Action      string          `json:"action"`
	TargetType  string          `json:"targetType"`
	TargetID    string          `json:"targetId"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Service fronts the back-office operations and records an audit entry for
// every successful mutation. Audit write failures never fail the mutation.
type Service struct {
	loans     LoanService
	contacts  ContactService
	auditRepo AuditRepository
}

func NewService(loans LoanService, contacts ContactService, auditRepo AuditRepository) *Service {
	return &Service{loans: loans, contacts: contacts, auditRepo: auditRepo}
}

func (s *Service) UpdateLoanStatus(ctx context.Context, adminUserID, loanID string, in loandomain.StatusUpdate) (*loandomain.Entity, error) {
	updated, err := s.loans.UpdateStatus(ctx, loanID, in)
	if err != nil {
		return nil, err
	}
	payload, _ := json.Marshal(map[string]any{"status": updated.Status, "rejection_reason": updated.RejectionReason})
	s.record(ctx, AuditLogInput{
		AdminUserID: adminUserID,
		Action:      ActionLoanStatusUpdated,
		TargetType:  TargetLoan,
		TargetID:    updated.ID,
		Payload:     payload,
	})
	return updated, nil
}

func (s *Service) ListContacts(ctx context.Context, status contact.Status) ([]contact.Entity, error) {
	return s.contacts.List(ctx, status)
}

func (s *Service) UpdateContactStatus(ctx context.Context, adminUserID, contactID string, status contact.Status) (*contact.Entity, error) {
	updated, err := s.contacts.UpdateStatus(ctx, contactID, status)
	if err != nil {
		return nil, err
	}
	payload, _ := json.Marshal(map[string]any{"status": updated.Status})
	s.record(ctx, AuditLogInput{
		AdminUserID: adminUserID,
		Action:      ActionContactStatusUpdated,
		TargetType:  TargetContact,
		TargetID:    updated.ID,
		Payload:     payload,
	})
	return updated, nil
}

// AuditTrail returns the newest entries first. limit is clamped to
// [1, MaxAuditLimit] with DefaultAuditLimit for non-positive values.
func (s *Service) AuditTrail(ctx context.Context, limit int) ([]AuditEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}
	return s.auditRepo.List(ctx, limit)
}

func (s *Service) record(ctx context.Context, in AuditLogInput) {
	if s.auditRepo == nil {
		return
	}
	_ = s.auditRepo.Log(ctx, in)
}
