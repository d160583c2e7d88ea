// Package contact stores contact-form submissions and lets admins triage them.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nidhisakhi/backend/internal/db"
)

// emailValidator accepts bare addresses only; display-name forms are rejected.
var emailValidator = validator.New()

const (
	TopicContactSubmitted = "contact_submitted"
	SubmittedMessage      = "Your message has been submitted successfully"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidEmail  = errors.New("invalid email")
)

// FieldError reports a missing required field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Entity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, in Submission, submittedAt time.Time) (*Entity, error)
	List(ctx context.Context, status Status) ([]Entity, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Entity, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte) error
}

type Service struct {
	repo   Repository
	outbox OutboxRepository
	now    func() time.Time
}

func NewService(repo Repository, outbox OutboxRepository) *Service {
	return &Service{repo: repo, outbox: outbox, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) Submit(ctx context.Context, in Submission) (*Entity, error) {
	in = normalize(in)
	if err := validate(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in, s.now())
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{
		"contact_id": created.ID,
		"email":      created.Email,
		"subject":    created.Subject,
	})
	if err := s.outbox.Enqueue(ctx, TopicContactSubmitted, payload); err != nil {
		return nil, err
	}
	return created, nil
}

// List returns submissions, newest first. An empty status lists everything.
func (s *Service) List(ctx context.Context, status Status) ([]Entity, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Entity, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func normalize(in Submission) Submission {
	return Submission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
}

func validate(in Submission) error {
	switch {
	case in.Name == "":
		return &FieldError{Field: "name"}
	case in.Email == "":
		return &FieldError{Field: "email"}
	case in.Phone == "":
		return &FieldError{Field: "phone"}
	case in.Subject == "":
		return &FieldError{Field: "subject"}
	case strings.TrimSpace(in.Message) == "":
		return &FieldError{Field: "message"}
	}
	if err := emailValidator.Var(in.Email, "email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
