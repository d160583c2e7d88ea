package loan

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoanRepo struct {
	loans map[string]*Entity
	order []string
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: map[string]*Entity{}}
}

func (r *fakeLoanRepo) Create(_ context.Context, in CreateInput) (*Entity, error) {
	id := fmt.Sprintf("loan-%d", len(r.loans)+1)
	e := &Entity{
		ID:                      id,
		UserID:                  in.UserID,
		LoanType:                in.LoanType,
		Amount:                  in.Amount,
		InterestRate:            in.InterestRate,
		TenureMonths:            in.TenureMonths,
		Status:                  StatusPending,
		MonthlyIncome:           in.MonthlyIncome,
		EmploymentType:          in.EmploymentType,
		EmploymentDurationYears: in.EmploymentDurationYears,
		ExistingEMI:             in.ExistingEMI,
		CreditScore:             in.CreditScore,
		Documents:               in.Documents,
		ApplicationDate:         in.ApplicationDate,
	}
	r.loans[id] = e
	r.order = append([]string{id}, r.order...)
	return e, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id string) (*Entity, error) {
	if e, ok := r.loans[id]; ok {
		return e, nil
	}
	return nil, db.ErrNotFound
}

func (r *fakeLoanRepo) ListByUser(_ context.Context, userID string) ([]Entity, error) {
	out := []Entity{}
	for _, id := range r.order {
		if r.loans[id].UserID == userID {
			out = append(out, *r.loans[id])
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) UpdateStatus(_ context.Context, id string, change StatusChange) (*Entity, error) {
	e, ok := r.loans[id]
	if !ok || e.Status != change.From {
		return nil, db.ErrNotFound
	}
	e.Status = change.To
	if change.RejectionReason != "" {
		e.RejectionReason = change.RejectionReason
	}
	if change.ApprovalDate != nil {
		e.ApprovalDate = change.ApprovalDate
	}
	if change.DisbursementDate != nil {
		e.DisbursementDate = change.DisbursementDate
	}
	return e, nil
}

type enqueued struct {
	topic   string
	payload []byte
}

type fakeOutbox struct {
	jobs []enqueued
}

func (o *fakeOutbox) Enqueue(_ context.Context, topic string, payload []byte) error {
	o.jobs = append(o.jobs, enqueued{topic: topic, payload: payload})
	return nil
}

func newTestService() (*Service, *fakeLoanRepo, *fakeOutbox) {
	repo := newFakeLoanRepo()
	outbox := &fakeOutbox{}
	svc := NewService(repo, outbox)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, repo, outbox
}

func validInput() ApplicationInput {
	return ApplicationInput{
		LoanType:                pricing.LoanTypePersonal,
		Amount:                  300000,
		TenureMonths:            36,
		MonthlyIncome:           60000,
		EmploymentType:          pricing.EmploymentSelfEmployed,
		EmploymentDurationYears: 5,
		CreditScore:             760,
	}
}

func TestCreateUsesApplicationRate(t *testing.T) {
	svc, _, outbox := newTestService()

	app, err := svc.Create(context.Background(), "u-1", validInput())
	require.NoError(t, err)

	assert.Equal(t, 10.99, app.Loan.InterestRate)
	assert.Equal(t, StatusPending, app.Loan.Status)
	assert.Equal(t, 0.0, app.Loan.ExistingEMI)
	assert.Equal(t, []string{}, app.Loan.Documents)
	assert.InDelta(t, 9821, app.ProjectedEMI, 2)

	require.Len(t, outbox.jobs, 1)
	assert.Equal(t, TopicLoanSubmitted, outbox.jobs[0].topic)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(outbox.jobs[0].payload, &payload))
	assert.Equal(t, app.Loan.ID, payload["loan_id"])
}

func TestCreateValidation(t *testing.T) {
	svc, _, outbox := newTestService()
	ctx := context.Background()

	in := validInput()
	in.LoanType = "boat"
	_, err := svc.Create(ctx, "u-1", in)
	assert.ErrorIs(t, err, ErrInvalidLoanType)

	in = validInput()
	in.EmploymentType = "retired"
	_, err = svc.Create(ctx, "u-1", in)
	assert.ErrorIs(t, err, ErrInvalidEmploymentType)

	in = validInput()
	in.Amount = 0
	_, err = svc.Create(ctx, "u-1", in)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	in = validInput()
	in.TenureMonths = 0
	_, err = svc.Create(ctx, "u-1", in)
	assert.ErrorIs(t, err, ErrInvalidTenure)

	in = validInput()
	in.TenureMonths = 1 << 40
	_, err = svc.Create(ctx, "u-1", in)
	assert.ErrorIs(t, err, ErrInvalidTenure)

	assert.Empty(t, outbox.jobs)
}

func TestListAndGetForUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "u-1", validInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, "u-1", validInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-2", validInput())
	require.NoError(t, err)

	loans, err := svc.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, second.Loan.ID, loans[0].ID)

	got, err := svc.GetForUser(ctx, "u-1", first.Loan.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Loan.ID, got.ID)

	_, err = svc.GetForUser(ctx, "u-2", first.Loan.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetForUser(ctx, "u-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSchedule(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	app, err := svc.Create(ctx, "u-1", validInput())
	require.NoError(t, err)

	sched, err := svc.Schedule(ctx, "u-1", app.Loan.ID)
	require.NoError(t, err)
	assert.Len(t, sched.Schedule, 36)
	assert.InDelta(t, app.ProjectedEMI, sched.EMI, 1)

	_, err = svc.Schedule(ctx, "u-2", app.Loan.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _, outbox := newTestService()
	ctx := context.Background()

	app, err := svc.Create(ctx, "u-1", validInput())
	require.NoError(t, err)
	id := app.Loan.ID

	_, err = svc.UpdateStatus(ctx, id, StatusUpdate{Status: StatusClosed})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	approved, err := svc.UpdateStatus(ctx, id, StatusUpdate{Status: StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovalDate)

	disbursed, err := svc.UpdateStatus(ctx, id, StatusUpdate{Status: StatusDisbursed})
	require.NoError(t, err)
	assert.NotNil(t, disbursed.DisbursementDate)

	closed, err := svc.UpdateStatus(ctx, id, StatusUpdate{Status: StatusClosed})
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, closed.Status)

	_, err = svc.UpdateStatus(ctx, id, StatusUpdate{Status: StatusRejected, RejectionReason: "late"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	topics := []string{}
	for _, j := range outbox.jobs {
		topics = append(topics, j.topic)
	}
	assert.Equal(t, []string{TopicLoanSubmitted, TopicLoanStatusChanged, TopicLoanStatusChanged, TopicLoanStatusChanged}, topics)
}

func TestUpdateStatusRejection(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	app, err := svc.Create(ctx, "u-1", validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, app.Loan.ID, StatusUpdate{Status: StatusRejected, RejectionReason: "  "})
	assert.ErrorIs(t, err, ErrReasonRequired)

	rejected, err := svc.UpdateStatus(ctx, app.Loan.ID, StatusUpdate{Status: StatusRejected, RejectionReason: " income not verified "})
	require.NoError(t, err)
	assert.Equal(t, "income not verified", rejected.RejectionReason)

	_, err = svc.UpdateStatus(ctx, app.Loan.ID, StatusUpdate{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.UpdateStatus(ctx, "missing", StatusUpdate{Status: StatusApproved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusApproved, StatusRejected))
	assert.False(t, CanTransition(StatusPending, StatusDisbursed))
	assert.False(t, CanTransition(StatusRejected, StatusApproved))
	assert.False(t, CanTransition(StatusClosed, StatusPending))
}
