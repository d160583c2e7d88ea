package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/domain/loan"
)

type LoanRepository struct {
	pool *pgxpool.Pool
}

func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

const loanColumns = `
  id, user_id, loan_type, amount::text, interest_rate::text, tenure_months, status,
  monthly_income::text, employment_type, employment_duration::text, existing_emi::text,
  credit_score, documents, rejection_reason, application_date, approval_date,
  disbursement_date, created_at, updated_at`

func scanLoan(row pgx.Row) (*loan.Entity, error) {
	out := &loan.Entity{}
	var amount, rate, income, duration, emi numericText
	err := row.Scan(
		&out.ID, &out.UserID, &out.LoanType, &amount.raw, &rate.raw, &out.TenureMonths, &out.Status,
		&income.raw, &out.EmploymentType, &duration.raw, &emi.raw,
		&out.CreditScore, &out.Documents, &out.RejectionReason, &out.ApplicationDate, &out.ApprovalDate,
		&out.DisbursementDate, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, db.Translate(err)
	}

	for _, f := range []struct {
		src *numericText
		dst *float64
	}{
		{&amount, &out.Amount},
		{&rate, &out.InterestRate},
		{&income, &out.MonthlyIncome},
		{&duration, &out.EmploymentDurationYears},
		{&emi, &out.ExistingEMI},
	} {
		v, err := f.src.float()
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	if out.Documents == nil {
		out.Documents = []string{}
	}
	return out, nil
}

func (r *LoanRepository) Create(ctx context.Context, in loan.CreateInput) (*loan.Entity, error) {
	q := `
INSERT INTO loan_applications (
  user_id, loan_type, amount, interest_rate, tenure_months, monthly_income,
  employment_type, employment_duration, existing_emi, credit_score, documents, application_date
) VALUES ($1,$2,$3::numeric,$4::numeric,$5,$6::numeric,$7,$8::numeric,$9::numeric,$10,$11,$12)
RETURNING` + loanColumns
	return scanLoan(r.pool.QueryRow(ctx, q,
		in.UserID, in.LoanType, numericArg(in.Amount), numericArg(in.InterestRate), in.TenureMonths,
		numericArg(in.MonthlyIncome), in.EmploymentType, numericArg(in.EmploymentDurationYears),
		numericArg(in.ExistingEMI), in.CreditScore, in.Documents, in.ApplicationDate,
	))
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loan.Entity, error) {
	q := `SELECT` + loanColumns + ` FROM loan_applications WHERE id = $1`
	return scanLoan(r.pool.QueryRow(ctx, q, id))
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID string) ([]loan.Entity, error) {
	q := `SELECT` + loanColumns + `
FROM loan_applications
WHERE user_id = $1
ORDER BY application_date DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []loan.Entity{}
	for rows.Next() {
		e, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// UpdateStatus only applies when the row is still in change.From, so two
// concurrent admins cannot both move the same loan. A lost race surfaces as
// db.ErrNotFound.
func (r *LoanRepository) UpdateStatus(ctx context.Context, id string, change loan.StatusChange) (*loan.Entity, error) {
	q := `
UPDATE loan_applications
SET status = $3,
    rejection_reason = CASE WHEN $4 <> '' THEN $4 ELSE rejection_reason END,
    approval_date = COALESCE($5, approval_date),
    disbursement_date = COALESCE($6, disbursement_date),
    updated_at = NOW()
WHERE id = $1 AND status = $2
RETURNING` + loanColumns
	return scanLoan(r.pool.QueryRow(ctx, q,
		id, change.From, change.To, change.RejectionReason, change.ApprovalDate, change.DisbursementDate,
	))
}
