package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/domain/contact"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const contactColumns = `id, name, email, phone, subject, message, status, submitted_at, created_at, updated_at`

func scanContact(row pgx.Row) (*contact.Entity, error) {
	out := &contact.Entity{}
	err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Subject, &out.Message, &out.Status, &out.SubmittedAt, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, db.Translate(err)
	}
	return out, nil
}

func (r *ContactRepository) Create(ctx context.Context, in contact.Submission, submittedAt time.Time) (*contact.Entity, error) {
	q := `
INSERT INTO contacts (name, email, phone, subject, message, status, submitted_at)
VALUES ($1, $2, $3, $4, $5, 'new', $6)
RETURNING ` + contactColumns
	return scanContact(r.pool.QueryRow(ctx, q, in.Name, in.Email, in.Phone, in.Subject, in.Message, submittedAt))
}

func (r *ContactRepository) List(ctx context.Context, status contact.Status) ([]contact.Entity, error) {
	q := `
SELECT ` + contactColumns + `
FROM contacts
WHERE ($1 = '' OR status = $1)
ORDER BY submitted_at DESC`
	rows, err := r.pool.Query(ctx, q, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []contact.Entity{}
	for rows.Next() {
		e, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status contact.Status) (*contact.Entity, error) {
	q := `UPDATE contacts SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + contactColumns
	return scanContact(r.pool.QueryRow(ctx, q, id, string(status)))
}
