package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	admindomain "github.com/nidhisakhi/backend/internal/domain/admin"
)

type AdminAuditRepository struct {
	pool *pgxpool.Pool
}

func NewAdminAuditRepository(pool *pgxpool.Pool) *AdminAuditRepository {
	return &AdminAuditRepository{pool: pool}
}

func (r *AdminAuditRepository) Log(ctx context.Context, in admindomain.AuditLogInput) error {
	q := `
INSERT INTO admin_audit_logs (admin_user_id, action, target_type, target_id, payload)
VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5::jsonb)
`
	_, err := r.pool.Exec(ctx, q, in.AdminUserID, in.Action, in.TargetType, in.TargetID, in.Payload)
	return err
}

func (r *AdminAuditRepository) List(ctx context.Context, limit int) ([]admindomain.AuditEntry, error) {
	q := `
SELECT id, COALESCE(admin_user_id::text, ''), action, target_type, target_id, payload, created_at
FROM admin_audit_logs
ORDER BY id DESC
LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []admindomain.AuditEntry{}
	for rows.Next() {
		var e admindomain.AuditEntry
		var payload []byte
		if err := rows.Scan(&e.ID, &e.AdminUserID, &e.Action, &e.TargetType, &e.TargetID, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}
