package postgres

import (
	"context"
	"database/sql"
	"time"

	"confkit/internal/domain"
)

type loginCodeRepository struct {
	DB *sql.DB
}

// NewLoginCodeRepository returns a domain.LoginCodeRepository implemented with Postgres.
func NewLoginCodeRepository(db *sql.DB) domain.LoginCodeRepository {
	return &loginCodeRepository{DB: db}
}

func (r *loginCodeRepository) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO login_codes (email, code_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, email, codeHash, expiresAt)
	return err
}

func (r *loginCodeRepository) ListActive(ctx context.Context, email string) ([]string, error) {
	query := `
		SELECT code_hash FROM login_codes
		WHERE email = $1 AND expires_at > NOW()
	`
	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, rows.Err()
}

func (r *loginCodeRepository) ConsumeAll(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM login_codes WHERE email = $1`, email)
	return err
}
