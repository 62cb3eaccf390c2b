package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fgpay/transaction-gateway/internal/application"
)

// PartnerRepository resolves partner credentials from the partners table.
// Request handling only ever reads; writes happen out of band (migrations,
// ops tooling, tests).
type PartnerRepository struct {
	db *pgxpool.Pool
}

func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Lookup(ctx context.Context, partnerRefNo string) (string, error) {
	query := `SELECT password FROM partners WHERE partner_ref_no = $1`

	var password string
	err := r.db.QueryRow(ctx, query, partnerRefNo).Scan(&password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", application.ErrPartnerNotFound
		}
		return "", fmt.Errorf("failed to look up partner %s: %w", partnerRefNo, err)
	}

	return password, nil
}

// EnsureSchema creates the partners table if it does not exist.
func (r *PartnerRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS partners (
			partner_ref_no TEXT PRIMARY KEY,
			password       TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure partners schema: %w", err)
	}
	return nil
}

// Seed upserts the given partners. Used at startup when the configured
// static set should be mirrored into the database, and by tests.
func (r *PartnerRepository) Seed(ctx context.Context, partners map[string]string) error {
	query := `
		INSERT INTO partners (partner_ref_no, password)
		VALUES ($1, $2)
		ON CONFLICT (partner_ref_no) DO UPDATE SET password = EXCLUDED.password
	`

	for refNo, password := range partners {
		if _, err := r.db.Exec(ctx, query, refNo, password); err != nil {
			return fmt.Errorf("failed to seed partner %s: %w", refNo, err)
		}
	}
	return nil
}
