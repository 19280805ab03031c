package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// MembershipRepository provides data access methods for the membership table.
type MembershipRepository struct {
	db *sql.DB
}

// NewMembershipRepository creates a new MembershipRepository with the provided database connection.
func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetByAccountName retrieves the membership record for an account.
func (s *MembershipRepository) GetByAccountName(ctx context.Context, accountName string) (model.Membership, error) {
	query := `SELECT id, account_name, status, end_date FROM membership WHERE account_name = ?`

	var m model.Membership
	var endDateStr sql.NullString

	err := s.db.QueryRowContext(ctx, query, accountName).Scan(&m.ID, &m.AccountName, &m.Status, &endDateStr)
	if err == sql.ErrNoRows {
		return m, apperrors.ErrMembershipNotFound
	}
	if err != nil {
		return m, fmt.Errorf("failed to scan membership table results: %w", err)
	}

	if endDateStr.Valid {
		endDate, err := ParseTime(endDateStr.String)
		if err != nil {
			return m, fmt.Errorf("failed to parse date: %w", err)
		}
		m.EndDate = &endDate
	}

	return m, nil
}

// Upsert creates or replaces the membership record for an account.
func (s *MembershipRepository) Upsert(ctx context.Context, m *model.Membership) error {
	query := `
		INSERT INTO membership (id, account_name, status, end_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(account_name) DO UPDATE SET status = excluded.status, end_date = excluded.end_date
	`

	var endDate any
	if m.EndDate != nil {
		endDate = m.EndDate.Format("2006-01-02")
	}

	if _, err := s.db.ExecContext(ctx, query, m.ID, m.AccountName, m.Status, endDate); err != nil {
		return fmt.Errorf("failed to upsert membership: %w", err)
	}

	return nil
}
