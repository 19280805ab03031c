package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// WealthRepository provides data access methods for the wealth_data table.
type WealthRepository struct {
	db *sql.DB
}

// NewWealthRepository creates a new WealthRepository with the provided database connection.
func NewWealthRepository(db *sql.DB) *WealthRepository {
	return &WealthRepository{db: db}
}

var monthColumns = strings.Join(model.MonthNames[:], ", ")

func scanWealthRecord(rows *sql.Rows) (model.WealthRecord, error) {
	var r model.WealthRecord

	dest := []any{&r.ID, &r.UserID, &r.Year}
	for i := range r.Months {
		dest = append(dest, &r.Months[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return r, fmt.Errorf("failed to scan wealth_data table results: %w", err)
	}

	return r, nil
}

// ListByUser retrieves a user's wealth records, optionally restricted to one
// year (year <= 0 means all years), ordered by year ascending.
func (s *WealthRepository) ListByUser(ctx context.Context, userID string, year int) ([]model.WealthRecord, error) {
	query := `SELECT id, user_id, year, ` + monthColumns + ` FROM wealth_data WHERE user_id = ?`
	args := []any{userID}

	if year > 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY year ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wealth_data table: %w", err)
	}
	defer rows.Close()

	records := []model.WealthRecord{}
	for rows.Next() {
		r, err := scanWealthRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wealth_data table: %w", err)
	}

	return records, nil
}

// Years retrieves the distinct years for which the user has records, newest first.
func (s *WealthRepository) Years(ctx context.Context, userID string) ([]int, error) {
	query := `SELECT DISTINCT year FROM wealth_data WHERE user_id = ? ORDER BY year DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wealth_data table: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan wealth_data table results: %w", err)
		}
		years = append(years, y)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wealth_data table: %w", err)
	}

	return years, nil
}

// Insert stores a new wealth record.
func (s *WealthRepository) Insert(ctx context.Context, r *model.WealthRecord) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 12), ", ")
	query := `INSERT INTO wealth_data (id, user_id, year, ` + monthColumns + `) VALUES (?, ?, ?, ` + placeholders + `)`

	args := []any{r.ID, r.UserID, r.Year}
	for _, m := range r.Months {
		args = append(args, m)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert wealth record: %w", err)
	}

	return nil
}

// Update rewrites a wealth record owned by the given user.
func (s *WealthRepository) Update(ctx context.Context, r *model.WealthRecord) error {
	assignments := make([]string, 0, 13)
	assignments = append(assignments, "year = ?")
	for _, name := range model.MonthNames {
		assignments = append(assignments, name+" = ?")
	}

	query := `UPDATE wealth_data SET ` + strings.Join(assignments, ", ") + ` WHERE id = ? AND user_id = ?`

	args := []any{r.Year}
	for _, m := range r.Months {
		args = append(args, m)
	}
	args = append(args, r.ID, r.UserID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update wealth record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWealthRecordNotFound
	}

	return nil
}

// Delete removes wealth records owned by the given user. Unknown IDs are
// skipped silently, matching the mass-delete semantics of the record list UI.
func (s *WealthRepository) Delete(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := `DELETE FROM wealth_data WHERE user_id = ? AND id IN (` + placeholders + `)`

	args := make([]any, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete wealth records: %w", err)
	}

	return nil
}
