package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// WatchlistRepository provides data access methods for the watchlist table.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// ListByUser retrieves a user's watchlist entries, newest first.
func (s *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]model.WatchlistEntry, error) {
	query := `
		SELECT id, user_id, name, buy_or_sell, desired_price, wished_quantity,
		       total_value, current_holding, date_added
		FROM watchlist
		WHERE user_id = ?
		ORDER BY date_added DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist table: %w", err)
	}
	defer rows.Close()

	entries := []model.WatchlistEntry{}
	for rows.Next() {
		var e model.WatchlistEntry
		var dateStr string

		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Name,
			&e.BuyOrSell,
			&e.DesiredPrice,
			&e.WishedQuantity,
			&e.TotalValue,
			&e.CurrentHolding,
			&dateStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist table results: %w", err)
		}
		e.DateAdded, err = ParseTime(dateStr)
		if err != nil || e.DateAdded.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist table: %w", err)
	}

	return entries, nil
}

// Insert stores a new watchlist entry.
func (s *WatchlistRepository) Insert(ctx context.Context, e *model.WatchlistEntry) error {
	query := `
		INSERT INTO watchlist (id, user_id, name, buy_or_sell, desired_price,
		                       wished_quantity, total_value, current_holding, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Name,
		e.BuyOrSell,
		e.DesiredPrice,
		e.WishedQuantity,
		e.TotalValue,
		e.CurrentHolding,
		e.DateAdded.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert watchlist entry: %w", err)
	}

	return nil
}

// Delete removes a watchlist entry owned by the given user.
func (s *WatchlistRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM watchlist WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWatchlistEntryNotFound
	}

	return nil
}
