package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string

	err := rows.Scan(
		&t.ID,
		&t.UserID,
		&t.ItemID,
		&t.Type,
		&t.Price,
		&t.Quantity,
		&dateStr,
		&t.RealisedProfit,
		&t.CumulativeProfit,
		&createdAtStr,
	)
	if err != nil {
		return t, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.DateOfHolding, err = ParseTime(dateStr)
	if err != nil || t.DateOfHolding.IsZero() {
		return t, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return t, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}

// GetByUser retrieves all transactions owned by one user in engine order:
// date of holding ascending, type ascending (Buy before Sell), ID ascending.
func (s *TransactionRepository) GetByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, item_id, type, price, quantity, date_of_holding,
		       realised_profit, cumulative_profit, created_at
		FROM "transaction"
		WHERE user_id = ?
		ORDER BY date_of_holding ASC, type ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetByID retrieves one transaction. Returns apperrors.ErrTransactionNotFound
// if no row exists.
func (s *TransactionRepository) GetByID(ctx context.Context, id string) (model.Transaction, error) {
	query := `
		SELECT id, user_id, item_id, type, price, quantity, date_of_holding,
		       realised_profit, cumulative_profit, created_at
		FROM "transaction"
		WHERE id = ?
	`

	var t model.Transaction
	var dateStr, createdAtStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.UserID,
		&t.ItemID,
		&t.Type,
		&t.Price,
		&t.Quantity,
		&dateStr,
		&t.RealisedProfit,
		&t.CumulativeProfit,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return t, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.DateOfHolding, err = ParseTime(dateStr)
	if err != nil || t.DateOfHolding.IsZero() {
		return t, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return t, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}

// ListByUser retrieves a user's transactions enriched with item names,
// newest first, optionally restricted to one item.
func (s *TransactionRepository) ListByUser(ctx context.Context, userID, itemID string) ([]model.TransactionResponse, error) {
	query := `
		SELECT t.id, t.user_id, t.item_id, i.name, t.type, t.price, t.quantity,
		       t.date_of_holding, t.realised_profit, t.cumulative_profit
		FROM "transaction" t
		JOIN item i ON t.item_id = i.id
		WHERE t.user_id = ?
	`
	args := []any{userID}

	if itemID != "" {
		query += ` AND t.item_id = ?`
		args = append(args, itemID)
	}
	query += ` ORDER BY t.date_of_holding DESC, t.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	responses := []model.TransactionResponse{}
	for rows.Next() {
		var t model.TransactionResponse
		var dateStr string

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ItemID,
			&t.ItemName,
			&t.Type,
			&t.Price,
			&t.Quantity,
			&dateStr,
			&t.RealisedProfit,
			&t.CumulativeProfit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		t.DateOfHolding, err = ParseTime(dateStr)
		if err != nil || t.DateOfHolding.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		responses = append(responses, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return responses, nil
}

// Recent retrieves the most recently inserted transactions across all users.
func (s *TransactionRepository) Recent(ctx context.Context, limit int) ([]model.TransactionResponse, error) {
	query := `
		SELECT t.id, t.user_id, t.item_id, i.name, t.type, t.price, t.quantity,
		       t.date_of_holding, t.realised_profit, t.cumulative_profit
		FROM "transaction" t
		JOIN item i ON t.item_id = i.id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	responses := []model.TransactionResponse{}
	for rows.Next() {
		var t model.TransactionResponse
		var dateStr string

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ItemID,
			&t.ItemName,
			&t.Type,
			&t.Price,
			&t.Quantity,
			&dateStr,
			&t.RealisedProfit,
			&t.CumulativeProfit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		t.DateOfHolding, err = ParseTime(dateStr)
		if err != nil || t.DateOfHolding.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		responses = append(responses, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return responses, nil
}

// Insert stores a new transaction.
func (s *TransactionRepository) Insert(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (id, user_id, item_id, type, price, quantity,
		                           date_of_holding, realised_profit, cumulative_profit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.ItemID,
		t.Type,
		t.Price,
		t.Quantity,
		t.DateOfHolding.Format("2006-01-02"),
		t.RealisedProfit,
		t.CumulativeProfit,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// Update rewrites the user-editable fields of a transaction.
func (s *TransactionRepository) Update(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE "transaction"
		SET item_id = ?, type = ?, price = ?, quantity = ?, date_of_holding = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.ItemID,
		t.Type,
		t.Price,
		t.Quantity,
		t.DateOfHolding.Format("2006-01-02"),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction.
func (s *TransactionRepository) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DistinctUserIDs returns the IDs of every user owning at least one transaction.
func (s *TransactionRepository) DistinctUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM "transaction"`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return userIDs, nil
}

// ResetProfits zeroes both profit fields for every transaction of one user.
// Runs inside the caller's transaction so readers never observe the zeroed
// state alongside freshly computed values.
func (s *TransactionRepository) ResetProfits(ctx context.Context, tx *sql.Tx, userID string) error {
	query := `UPDATE "transaction" SET realised_profit = 0, cumulative_profit = 0 WHERE user_id = ?`

	if _, err := tx.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to reset profits: %w", err)
	}

	return nil
}

// UpdateProfits writes recomputed profit values. Runs inside the caller's
// transaction; see ResetProfits.
func (s *TransactionRepository) UpdateProfits(ctx context.Context, tx *sql.Tx, transactions []model.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, `UPDATE "transaction" SET realised_profit = ?, cumulative_profit = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare profit update: %w", err)
	}
	defer stmt.Close()

	for _, t := range transactions {
		if _, err := stmt.ExecContext(ctx, t.RealisedProfit, t.CumulativeProfit, t.ID); err != nil {
			return fmt.Errorf("failed to update profits for transaction %s: %w", t.ID, err)
		}
	}

	return nil
}

// ItemSummary aggregates a user's position in one item: quantities bought and
// sold, average sold price, and realised profit attributed to the item.
func (s *TransactionRepository) ItemSummary(ctx context.Context, userID, itemID string) (model.ItemSummary, error) {
	query := `
		SELECT i.name,
		       COALESCE(SUM(CASE WHEN t.type = 'Sell' THEN t.quantity END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'Buy' THEN t.quantity END), 0),
		       COALESCE(AVG(CASE WHEN t.type = 'Sell' THEN t.price END), 0),
		       COALESCE(SUM(t.realised_profit), 0)
		FROM item i
		LEFT JOIN "transaction" t ON t.item_id = i.id AND t.user_id = ?
		WHERE i.id = ?
		GROUP BY i.name
	`

	var summary model.ItemSummary
	var totalBought float64

	err := s.db.QueryRowContext(ctx, query, userID, itemID).Scan(
		&summary.ItemName,
		&summary.TotalSold,
		&totalBought,
		&summary.AvgSoldPrice,
		&summary.RealisedProfit,
	)
	if err == sql.ErrNoRows {
		return summary, apperrors.ErrItemNotFound
	}
	if err != nil {
		return summary, fmt.Errorf("failed to scan item summary: %w", err)
	}

	summary.ItemID = itemID
	summary.RemainingQty = totalBought - summary.TotalSold

	return summary, nil
}

// GlobalRealisedProfit returns the user's latest cumulative profit, which in
// engine order equals the sum of all realised profits.
func (s *TransactionRepository) GlobalRealisedProfit(ctx context.Context, userID string) (float64, error) {
	var profit sql.NullFloat64

	query := `SELECT MAX(cumulative_profit) FROM "transaction" WHERE user_id = ?`
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&profit); err != nil {
		return 0, fmt.Errorf("failed to query transaction table: %w", err)
	}

	return profit.Float64, nil
}

// CumulativeSeries returns (date, cumulative profit) points for a user in
// engine order, optionally restricted to one item. With an item filter the
// cumulative values are re-derived from that item's realised profits alone.
func (s *TransactionRepository) CumulativeSeries(ctx context.Context, userID, itemID string) ([]model.ProfitPoint, error) {
	query := `
		SELECT date_of_holding, realised_profit, cumulative_profit
		FROM "transaction"
		WHERE user_id = ?
	`
	args := []any{userID}

	if itemID != "" {
		query += ` AND item_id = ?`
		args = append(args, itemID)
	}
	query += ` ORDER BY date_of_holding ASC, type ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	points := []model.ProfitPoint{}
	var itemRunning float64

	for rows.Next() {
		var p model.ProfitPoint
		var dateStr string
		var realised float64

		if err := rows.Scan(&dateStr, &realised, &p.CumulativeProfit); err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		p.Date, err = ParseTime(dateStr)
		if err != nil || p.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		if itemID != "" {
			itemRunning += realised
			p.CumulativeProfit = itemRunning
		}

		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return points, nil
}
