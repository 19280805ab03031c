package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// ItemRepository provides data access methods for the item, alias,
// accumulation_price, and target_sell_price tables.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository with the provided database connection.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetByName retrieves an item by exact name, case-insensitively.
func (s *ItemRepository) GetByName(ctx context.Context, name string) (model.Item, error) {
	var item model.Item

	query := `SELECT id, name FROM item WHERE name = ? COLLATE NOCASE`
	err := s.db.QueryRowContext(ctx, query, name).Scan(&item.ID, &item.Name)
	if err == sql.ErrNoRows {
		return item, apperrors.ErrItemNotFound
	}
	if err != nil {
		return item, fmt.Errorf("failed to scan item table results: %w", err)
	}

	return item, nil
}

// GetByID retrieves an item by ID.
func (s *ItemRepository) GetByID(ctx context.Context, id string) (model.Item, error) {
	var item model.Item

	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM item WHERE id = ?`, id).Scan(&item.ID, &item.Name)
	if err == sql.ErrNoRows {
		return item, apperrors.ErrItemNotFound
	}
	if err != nil {
		return item, fmt.Errorf("failed to scan item table results: %w", err)
	}

	return item, nil
}

// Insert stores a new item.
func (s *ItemRepository) Insert(ctx context.Context, item *model.Item) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO item (id, name) VALUES (?, ?)`, item.ID, item.Name); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetAliasByShortName retrieves an alias by its short name, case-insensitively.
func (s *ItemRepository) GetAliasByShortName(ctx context.Context, shortName string) (model.Alias, error) {
	query := `SELECT id, full_name, short_name, image_path FROM alias WHERE short_name = ? COLLATE NOCASE`
	return s.scanAlias(ctx, query, shortName)
}

// GetAliasByFullName retrieves an alias by its full name, case-insensitively.
func (s *ItemRepository) GetAliasByFullName(ctx context.Context, fullName string) (model.Alias, error) {
	query := `SELECT id, full_name, short_name, image_path FROM alias WHERE full_name = ? COLLATE NOCASE`
	return s.scanAlias(ctx, query, fullName)
}

func (s *ItemRepository) scanAlias(ctx context.Context, query, arg string) (model.Alias, error) {
	var a model.Alias

	err := s.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.FullName, &a.ShortName, &a.ImagePath)
	if err == sql.ErrNoRows {
		return a, apperrors.ErrAliasNotFound
	}
	if err != nil {
		return a, fmt.Errorf("failed to scan alias table results: %w", err)
	}

	return a, nil
}

// ListAliases retrieves aliases ordered by full name, optionally filtered by
// first letter of the full name.
func (s *ItemRepository) ListAliases(ctx context.Context, letter string) ([]model.Alias, error) {
	query := `SELECT id, full_name, short_name, image_path FROM alias`
	var args []any

	if letter != "" {
		query += ` WHERE full_name LIKE ? COLLATE NOCASE`
		args = append(args, letter+"%")
	}
	query += ` ORDER BY full_name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alias table: %w", err)
	}
	defer rows.Close()

	aliases := []model.Alias{}
	for rows.Next() {
		var a model.Alias
		if err := rows.Scan(&a.ID, &a.FullName, &a.ShortName, &a.ImagePath); err != nil {
			return nil, fmt.Errorf("failed to scan alias table results: %w", err)
		}
		aliases = append(aliases, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alias table: %w", err)
	}

	return aliases, nil
}

// InsertAlias stores a new alias.
func (s *ItemRepository) InsertAlias(ctx context.Context, a *model.Alias) error {
	query := `INSERT INTO alias (id, full_name, short_name, image_path) VALUES (?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, a.ID, a.FullName, a.ShortName, a.ImagePath); err != nil {
		return fmt.Errorf("failed to insert alias: %w", err)
	}

	return nil
}

// UpdateAlias rewrites an alias.
func (s *ItemRepository) UpdateAlias(ctx context.Context, a *model.Alias) error {
	query := `UPDATE alias SET full_name = ?, short_name = ?, image_path = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, a.FullName, a.ShortName, a.ImagePath, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update alias: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAliasNotFound
	}

	return nil
}

// DeleteAlias removes an alias.
func (s *ItemRepository) DeleteAlias(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM alias WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alias: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAliasNotFound
	}

	return nil
}

// GetAccumulationPrice retrieves the accumulation price for an item, or
// (nil, nil) when none is set.
func (s *ItemRepository) GetAccumulationPrice(ctx context.Context, itemID string) (*model.AccumulationPrice, error) {
	var p model.AccumulationPrice

	query := `SELECT id, item_id, price FROM accumulation_price WHERE item_id = ?`
	err := s.db.QueryRowContext(ctx, query, itemID).Scan(&p.ID, &p.ItemID, &p.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan accumulation_price table results: %w", err)
	}

	return &p, nil
}

// UpsertAccumulationPrice creates or replaces the accumulation price for an item.
func (s *ItemRepository) UpsertAccumulationPrice(ctx context.Context, p *model.AccumulationPrice) error {
	query := `
		INSERT INTO accumulation_price (id, item_id, price)
		VALUES (?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET price = excluded.price
	`

	if _, err := s.db.ExecContext(ctx, query, p.ID, p.ItemID, p.Price); err != nil {
		return fmt.Errorf("failed to upsert accumulation price: %w", err)
	}

	return nil
}

// GetTargetSellPrice retrieves the target sell price for an item, or
// (nil, nil) when none is set.
func (s *ItemRepository) GetTargetSellPrice(ctx context.Context, itemID string) (*model.TargetSellPrice, error) {
	var p model.TargetSellPrice

	query := `SELECT id, item_id, price FROM target_sell_price WHERE item_id = ?`
	err := s.db.QueryRowContext(ctx, query, itemID).Scan(&p.ID, &p.ItemID, &p.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan target_sell_price table results: %w", err)
	}

	return &p, nil
}

// UpsertTargetSellPrice creates or replaces the target sell price for an item.
func (s *ItemRepository) UpsertTargetSellPrice(ctx context.Context, p *model.TargetSellPrice) error {
	query := `
		INSERT INTO target_sell_price (id, item_id, price)
		VALUES (?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET price = excluded.price
	`

	if _, err := s.db.ExecContext(ctx, query, p.ID, p.ItemID, p.Price); err != nil {
		return fmt.Errorf("failed to upsert target sell price: %w", err)
	}

	return nil
}
