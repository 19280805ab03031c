package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
)

// UserRepository provides data access methods for the user and user_ban tables.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Insert stores a new user. A UNIQUE violation on username surfaces as
// apperrors.ErrUsernameTaken via GetByUsername in the service layer; here it
// is returned as a wrapped driver error.
func (s *UserRepository) Insert(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO user (id, username, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *UserRepository) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var createdAtStr string

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &createdAtStr)
	if err == sql.ErrNoRows {
		return u, apperrors.ErrUserNotFound
	}
	if err != nil {
		return u, fmt.Errorf("failed to scan user table results: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || u.CreatedAt.IsZero() {
		return u, fmt.Errorf("failed to parse date: %w", err)
	}

	return u, nil
}

// GetByID retrieves one user by ID.
func (s *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT id, username, email, password_hash, is_admin, created_at FROM user WHERE id = ?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves one user by username.
func (s *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT id, username, email, password_hash, is_admin, created_at FROM user WHERE username = ?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

// List retrieves all users with their ban state, for the admin view.
func (s *UserRepository) List(ctx context.Context) ([]model.UserResponse, error) {
	query := `
		SELECT u.id, u.username, u.email, u.is_admin, b.permanent, b.ban_until
		FROM user u
		LEFT JOIN user_ban b ON b.user_id = u.id
		ORDER BY u.username ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	users := []model.UserResponse{}
	now := time.Now().UTC()

	for rows.Next() {
		var u model.UserResponse
		var permanent sql.NullBool
		var banUntilStr sql.NullString

		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsAdmin, &permanent, &banUntilStr); err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}

		ban := model.UserBan{Permanent: permanent.Valid && permanent.Bool}
		if banUntilStr.Valid {
			until, err := ParseTime(banUntilStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse date: %w", err)
			}
			ban.BanUntil = &until
		}

		u.Permanent = ban.Permanent
		u.BanUntil = ban.BanUntil
		u.Banned = ban.Active(now)

		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return users, nil
}

// GetBan retrieves the ban record for a user, if any. Returns (nil, nil)
// when the user has never been banned.
func (s *UserRepository) GetBan(ctx context.Context, userID string) (*model.UserBan, error) {
	query := `SELECT id, user_id, ban_until, permanent FROM user_ban WHERE user_id = ?`

	var b model.UserBan
	var banUntilStr sql.NullString

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&b.ID, &b.UserID, &banUntilStr, &b.Permanent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user_ban table results: %w", err)
	}

	if banUntilStr.Valid {
		until, err := ParseTime(banUntilStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		b.BanUntil = &until
	}

	return &b, nil
}

// UpsertBan creates or replaces the ban record for a user.
func (s *UserRepository) UpsertBan(ctx context.Context, b *model.UserBan) error {
	query := `
		INSERT INTO user_ban (id, user_id, ban_until, permanent)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET ban_until = excluded.ban_until, permanent = excluded.permanent
	`

	var banUntil any
	if b.BanUntil != nil {
		banUntil = b.BanUntil.UTC().Format(time.RFC3339)
	}

	if _, err := s.db.ExecContext(ctx, query, b.ID, b.UserID, banUntil, b.Permanent); err != nil {
		return fmt.Errorf("failed to upsert user ban: %w", err)
	}

	return nil
}
