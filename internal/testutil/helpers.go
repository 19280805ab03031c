package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/auth"
	"github.com/arblack/trade-tracker/internal/repository"
	"github.com/arblack/trade-tracker/internal/service"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create token issuer: %v", err)
	}

	return service.NewAuthService(repository.NewUserRepository(db), tokens)
}

func NewTestItemService(t *testing.T, db *sql.DB) *service.ItemService {
	t.Helper()

	return service.NewItemService(repository.NewItemRepository(db))
}

func NewTestProfitService(t *testing.T, db *sql.DB) *service.ProfitService {
	t.Helper()

	return service.NewProfitService(db, repository.NewTransactionRepository(db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		NewTestItemService(t, db),
		service.NewProfitService(db, transactionRepo),
	)
}

func NewTestWatchlistService(t *testing.T, db *sql.DB) *service.WatchlistService {
	t.Helper()

	return service.NewWatchlistService(
		repository.NewWatchlistRepository(db),
		repository.NewTransactionRepository(db),
		NewTestItemService(t, db),
	)
}

func NewTestWealthService(t *testing.T, db *sql.DB) *service.WealthService {
	t.Helper()

	return service.NewWealthService(repository.NewWealthRepository(db))
}

func NewTestMembershipService(t *testing.T, db *sql.DB) *service.MembershipService {
	t.Helper()

	return service.NewMembershipService(repository.NewMembershipRepository(db))
}

func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewImportService(
		transactionRepo,
		NewTestItemService(t, db),
		service.NewProfitService(db, transactionRepo),
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeUsername generates a unique username for testing.
//
// Example usage:
//
//	name := testutil.MakeUsername("alice")
//	// Returns: "alice_A1B2C3"
func MakeUsername(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "_" + randomAlphanumeric(6)
}

// MakeItemName generates a unique item name for testing.
//
// Example usage:
//
//	name := testutil.MakeItemName("Gold Bar")
//	// Returns: "Gold Bar XYZ789"
func MakeItemName(base string) string {
	if base == "" {
		base = "Item"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
