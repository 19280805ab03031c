package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID or username does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound indicates that no item matches the given name or alias.
	ErrItemNotFound = errors.New("item not found")

	// ErrAliasNotFound indicates that an alias with the given ID does not exist.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrWatchlistEntryNotFound indicates that a watchlist entry with the given ID does not exist.
	ErrWatchlistEntryNotFound = errors.New("watchlist entry not found")

	// ErrWealthRecordNotFound indicates that a wealth record with the given ID does not exist.
	ErrWealthRecordNotFound = errors.New("wealth record not found")

	// ErrMembershipNotFound indicates that no membership record exists for the account.
	ErrMembershipNotFound = errors.New("membership not found")
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserBanned indicates the user is banned, either temporarily or permanently.
	ErrUserBanned = errors.New("user is banned")

	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidToken indicates a missing, malformed, or expired session token.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrForbidden indicates the authenticated user lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidCSVHeaders indicates a bulk import file whose header row does not match the legacy layout.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data, not missing entities or validation issues.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveAliases      = errors.New("failed to retrieve aliases")
	ErrFailedToRetrieveWatchlist    = errors.New("failed to retrieve watchlist")
	ErrFailedToRetrieveWealth       = errors.New("failed to retrieve wealth data")
	ErrFailedToRetrieveMembership   = errors.New("failed to retrieve membership")
	ErrFailedToRetrieveProfit       = errors.New("failed to retrieve profit data")
	ErrFailedToRetrieveUsers        = errors.New("failed to retrieve users")
	ErrFailedToRecompute            = errors.New("failed to recompute profits")
	ErrFailedToImportCSV            = errors.New("failed to import CSV data")
)
