package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/arblack/trade-tracker/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().
//	    WithUsername("alice").
//	    Admin().
//	    Build(t, db)
type UserBuilder struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	name := MakeUsername("user")
	return &UserBuilder{
		ID:           MakeID(),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "x",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithUsername sets a custom username.
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

// WithPasswordHash sets a real bcrypt hash, for login tests.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// Admin marks the user as an admin.
func (b *UserBuilder) Admin() *UserBuilder {
	b.IsAdmin = true
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user (id, username, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	_, err := db.Exec(query, b.ID, b.Username, b.Email, b.PasswordHash, b.IsAdmin, now.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:           b.ID,
		Username:     b.Username,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		IsAdmin:      b.IsAdmin,
		CreatedAt:    now,
	}
}

// CreateUser creates a user with the given username and default values.
//
// Example usage:
//
//	user := testutil.CreateUser(t, db, "alice")
func CreateUser(t *testing.T, db *sql.DB, username string) model.User {
	t.Helper()
	return NewUser().WithUsername(username).Build(t, db)
}

// ItemBuilder provides a fluent interface for creating test items.
type ItemBuilder struct {
	ID   string
	Name string
}

// NewItem creates an ItemBuilder with sensible defaults.
func NewItem() *ItemBuilder {
	return &ItemBuilder{
		ID:   MakeID(),
		Name: MakeItemName("Test Item"),
	}
}

// WithName sets a custom name.
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

// Build creates the item in the database and returns it.
func (b *ItemBuilder) Build(t *testing.T, db *sql.DB) model.Item {
	t.Helper()

	_, err := db.Exec(`INSERT INTO item (id, name) VALUES (?, ?)`, b.ID, b.Name)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return model.Item{ID: b.ID, Name: b.Name}
}

// CreateItem creates an item with the given name.
//
// Example usage:
//
//	item := testutil.CreateItem(t, db, "Gold Bar")
func CreateItem(t *testing.T, db *sql.DB, name string) model.Item {
	t.Helper()
	return NewItem().WithName(name).Build(t, db)
}

// CreateAlias creates an alias mapping a short name to an item's full name.
func CreateAlias(t *testing.T, db *sql.DB, fullName, shortName string) model.Alias {
	t.Helper()

	alias := model.Alias{
		ID:        MakeID(),
		FullName:  fullName,
		ShortName: shortName,
	}

	_, err := db.Exec(
		`INSERT INTO alias (id, full_name, short_name, image_path) VALUES (?, ?, ?, '')`,
		alias.ID, alias.FullName, alias.ShortName,
	)
	if err != nil {
		t.Fatalf("Failed to create test alias: %v", err)
	}

	return alias
}

// TransactionBuilder provides a fluent interface for creating transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(user.ID, item.ID).
//	    Sell().
//	    WithPrice(12.5).
//	    WithQuantity(3).
//	    WithDate("2024-03-01").
//	    Build(t, db)
type TransactionBuilder struct {
	ID            string
	UserID        string
	ItemID        string
	Type          string
	Price         float64
	Quantity      float64
	DateOfHolding time.Time
}

// NewTransaction creates a TransactionBuilder with defaults (a Buy of 10 at 1.0).
func NewTransaction(userID, itemID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:            MakeID(),
		UserID:        userID,
		ItemID:        itemID,
		Type:          model.TypeBuy,
		Price:         1.0,
		Quantity:      10.0,
		DateOfHolding: time.Now(),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// Sell marks the transaction as a sale.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TypeSell
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(transType string) *TransactionBuilder {
	b.Type = transType
	return b
}

// WithPrice sets the unit price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithQuantity sets the quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithDate sets the date of holding from a YYYY-MM-DD string.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: bad date " + date)
	}
	b.DateOfHolding = parsed
	return b
}

// Build creates the transaction in the database. Profit columns start at
// zero; run a recompute to fill them.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, user_id, item_id, type, price, quantity, date_of_holding)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.UserID, b.ItemID, b.Type, b.Price, b.Quantity,
		b.DateOfHolding.Format("2006-01-02"),
	)
	if err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}

	return model.Transaction{
		ID:            b.ID,
		UserID:        b.UserID,
		ItemID:        b.ItemID,
		Type:          b.Type,
		Price:         b.Price,
		Quantity:      b.Quantity,
		DateOfHolding: b.DateOfHolding,
		CreatedAt:     time.Now(),
	}
}

// WealthRecordBuilder provides a fluent interface for creating wealth records.
type WealthRecordBuilder struct {
	ID     string
	UserID string
	Year   int
	Months [12]string
}

// NewWealthRecord creates a WealthRecordBuilder for the given user and year.
func NewWealthRecord(userID string, year int) *WealthRecordBuilder {
	return &WealthRecordBuilder{
		ID:     MakeID(),
		UserID: userID,
		Year:   year,
	}
}

// WithMonth sets the value of one month (1-based).
func (b *WealthRecordBuilder) WithMonth(month int, value string) *WealthRecordBuilder {
	b.Months[month-1] = value
	return b
}

// Build creates the wealth record in the database.
func (b *WealthRecordBuilder) Build(t *testing.T, db *sql.DB) model.WealthRecord {
	t.Helper()

	query := `
		INSERT INTO wealth_data (id, user_id, year,
		                         january, february, march, april, may, june,
		                         july, august, september, october, november, december)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	args := []any{b.ID, b.UserID, b.Year}
	for _, m := range b.Months {
		args = append(args, m)
	}

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("Failed to create wealth record: %v", err)
	}

	return model.WealthRecord{
		ID:     b.ID,
		UserID: b.UserID,
		Year:   b.Year,
		Months: b.Months,
	}
}
