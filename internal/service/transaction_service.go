package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// TransactionService handles transaction CRUD. Every committed mutation
// triggers a synchronous FIFO recompute for the owning user before the call
// returns, so stored profit figures are never stale.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	itemService     *ItemService
	profitService   *ProfitService
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	itemService *ItemService,
	profitService *ProfitService,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		itemService:     itemService,
		profitService:   profitService,
	}
}

// ListByUser retrieves a user's transactions, newest first. An optional item
// name restricts the list to one item, resolved through aliases.
func (s *TransactionService) ListByUser(ctx context.Context, userID, itemName string) ([]model.TransactionResponse, error) {
	itemID := ""
	if itemName != "" {
		item, err := s.itemService.Resolve(ctx, itemName)
		if err != nil {
			return nil, err
		}
		itemID = item.ID
	}

	return s.transactionRepo.ListByUser(ctx, userID, itemID)
}

// Recent retrieves the most recent transactions across all users.
func (s *TransactionService) Recent(ctx context.Context, limit int) ([]model.TransactionResponse, error) {
	return s.transactionRepo.Recent(ctx, limit)
}

// Get retrieves one transaction owned by the given user.
func (s *TransactionService) Get(ctx context.Context, userID, transactionID string) (model.Transaction, error) {
	t, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return t, err
	}
	if t.UserID != userID {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return t, nil
}

// Create stores a new transaction and recomputes the user's profits.
func (s *TransactionService) Create(ctx context.Context, userID string, req request.CreateTransactionRequest) (*model.Transaction, error) {
	item, err := s.itemService.ResolveOrCreate(ctx, req.ItemName)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.DateOfHolding)
	if err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		ItemID:        item.ID,
		Type:          req.Type,
		Price:         req.Price,
		Quantity:      req.Quantity,
		DateOfHolding: date,
		CreatedAt:     time.Now(),
	}

	if err := s.transactionRepo.Insert(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := s.profitService.RecomputeUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.reload(ctx, transaction.ID)
}

// Update rewrites a transaction owned by the given user and recomputes the
// user's profits.
func (s *TransactionService) Update(ctx context.Context, userID, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.Get(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.ItemName != nil {
		item, err := s.itemService.ResolveOrCreate(ctx, *req.ItemName)
		if err != nil {
			return nil, err
		}
		transaction.ItemID = item.ID
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Price != nil {
		transaction.Price = *req.Price
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.DateOfHolding != nil {
		date, err := time.Parse("2006-01-02", *req.DateOfHolding)
		if err != nil {
			return nil, err
		}
		transaction.DateOfHolding = date
	}

	if err := s.transactionRepo.Update(ctx, &transaction); err != nil {
		return nil, err
	}

	if err := s.profitService.RecomputeUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.reload(ctx, transactionID)
}

// Delete removes a transaction owned by the given user and recomputes the
// user's profits.
func (s *TransactionService) Delete(ctx context.Context, userID, transactionID string) error {
	if _, err := s.Get(ctx, userID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(ctx, transactionID); err != nil {
		return err
	}

	return s.profitService.RecomputeUser(ctx, userID)
}

// ItemSummary aggregates a user's position in one item resolved by name.
func (s *TransactionService) ItemSummary(ctx context.Context, userID, itemName string) (model.ItemSummary, error) {
	item, err := s.itemService.Resolve(ctx, itemName)
	if err != nil {
		return model.ItemSummary{}, err
	}

	return s.transactionRepo.ItemSummary(ctx, userID, item.ID)
}

// reload fetches a transaction after recompute so the response carries the
// freshly computed profit fields.
func (s *TransactionService) reload(ctx context.Context, transactionID string) (*model.Transaction, error) {
	t, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
