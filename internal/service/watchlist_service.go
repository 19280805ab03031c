package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// WatchlistService handles per-user buy/sell watchlists.
type WatchlistService struct {
	watchlistRepo   *repository.WatchlistRepository
	transactionRepo *repository.TransactionRepository
	itemService     *ItemService
}

// NewWatchlistService creates a new WatchlistService with the provided dependencies.
func NewWatchlistService(
	watchlistRepo *repository.WatchlistRepository,
	transactionRepo *repository.TransactionRepository,
	itemService *ItemService,
) *WatchlistService {
	return &WatchlistService{
		watchlistRepo:   watchlistRepo,
		transactionRepo: transactionRepo,
		itemService:     itemService,
	}
}

// ListByUser retrieves a user's watchlist entries, newest first.
func (s *WatchlistService) ListByUser(ctx context.Context, userID string) ([]model.WatchlistEntry, error) {
	return s.watchlistRepo.ListByUser(ctx, userID)
}

// Create stores a new watchlist entry. The total value is derived from the
// desired price and quantity, and the current holding is captured from the
// user's transaction history at creation time (zero for an unknown item).
func (s *WatchlistService) Create(ctx context.Context, userID string, req request.CreateWatchlistRequest) (model.WatchlistEntry, error) {
	entry := model.WatchlistEntry{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           req.Name,
		BuyOrSell:      req.BuyOrSell,
		DesiredPrice:   req.DesiredPrice,
		WishedQuantity: req.WishedQuantity,
		TotalValue:     req.DesiredPrice * req.WishedQuantity,
		DateAdded:      time.Now(),
	}

	item, err := s.itemService.Resolve(ctx, req.Name)
	switch {
	case err == nil:
		summary, err := s.transactionRepo.ItemSummary(ctx, userID, item.ID)
		if err != nil {
			return model.WatchlistEntry{}, err
		}
		entry.CurrentHolding = summary.RemainingQty
	case errors.Is(err, apperrors.ErrItemNotFound):
		// watching something never traded is fine
	default:
		return model.WatchlistEntry{}, err
	}

	if err := s.watchlistRepo.Insert(ctx, &entry); err != nil {
		return model.WatchlistEntry{}, err
	}

	return entry, nil
}

// Delete removes a watchlist entry owned by the given user.
func (s *WatchlistService) Delete(ctx context.Context, userID, entryID string) error {
	return s.watchlistRepo.Delete(ctx, entryID, userID)
}
