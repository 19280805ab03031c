package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arblack/trade-tracker/internal/fifo"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// recomputeAllConcurrency bounds the number of users recomputed in parallel
// during a full recomputation. Users share no transaction rows, so their
// recomputes are independent.
const recomputeAllConcurrency = 4

// ProfitService owns the FIFO profit recalculation. Mutation paths call
// RecomputeUser synchronously after every committed change to a user's
// transaction set; bulk import calls RecomputeAll once at the end.
type ProfitService struct {
	db              *sql.DB
	transactionRepo *repository.TransactionRepository
}

// NewProfitService creates a new ProfitService with the provided dependencies.
func NewProfitService(db *sql.DB, transactionRepo *repository.TransactionRepository) *ProfitService {
	return &ProfitService{
		db:              db,
		transactionRepo: transactionRepo,
	}
}

// RecomputeUser recalculates realised and cumulative profit for every
// transaction owned by one user. The reset and the write-back run inside a
// single database transaction, so concurrent readers observe either the
// previous values or the fully recomputed ones, never a mix. A user with no
// transactions is a no-op.
//
// The caller is responsible for serializing mutation-then-recompute sequences
// for the same user.
func (s *ProfitService) RecomputeUser(ctx context.Context, userID string) error {
	transactions, err := s.transactionRepo.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load transactions for recompute: %w", err)
	}
	if len(transactions) == 0 {
		return nil
	}

	fifo.Recalculate(transactions)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin recompute transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := s.transactionRepo.ResetProfits(ctx, tx, userID); err != nil {
		return err
	}
	if err := s.transactionRepo.UpdateProfits(ctx, tx, transactions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recompute: %w", err)
	}

	return nil
}

// RecomputeAll recalculates profits for every user owning at least one
// transaction. Each user is an independent failure domain: one user's error
// is recorded and the remaining users are still attempted. The returned
// error joins all per-user failures.
func (s *ProfitService) RecomputeAll(ctx context.Context) error {
	userIDs, err := s.transactionRepo.DistinctUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for recompute: %w", err)
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g := new(errgroup.Group)
	g.SetLimit(recomputeAllConcurrency)

	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			if err := s.RecomputeUser(ctx, userID); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait() // goroutines only record errors, never return them

	return errors.Join(errs...)
}

// GlobalRealisedProfit returns a user's total realised profit across all items.
func (s *ProfitService) GlobalRealisedProfit(ctx context.Context, userID string) (float64, error) {
	return s.transactionRepo.GlobalRealisedProfit(ctx, userID)
}

// CumulativeSeries returns the cumulative-profit chart series for a user,
// optionally restricted to one item.
func (s *ProfitService) CumulativeSeries(ctx context.Context, userID, itemID string) ([]model.ProfitPoint, error) {
	return s.transactionRepo.CumulativeSeries(ctx, userID, itemID)
}
