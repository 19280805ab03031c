package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// csvColumns are the required header names of a legacy transaction export,
// matched case-insensitively and in any order.
var csvColumns = []string{"item", "type", "price", "quantity", "date_of_holding"}

// ImportService loads legacy CSV transaction exports. Rows are inserted
// without profit figures; a single recompute at the end fills them in.
type ImportService struct {
	transactionRepo *repository.TransactionRepository
	itemService     *ItemService
	profitService   *ProfitService
}

// NewImportService creates a new ImportService with the provided dependencies.
func NewImportService(
	transactionRepo *repository.TransactionRepository,
	itemService *ItemService,
	profitService *ProfitService,
) *ImportService {
	return &ImportService{
		transactionRepo: transactionRepo,
		itemService:     itemService,
		profitService:   profitService,
	}
}

// ImportCSV reads a legacy CSV export and inserts its rows as transactions
// owned by the given user. Item names resolve through aliases and unknown
// items are created. Profits are recomputed once after the last row, not per
// row. Returns the number of imported transactions.
func (s *ImportService) ImportCSV(ctx context.Context, userID string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return 0, apperrors.ErrInvalidCSVHeaders
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := mapCSVColumns(header)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to read CSV row: %w", err)
		}

		transaction, err := s.rowToTransaction(ctx, userID, columns, row)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}

		if err := s.transactionRepo.Insert(ctx, transaction); err != nil {
			return imported, err
		}
		imported++
	}

	if imported > 0 {
		if err := s.profitService.RecomputeUser(ctx, userID); err != nil {
			return imported, err
		}
	}

	return imported, nil
}

// mapCSVColumns resolves the index of each required column in the header.
func mapCSVColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range csvColumns {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.ErrInvalidCSVHeaders
		}
	}

	return columns, nil
}

func (s *ImportService) rowToTransaction(ctx context.Context, userID string, columns map[string]int, row []string) (*model.Transaction, error) {
	cell := func(name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	transType := cell("type")
	if transType != model.TypeBuy && transType != model.TypeSell {
		return nil, fmt.Errorf("invalid transaction type %q", transType)
	}

	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}
	quantity, err := strconv.ParseFloat(cell("quantity"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %w", err)
	}
	if price < 0 || quantity < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	date, err := repository.ParseTime(cell("date_of_holding"))
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	item, err := s.itemService.ResolveOrCreate(ctx, cell("item"))
	if err != nil {
		return nil, err
	}

	return &model.Transaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		ItemID:        item.ID,
		Type:          transType,
		Price:         price,
		Quantity:      quantity,
		DateOfHolding: date,
		CreatedAt:     time.Now(),
	}, nil
}
