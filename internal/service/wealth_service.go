package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// WealthService handles per-user monthly wealth records and their totals.
type WealthService struct {
	wealthRepo *repository.WealthRepository
}

// NewWealthService creates a new WealthService with the provided repository dependencies.
func NewWealthService(wealthRepo *repository.WealthRepository) *WealthService {
	return &WealthService{wealthRepo: wealthRepo}
}

// ListByUser retrieves a user's wealth records, optionally restricted to one year.
func (s *WealthService) ListByUser(ctx context.Context, userID string, year int) ([]model.WealthRecord, error) {
	return s.wealthRepo.ListByUser(ctx, userID, year)
}

// Years retrieves the distinct years for which the user has records, newest first.
func (s *WealthService) Years(ctx context.Context, userID string) ([]int, error) {
	return s.wealthRepo.Years(ctx, userID)
}

// Create stores a new wealth record.
func (s *WealthService) Create(ctx context.Context, userID string, req request.WealthRecordRequest) (model.WealthRecord, error) {
	record := model.WealthRecord{
		ID:     uuid.New().String(),
		UserID: userID,
		Year:   req.Year,
		Months: req.Months(),
	}

	if err := s.wealthRepo.Insert(ctx, &record); err != nil {
		return model.WealthRecord{}, err
	}

	return record, nil
}

// Update rewrites a wealth record owned by the given user.
func (s *WealthService) Update(ctx context.Context, userID, recordID string, req request.WealthRecordRequest) (model.WealthRecord, error) {
	record := model.WealthRecord{
		ID:     recordID,
		UserID: userID,
		Year:   req.Year,
		Months: req.Months(),
	}

	if err := s.wealthRepo.Update(ctx, &record); err != nil {
		return model.WealthRecord{}, err
	}

	return record, nil
}

// Delete removes wealth records owned by the given user. Unknown IDs are
// skipped silently.
func (s *WealthService) Delete(ctx context.Context, userID string, ids []string) error {
	return s.wealthRepo.Delete(ctx, userID, ids)
}

// Series builds the monthly wealth total series across all of a user's
// records, ordered by year then month. Empty months are skipped; months with
// unparseable values count as zero.
func (s *WealthService) Series(ctx context.Context, userID string) ([]model.WealthPoint, error) {
	records, err := s.wealthRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	points := []model.WealthPoint{}
	for _, r := range records {
		for i, value := range r.Months {
			if strings.TrimSpace(value) == "" {
				continue
			}
			points = append(points, model.WealthPoint{
				Year:  r.Year,
				Month: i + 1,
				Total: parseWealthValue(value),
			})
		}
	}

	return points, nil
}

// parseWealthValue parses a month cell as entered by the user. Thousands
// separators are stripped; anything still unparseable counts as zero.
func parseWealthValue(value string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
