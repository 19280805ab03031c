package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// ItemService handles item and alias resolution and the per-item price levels.
type ItemService struct {
	itemRepo *repository.ItemRepository
}

// NewItemService creates a new ItemService with the provided repository dependencies.
func NewItemService(itemRepo *repository.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// Resolve maps a user-entered name to an item: alias short name first, then
// alias full name, then canonical item name. Returns
// apperrors.ErrItemNotFound when nothing matches.
func (s *ItemService) Resolve(ctx context.Context, name string) (model.Item, error) {
	canonical, err := s.canonicalName(ctx, name)
	if err != nil {
		return model.Item{}, err
	}
	return s.itemRepo.GetByName(ctx, canonical)
}

// ResolveOrCreate maps a user-entered name to an item, creating the item if
// it does not exist yet. Alias matches create the item under the alias's
// full name.
func (s *ItemService) ResolveOrCreate(ctx context.Context, name string) (model.Item, error) {
	canonical, err := s.canonicalName(ctx, name)
	if err != nil {
		return model.Item{}, err
	}

	item, err := s.itemRepo.GetByName(ctx, canonical)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, apperrors.ErrItemNotFound) {
		return model.Item{}, err
	}

	item = model.Item{ID: uuid.New().String(), Name: canonical}
	if err := s.itemRepo.Insert(ctx, &item); err != nil {
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// canonicalName resolves aliases; an unmatched name is returned unchanged.
func (s *ItemService) canonicalName(ctx context.Context, name string) (string, error) {
	alias, err := s.itemRepo.GetAliasByShortName(ctx, name)
	if errors.Is(err, apperrors.ErrAliasNotFound) {
		alias, err = s.itemRepo.GetAliasByFullName(ctx, name)
	}
	if err == nil {
		return alias.FullName, nil
	}
	if errors.Is(err, apperrors.ErrAliasNotFound) {
		return name, nil
	}
	return "", err
}

// GetAlias retrieves the alias matching an item's full name, if any;
// (model.Alias{}, nil) when none exists.
func (s *ItemService) GetAlias(ctx context.Context, fullName string) (model.Alias, error) {
	alias, err := s.itemRepo.GetAliasByFullName(ctx, fullName)
	if errors.Is(err, apperrors.ErrAliasNotFound) {
		return model.Alias{}, nil
	}
	return alias, err
}

// ListAliases retrieves aliases, optionally filtered by first letter.
func (s *ItemService) ListAliases(ctx context.Context, letter string) ([]model.Alias, error) {
	return s.itemRepo.ListAliases(ctx, letter)
}

// CreateAlias stores a new alias.
func (s *ItemService) CreateAlias(ctx context.Context, fullName, shortName, imagePath string) (model.Alias, error) {
	alias := model.Alias{
		ID:        uuid.New().String(),
		FullName:  fullName,
		ShortName: shortName,
		ImagePath: imagePath,
	}

	if err := s.itemRepo.InsertAlias(ctx, &alias); err != nil {
		return model.Alias{}, err
	}

	return alias, nil
}

// UpdateAlias rewrites an existing alias.
func (s *ItemService) UpdateAlias(ctx context.Context, id, fullName, shortName, imagePath string) (model.Alias, error) {
	alias := model.Alias{
		ID:        id,
		FullName:  fullName,
		ShortName: shortName,
		ImagePath: imagePath,
	}

	if err := s.itemRepo.UpdateAlias(ctx, &alias); err != nil {
		return model.Alias{}, err
	}

	return alias, nil
}

// DeleteAlias removes an alias.
func (s *ItemService) DeleteAlias(ctx context.Context, id string) error {
	return s.itemRepo.DeleteAlias(ctx, id)
}

// GetAccumulationPrice retrieves the accumulation price for an item, or nil.
func (s *ItemService) GetAccumulationPrice(ctx context.Context, itemID string) (*model.AccumulationPrice, error) {
	return s.itemRepo.GetAccumulationPrice(ctx, itemID)
}

// SetAccumulationPrice upserts the accumulation price for an item resolved by name.
func (s *ItemService) SetAccumulationPrice(ctx context.Context, itemName string, price float64) (*model.AccumulationPrice, error) {
	item, err := s.ResolveOrCreate(ctx, itemName)
	if err != nil {
		return nil, err
	}

	p := &model.AccumulationPrice{ID: uuid.New().String(), ItemID: item.ID, Price: price}
	if err := s.itemRepo.UpsertAccumulationPrice(ctx, p); err != nil {
		return nil, err
	}

	return s.itemRepo.GetAccumulationPrice(ctx, item.ID)
}

// GetTargetSellPrice retrieves the target sell price for an item, or nil.
func (s *ItemService) GetTargetSellPrice(ctx context.Context, itemID string) (*model.TargetSellPrice, error) {
	return s.itemRepo.GetTargetSellPrice(ctx, itemID)
}

// SetTargetSellPrice upserts the target sell price for an item resolved by name.
func (s *ItemService) SetTargetSellPrice(ctx context.Context, itemName string, price float64) (*model.TargetSellPrice, error) {
	item, err := s.ResolveOrCreate(ctx, itemName)
	if err != nil {
		return nil, err
	}

	p := &model.TargetSellPrice{ID: uuid.New().String(), ItemID: item.ID, Price: price}
	if err := s.itemRepo.UpsertTargetSellPrice(ctx, p); err != nil {
		return nil, err
	}

	return s.itemRepo.GetTargetSellPrice(ctx, item.ID)
}
