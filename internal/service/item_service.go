package service

import (
	"context"
	"errors"
	"fmt"

	"lostandfound/internal/model"
	"lostandfound/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errors.New("Item not found")
	ErrNoItems      = errors.New("No items found for this user")
)

// ItemService provides the found-item catalog
type ItemService interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateItemRequest) (*model.Item, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo repository.ItemRepository, userRepo repository.UserRepository) ItemService {
	return &itemService{itemRepo: itemRepo, userRepo: userRepo}
}

// Create stores a new item for the authenticated user. The owner's current
// name and phone number are copied onto the item and stay fixed afterwards.
func (s *itemService) Create(ctx context.Context, userID uuid.UUID, req model.CreateItemRequest) (*model.Item, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for item creation: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	item := &model.Item{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
		AreaFound:       req.AreaFound,
		UserID:          userID,
		UserName:        user.Name,
		UserPhoneNumber: user.PhoneNumber,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item in repository: %w", err)
	}
	return item, nil
}

// ListAll returns every item in the catalog
func (s *itemService) ListAll(ctx context.Context) ([]model.Item, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// ListByUser returns the caller's items. An empty result is reported as
// ErrNoItems rather than an empty list, matching the public contract.
func (s *itemService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Item, error) {
	items, err := s.itemRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items by user: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// GetByID returns a single item
func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes an item unconditionally if it exists. There is no ownership
// check on deletion; the route is public in the original contract.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
