package repository

import (
	"context"
	"errors"
	"fmt"

	"lostandfound/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ItemRepository defines operations for found-item data
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindAll(ctx context.Context) ([]model.Item, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type itemRepository struct {
	db DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, description, category, location, image_url, area_found, user_id, user_name, user_phone_number, date_created`

// Create inserts a new item into the database
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	sql := `INSERT INTO items (name, description, category, location, image_url, area_found, user_id, user_name, user_phone_number)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, date_created`
	err := r.db.QueryRow(ctx, sql,
		item.Name, item.Description, item.Category, item.Location, item.ImageURL,
		item.AreaFound, item.UserID, item.UserName, item.UserPhoneNumber,
	).Scan(&item.ID, &item.DateCreated)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *itemRepository) queryItems(ctx context.Context, sql string, args ...any) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Category, &it.Location, &it.ImageURL,
			&it.AreaFound, &it.UserID, &it.UserName, &it.UserPhoneNumber, &it.DateCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

// FindAll retrieves every item
func (r *itemRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items`
	items, err := r.queryItems(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return items, nil
}

// FindByUser retrieves all items owned by a user
func (r *itemRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items WHERE user_id = $1`
	items, err := r.queryItems(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by user: %w", err)
	}
	return items, nil
}

// FindByID retrieves an item by its ID
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	it := &model.Item{}
	sql := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Category, &it.Location, &it.ImageURL,
		&it.AreaFound, &it.UserID, &it.UserName, &it.UserPhoneNumber, &it.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return it, nil
}

// Delete removes an item. It reports whether a row was actually deleted.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	sql := `DELETE FROM items WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
