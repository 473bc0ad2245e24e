package repository

import (
	"context"
	"errors"
	"fmt"

	"lostandfound/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateProfileImage(ctx context.Context, id uuid.UUID, profileImage string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, name, address, phone_number, profile_image`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (email, password_hash, name, address, phone_number, profile_image)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Email, user.PasswordHash, user.Name, user.Address, user.PhoneNumber, user.ProfileImage).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Address, &user.PhoneNumber, &user.ProfileImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error for this contract, service layer handles it
		}
		return nil, err
	}
	return user, nil
}

// FindByEmail retrieves a user by their email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := r.scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByPhoneNumber retrieves a user by their phone number
func (r *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	user, err := r.scanUser(r.db.QueryRow(ctx, sql, phoneNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by phone number: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := r.scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// Update overwrites the mutable profile fields of an existing user
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET name = $1, address = $2, phone_number = $3, profile_image = $4 WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, user.Name, user.Address, user.PhoneNumber, user.ProfileImage, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for update")
	}
	return nil
}

// UpdateProfileImage updates only the profile image path of a user
func (r *userRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, profileImage string) error {
	sql := `UPDATE users SET profile_image = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, profileImage, id)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for profile image update")
	}
	return nil
}
