package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"lostandfound/internal/model"
	"lostandfound/internal/repository"

	"github.com/google/uuid"
)

// ProfileImageField is the multipart form field carrying the uploaded image
const ProfileImageField = "profileImage"

var ErrImageNotFound = errors.New("Profile image not found")

// UserService provides profile management for authenticated users
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.User, error)
	SaveProfileImage(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error)
	ProfileImageURL(ctx context.Context, userID uuid.UUID) (string, error)
}

type userService struct {
	userRepo   repository.UserRepository
	uploadsDir string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, uploadsDir string) UserService {
	return &userService{userRepo: userRepo, uploadsDir: uploadsDir}
}

// GetProfile returns the user record for an authenticated id
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile overwrites name, address and phone number unconditionally.
// The profile image is only replaced when the request supplies one.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Address = req.Address
	user.PhoneNumber = req.PhoneNumber
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

// SaveProfileImage writes the uploaded file into the uploads directory and
// records its public path on the user. The stored name is
// profileImage_<unix-millis><original extension>.
func (s *userService) SaveProfileImage(ctx context.Context, userID uuid.UUID, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to find user for image upload: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := os.MkdirAll(s.uploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	fileName := fmt.Sprintf("%s_%d%s", ProfileImageField, time.Now().UnixMilli(), ext)
	dstPath := filepath.Join(s.uploadsDir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	imageURL := "/uploads/" + fileName
	if err := s.userRepo.UpdateProfileImage(ctx, userID, imageURL); err != nil {
		return "", fmt.Errorf("failed to record profile image: %w", err)
	}
	return imageURL, nil
}

// ProfileImageURL returns the stored image path for a user, for redirecting
// public callers
func (s *userService) ProfileImageURL(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || user.ProfileImage == "" {
		return "", ErrImageNotFound
	}
	return user.ProfileImage, nil
}
