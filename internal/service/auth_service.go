package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"lostandfound/internal/model"
	"lostandfound/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidCode        = errors.New("Invalid verification code")
	ErrUserNotFound       = errors.New("User not found")
)

// PasswordHasher abstracts the password hashing primitive so the algorithm
// can be swapped without touching handler or service logic.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// TokenIssuer mints signed session tokens for a user id
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}

// SMSSender delivers a text message to a phone number
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// AuthService provides registration, login and phone verification
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	SendVerificationCode(ctx context.Context, phoneNumber string) error
	VerifyPhoneNumber(ctx context.Context, phoneNumber, code string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	sms      SMSSender
	codes    *CodeStore
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, issuer TokenIssuer, sms SMSSender, codes *CodeStore) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		sms:      sms,
		codes:    codes,
	}
}

// Signup creates a new user account and returns it with a session token.
// Input shape validation happens at the handler via binding tags; this layer
// enforces email uniqueness and never persists the plaintext password.
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// SendVerificationCode generates a 6-digit code, dispatches it via the SMS
// gateway and stores it keyed by phone number, overwriting any prior code.
func (s *authService) SendVerificationCode(ctx context.Context, phoneNumber string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	msg := fmt.Sprintf("Your verification code is: %s", code)
	if err := s.sms.Send(ctx, phoneNumber, msg); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	s.codes.Put(phoneNumber, code)
	return nil
}

// VerifyPhoneNumber checks a submitted code. A match consumes the code and
// yields a session token for the user registered under that phone number; a
// mismatch leaves the stored code in place for further attempts.
func (s *authService) VerifyPhoneNumber(ctx context.Context, phoneNumber, code string) (string, error) {
	if !s.codes.Consume(phoneNumber, code) {
		return "", ErrInvalidCode
	}

	user, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return "", fmt.Errorf("error finding user by phone number: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// generateCode returns a random 6-digit numeric code
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
