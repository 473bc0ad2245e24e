package model

import "github.com/google/uuid"

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phoneNumber"`
	ProfileImage string    `json:"profileImage"`
}

// SignupRequest is the payload for account registration
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest overwrites the listed profile fields. ProfileImage is
// only applied when supplied non-empty, everything else is written as-is.
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	ProfileImage string `json:"profileImage"`
}

// SendCodeRequest asks for a verification code to be sent to a phone number
type SendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// VerifyCodeRequest submits a previously sent verification code
type VerifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}
