package model

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a found-item listing. UserName and UserPhoneNumber are
// snapshots of the owner taken at creation time; they are never synced with
// later profile edits.
type Item struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	ImageURL        string    `json:"imageUrl"`
	AreaFound       string    `json:"areaFound"`
	UserID          uuid.UUID `json:"userId"`
	UserName        string    `json:"userName"`
	UserPhoneNumber string    `json:"userPhoneNumber"`
	DateCreated     time.Time `json:"dateCreated"`
}

// CreateItemRequest is used for posting a new found item
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	AreaFound   string `json:"areaFound" binding:"required"`
}
