package handler

import (
	"errors"
	"log"
	"net/http"

	"lostandfound/internal/middleware"
	"lostandfound/internal/model"
	"lostandfound/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles profile related requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Printf("Error fetching user details: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Printf("Error updating user details: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
		return
	}

	file, err := c.FormFile(service.ProfileImageField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	imageURL, err := h.service.SaveProfileImage(c.Request.Context(), userID, file)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Printf("Error uploading profile image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Profile image uploaded successfully!",
		"profileImage": imageURL,
	})
}

// ProfileImageByID redirects public callers to the stored image for a user
func (h *UserHandler) ProfileImageByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": service.ErrImageNotFound.Error()})
		return
	}

	imageURL, err := h.service.ProfileImageURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrImageNotFound.Error()})
			return
		}
		log.Printf("Error fetching profile image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, imageURL)
}

// RegisterUserRoutes registers user routes. The profile-image lookup is
// public; everything else requires a valid token.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.GET("/me", authMW, h.GetMe)
		userGroup.PUT("/me", authMW, h.UpdateMe)
		userGroup.POST("/upload", authMW, h.UploadProfileImage)
		userGroup.GET("/profile-image/:id", h.ProfileImageByID)
	}
}
