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

// ItemHandler handles found-item catalog requests
type ItemHandler struct {
	service service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{service: s}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
		return
	}

	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}

	item, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Printf("Error adding item: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetAllItems(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetMyItems(c *gin.Context) {
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
		return
	}

	items, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoItems) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrNoItems.Error()})
			return
		}
		log.Printf("Error fetching items for user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": service.ErrItemNotFound.Error()})
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrItemNotFound.Error()})
			return
		}
		log.Printf("Error fetching item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": service.ErrItemNotFound.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrItemNotFound.Error()})
			return
		}
		log.Printf("Error deleting item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// RegisterItemRoutes registers item routes. Listing, per-id lookup and
// deletion are public; creation and the caller's own listing require a token.
func (h *ItemHandler) RegisterItemRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/item", authMW, h.CreateItem)

	itemsGroup := rg.Group("/items")
	{
		itemsGroup.GET("", h.GetAllItems)
		itemsGroup.GET("/user", authMW, h.GetMyItems)
		itemsGroup.GET("/:id", h.GetItemByID)
		itemsGroup.DELETE("/:id", h.DeleteItem)
	}
}
