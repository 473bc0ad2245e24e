package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostandfound/internal/middleware"
	"lostandfound/internal/model"
	"lostandfound/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubItemService struct {
	items     []model.Item
	createErr error
	listErr   error
	getErr    error
	deleteErr error
}

func (s *stubItemService) Create(_ context.Context, userID uuid.UUID, req model.CreateItemRequest) (*model.Item, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.Item{
		ID:          uuid.New(),
		Name:        req.Name,
		UserID:      userID,
		UserName:    "Ann",
		DateCreated: time.Now(),
	}, nil
}

func (s *stubItemService) ListAll(_ context.Context) ([]model.Item, error) {
	return s.items, nil
}

func (s *stubItemService) ListByUser(_ context.Context, _ uuid.UUID) ([]model.Item, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubItemService) GetByID(_ context.Context, _ uuid.UUID) (*model.Item, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &s.items[0], nil
}

func (s *stubItemService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

// fakeAuth stands in for the JWT middleware, injecting a fixed user id
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, userID)
		c.Next()
	}
}

func setupItemRouter(svc service.ItemService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()
	router := gin.New()
	api := router.Group("/api")
	NewItemHandler(svc).RegisterItemRoutes(api, fakeAuth(userID))
	return router
}

func TestItemHandler_CreateItem(t *testing.T) {
	router := setupItemRouter(&stubItemService{}, uuid.New())

	body := `{"name":"Umbrella","description":"Black","category":"Accessories","location":"Library","imageUrl":"/images/u.jpg","areaFound":"2nd floor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/item", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Umbrella")
	assert.Contains(t, w.Body.String(), "Ann")
}

func TestItemHandler_CreateItem_MissingField(t *testing.T) {
	router := setupItemRouter(&stubItemService{}, uuid.New())

	body := `{"name":"Umbrella"}`
	req := httptest.NewRequest(http.MethodPost, "/api/item", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemHandler_CreateItem_UserGone(t *testing.T) {
	router := setupItemRouter(&stubItemService{createErr: service.ErrUserNotFound}, uuid.New())

	body := `{"name":"Umbrella","description":"Black","category":"Accessories","location":"Library","imageUrl":"/images/u.jpg","areaFound":"2nd floor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/item", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemHandler_GetAllItems_Empty(t *testing.T) {
	router := setupItemRouter(&stubItemService{items: []model.Item{}}, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestItemHandler_GetMyItems_Empty(t *testing.T) {
	router := setupItemRouter(&stubItemService{listErr: service.ErrNoItems}, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/items/user", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No items found for this user")
}

func TestItemHandler_GetItemByID_NotFound(t *testing.T) {
	router := setupItemRouter(&stubItemService{getErr: service.ErrItemNotFound}, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/items/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemHandler_GetItemByID_BadID(t *testing.T) {
	router := setupItemRouter(&stubItemService{}, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/items/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemHandler_DeleteItem(t *testing.T) {
	router := setupItemRouter(&stubItemService{}, uuid.New())

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Item deleted successfully")
}

func TestItemHandler_DeleteItem_NotFound(t *testing.T) {
	router := setupItemRouter(&stubItemService{deleteErr: service.ErrItemNotFound}, uuid.New())

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
