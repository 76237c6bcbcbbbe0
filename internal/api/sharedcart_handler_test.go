package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// fakeSharedCartService is a canned-response core.SharedCartService.
type fakeSharedCartService struct {
	session  *models.SharedCartSession
	item     *models.SharedCartItem
	split    *models.BillSplit
	err      error
	clearErr error
}

func (f *fakeSharedCartService) CreateSession(context.Context, string, string) (*models.SharedCartSession, error) {
	return f.session, f.err
}

func (f *fakeSharedCartService) JoinSession(context.Context, string) (*models.SharedCartSession, error) {
	return f.session, f.err
}

func (f *fakeSharedCartService) AddItem(context.Context, string, string, string) (*models.SharedCartItem, error) {
	return f.item, f.err
}

func (f *fakeSharedCartService) ListItems(context.Context, string) (*models.BillSplit, error) {
	return f.split, f.err
}

func (f *fakeSharedCartService) ClearSession(context.Context, string) error {
	return f.clearErr
}

func newSharedCartRouter(svc core.SharedCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSharedCartHandler(svc)
	router.POST("/api/shared-cart/create", h.CreateSession)
	router.GET("/api/shared-cart/join/:cartId", h.JoinSession)
	router.GET("/api/shared-cart/:sessionId/items", h.ListItems)
	router.POST("/api/shared-cart/:sessionId/add", h.AddItem)
	router.DELETE("/api/shared-cart/:sessionId/items", h.ClearSession)
	return router
}

func TestCreateSessionEndpoint(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{
		session: &models.SharedCartSession{ID: "AB12CD34", Name: "Weekend Groceries", Active: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shared-cart/create", strings.NewReader(`{"name":"Weekend Groceries"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "AB12CD34", body["session_id"])
	assert.Equal(t, "Weekend Groceries", body["name"])
}

func TestJoinSessionEndpointUnknownCode(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{err: core.ErrSessionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shared-cart/join/ZZZZZZZZ", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestAddItemEndpointRequiresProductID(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shared-cart/AB12CD34/add", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemEndpoint(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{
		item: &models.SharedCartItem{ID: "item-1", ProductID: "DB001", AddedBy: models.AnonymousContributor, Quantity: 1},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/shared-cart/AB12CD34/add", strings.NewReader(`{"product_id":"DB001"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "item-1", body["item_id"])
}

func TestListItemsEndpointReturnsBillSplit(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{
		split: &models.BillSplit{
			Session: models.SharedCartSession{ID: "AB12CD34", Name: "Flat 4B", Active: true},
			Items: []models.BillItem{
				{ID: "item-1", Product: models.Product{ID: "DB001", Name: "Amul Fresh Milk", Price: 60, Category: "Dairy & Bakery"}, AddedBy: "alice@example.com", Quantity: 1},
			},
			UserTotals: map[string]float64{"alice@example.com": 60},
			OverBudget: map[string]bool{},
			GrandTotal: 60,
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shared-cart/AB12CD34/items", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success    bool               `json:"success"`
		UserTotals map[string]float64 `json:"user_totals"`
		GrandTotal float64            `json:"grand_total"`
		Items      []json.RawMessage  `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.InDelta(t, 60, body.UserTotals["alice@example.com"], 1e-9)
	assert.InDelta(t, 60, body.GrandTotal, 1e-9)
	assert.Len(t, body.Items, 1)
}

func TestClearSessionEndpointPartialFailure(t *testing.T) {
	router := newSharedCartRouter(&fakeSharedCartService{clearErr: core.ErrClearIncomplete})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/shared-cart/AB12CD34/items", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
