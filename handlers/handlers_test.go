package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diozenio/ecommerce-app-backend/handlers"
	"github.com/diozenio/ecommerce-app-backend/models"
	"github.com/diozenio/ecommerce-app-backend/routes"
	"github.com/diozenio/ecommerce-app-backend/store"
	"github.com/diozenio/ecommerce-app-backend/synth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://api.test"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Load("../store/testdata/data.json", testBaseURL)
	require.NoError(t, err)

	gen := synth.NewGenerator(synth.Bounds{
		VATMin: 0.1, VATMax: 0.2, ShippingMin: 50, ShippingMax: 100,
	})

	r := gin.New()
	routes.SetupRoutes(r, handlers.New(st, gen))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "valid credentials",
			body:        `{"email": "a@b.com", "password": "x"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Login successful",
		},
		{
			name:        "wrong password",
			body:        `{"email": "a@b.com", "password": "wrong"}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "empty email",
			body:        `{"email": "", "password": "x"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
		{
			name:        "empty password",
			body:        `{"email": "a@b.com", "password": ""}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Message string      `json:"message"`
				User    models.User `json:"user"`
			}
			decode(t, w, &resp)
			assert.Equal(t, tt.wantMessage, resp.Message)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "a@b.com", resp.User.Email)
				// The mock echoes the password back; the client relies on it.
				assert.Equal(t, "x", resp.User.Password)
			}
		})
	}
}

func TestSignup(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/signup", `{"fullName": "New User", "email": "new@b.com", "password": "secret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "new@b.com", resp.User.Email)

	// Same email again is rejected.
	w = do(r, http.MethodPost, "/signup", `{"fullName": "New User", "email": "new@b.com", "password": "secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp struct {
		Message string `json:"message"`
	}
	decode(t, w, &errResp)
	assert.Equal(t, "User already exists", errResp.Message)

	// Missing fields are rejected before touching the store.
	w = do(r, http.MethodPost, "/signup", `{"fullName": "", "email": "x@b.com", "password": "y"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &errResp)
	assert.Equal(t, "Full name, email and password are required", errResp.Message)
}

func TestCategories(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var categories []models.Category
	decode(t, w, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Sneakers", categories[0].Title)

	w = do(r, http.MethodGet, "/categories/c2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var category models.Category
	decode(t, w, &category)
	assert.Equal(t, "Running", category.Title)

	w = do(r, http.MethodGet, "/categories/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 2)

	w = do(r, http.MethodGet, "/products/p2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	decode(t, w, &product)
	assert.Equal(t, "Runner", product.Title)
	assert.Equal(t, testBaseURL+"/images/ABC", product.ImageURL,
		"served product must carry the rewritten image URL")

	w = do(r, http.MethodGet, "/products/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrders(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decode(t, w, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, "Shoe", orders[0].Title)
	assert.Equal(t, models.StatusPicked, orders[0].Status)
}

func TestOrderStatusIsSynthetic(t *testing.T) {
	r := newTestRouter(t)

	// Lowercase on purpose: the literal set the client app expects, distinct
	// from the canonical OrderStatus values.
	valid := map[string]bool{"in_transit": true, "picked": true, "packing": true}
	for i := 0; i < 50; i++ {
		w := do(r, http.MethodGet, "/orders/anything-at-all", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Status string `json:"status"`
		}
		decode(t, w, &resp)
		assert.True(t, valid[resp.Status], "unexpected status %q", resp.Status)
	}
}

func TestTrackOrder(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/orders/o1/track", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var delivery models.OrderDelivery
	decode(t, w, &delivery)
	assert.Equal(t, "o1", delivery.OrderID)
	require.Len(t, delivery.StatusHistory, 2)
	assert.Equal(t, models.StatusPacking, delivery.StatusHistory[0].Status)
	assert.Equal(t, models.StatusPicked, delivery.StatusHistory[1].Status)

	w = do(r, http.MethodGet, "/orders/nope/track", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errResp struct {
		Message string `json:"message"`
	}
	decode(t, w, &errResp)
	assert.Equal(t, "Order tracking not found", errResp.Message)
}

func TestTaxes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/taxes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var taxes synth.Taxes
	decode(t, w, &taxes)
	assert.GreaterOrEqual(t, taxes.VAT, 0.1)
	assert.LessOrEqual(t, taxes.VAT, 0.2)
	assert.GreaterOrEqual(t, taxes.ShippingFee, 50)
	assert.LessOrEqual(t, taxes.ShippingFee, 100)
}

func TestGetImage(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/images/img-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0, 1, 2}, w.Body.Bytes())

	w = do(r, http.MethodGet, "/images/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errResp struct {
		Message string `json:"message"`
	}
	decode(t, w, &errResp)
	assert.Equal(t, "Image not found", errResp.Message)
}
