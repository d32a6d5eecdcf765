package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/identity"
	"storefront/internal/storage"
	cartstore "storefront/internal/store/cart"
	orderstore "storefront/internal/store/order"
	sessionstore "storefront/internal/store/session"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	session := sessionstore.New(
		identity.NewStaticDirectory(identity.DemoCredentials()),
		storage.NewMemory(),
		logDiscard(),
	)
	session.Initialize(context.Background())

	cart := cartstore.New()
	orders := orderstore.New()
	deps := Deps{
		Session:  session,
		Cart:     cart,
		Orders:   orders,
		Checkout: checkout.New(session, cart, orders, 200, logDiscard()),
		Catalog:  catalog.Default(),
	}

	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router, deps
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReady(t *testing.T) {
	router, _ := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
	// nil pool means in-memory mode: always ready.
	if rec := doJSON(t, router, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", rec.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"isAuthenticated":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"","password":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty credentials, got %d", rec.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	router, deps := newTestRouter(t)
	_ = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)

	rec := doJSON(t, router, http.MethodPost, "/auth/logout", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deps.Session.IsAuthenticated() {
		t.Fatal("expected cleared session")
	}
}

func TestRegisterHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@example.com","phone":"0813","password":"Abcdefg1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"name":"","email":"","phone":"","password":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
}

func TestCartHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	// Product 1 twice, product 2 once.
	for _, body := range []string{`{"productId":"1"}`, `{"productId":"1"}`, `{"productId":"2"}`} {
		if rec := doJSON(t, router, http.MethodPost, "/cart/items", body); rec.Code != http.StatusOK {
			t.Fatalf("add item: expected 200, got %d", rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/cart", "")
	var cart cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 2 || cart.TotalQuantity != 3 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
	if cart.TotalCents != 2*12000+9500 {
		t.Fatalf("unexpected total: %d", cart.TotalCents)
	}
	if cart.Items[0].Price != "$120.00" {
		t.Fatalf("price must be formatted at the boundary, got %q", cart.Items[0].Price)
	}

	rec = doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"999"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}

	_ = doJSON(t, router, http.MethodPost, "/cart/items/1/decrease", "")
	_ = doJSON(t, router, http.MethodDelete, "/cart/items/2", "")

	rec = doJSON(t, router, http.MethodGet, "/cart", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Qty != 1 {
		t.Fatalf("unexpected cart after mutations: %+v", cart)
	}

	if rec := doJSON(t, router, http.MethodDelete, "/cart", ""); rec.Code != http.StatusOK {
		t.Fatalf("clear cart: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/cart", "")
	_ = json.Unmarshal(rec.Body.Bytes(), &cart)
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestCheckoutHandler(t *testing.T) {
	router, deps := newTestRouter(t)
	shipping := `{"address":"Jl. Sudirman 1","city":"Jakarta","postalCode":"10110"}`

	rec := doJSON(t, router, http.MethodPost, "/checkout", shipping)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	_ = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)

	rec = doJSON(t, router, http.MethodPost, "/checkout", shipping)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty cart, got %d", rec.Code)
	}

	_ = doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"1"}`)

	rec = doJSON(t, router, http.MethodPost, "/checkout", `{"address":"","city":"Jakarta","postalCode":"10110"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing shipping field, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/checkout", shipping)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var order orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.TotalCents != 12000+200 || order.Status != "On Process" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(deps.Cart.Items()) != 0 {
		t.Fatal("cart must be empty after checkout")
	}

	rec = doJSON(t, router, http.MethodGet, "/orders", "")
	if !strings.Contains(rec.Body.String(), order.ID) {
		t.Fatalf("expected order in list, got %s", rec.Body.String())
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	router, _ := newTestRouter(t)
	_ = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)
	_ = doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"1"}`)
	rec := doJSON(t, router, http.MethodPost, "/checkout", `{"address":"A","city":"B","postalCode":"C"}`)
	var order orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}

	rec = doJSON(t, router, http.MethodPatch, "/orders/"+order.ID+"/status", `{"status":"On-Transit"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"On-Transit"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPatch, "/orders/"+order.ID+"/status", `{"status":"Teleported"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/orders/missing/status", `{"status":"Delivered"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", rec.Code)
	}
}

func TestProfileAndPasswordResetHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/auth/profile", `{"name":"X"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with no session, got %d", rec.Code)
	}

	_ = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"budi@example.com","password":"password123"}`)

	rec = doJSON(t, router, http.MethodPatch, "/auth/profile", `{"address":"Jl. Melati 5"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Jl. Melati 5") {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/auth/password-reset", `{"email":"budi@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/auth/password-reset", `{"email":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty email, got %d", rec.Code)
	}
}

func TestCatalogHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/catalog/products", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"price":"$120.00"`) {
		t.Fatalf("unexpected products response: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/catalog/offers", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Weekend Bonus") {
		t.Fatalf("unexpected offers response: %d %s", rec.Code, rec.Body.String())
	}
}
