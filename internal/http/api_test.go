package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emedicine/internal/domain"
	"emedicine/internal/repository"
	"emedicine/internal/service"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
}

func (r *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrDuplicateKey
	}
	r.byEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), r.orders...), nil
}

func (r *fakeOrderRepo) ListByUserEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var matched []domain.Order
	for _, order := range r.orders {
		if order.UserEmail == email {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

type fakeMedicineRepo struct {
	medicines []domain.Medicine
	err       error
}

func (r *fakeMedicineRepo) List(ctx context.Context) ([]domain.Medicine, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.medicines, nil
}

func newTestRouter(medicines *fakeMedicineRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := &fakeUserRepo{byEmail: map[string]domain.User{}}
	orders := &fakeOrderRepo{}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	handler := NewHandler(
		service.NewAuthService(users, "test-secret", time.Hour),
		service.NewOrderService(orders, users),
		service.NewCatalogService(medicines),
		logger,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServerStatus(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{})

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Server is running smoothly", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRegisterLoginAndOrderFlow(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{})

	// register
	rec := doJSON(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully!", body["message"])

	// duplicate email
	rec = doJSON(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice2", "email": "a@x.com", "password": "pw2",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exist!!!", body["message"])

	// login
	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User successfully logged in!", body["message"])
	assert.NotEmpty(t, body["accessToken"])

	// wrong password
	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])

	// unknown email yields the identical rejection
	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"email": "nobody@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])

	// place order
	rec = doJSON(t, router, http.MethodPost, "/orders", gin.H{
		"useremail": "a@x.com",
		"cart": []gin.H{
			{"name": "Paracetamol", "price": 4.5, "quantity": 2},
		},
		"totalPrice": 9.0,
		"shippingAddress": gin.H{
			"street": "1 Main St", "city": "Springfield",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order placed successfully!", body["message"])

	// read back by email
	rec = doJSON(t, router, http.MethodGet, "/orders?email=a@x.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "a@x.com", orders[0].UserEmail)
	assert.Equal(t, domain.OrderStatusPending, orders[0].Status)
	assert.Equal(t, 9.0, orders[0].TotalPrice)
	require.Len(t, orders[0].Cart, 1)
	assert.Equal(t, "Paracetamol", orders[0].Cart[0].Name)
	assert.NotEmpty(t, orders[0].OrderDate)
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{})

	rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{
		"useremail":  "nobody@x.com",
		"cart":       []gin.H{},
		"totalPrice": 0,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["message"])

	// no order was created
	rec = doJSON(t, router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListOrdersFilterForms(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{})

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	}).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/register", gin.H{
		"username": "bob", "email": "b@x.com", "password": "pw2",
	}).Code)

	for _, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{
			"useremail": email, "cart": []gin.H{}, "totalPrice": 1.0,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// no filter: everything
	rec := doJSON(t, router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 3)

	// filtered
	rec = doJSON(t, router, http.MethodGet, "/orders?email=a@x.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, "a@x.com", order.UserEmail)
	}

	// filter key present but empty is an error, not list-all
	rec = doJSON(t, router, http.MethodGet, "/orders?email=", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", decodeBody(t, rec)["error"])
}

func TestListMedicines(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{medicines: []domain.Medicine{
		{Name: "Paracetamol", Price: 4.5, Category: "Painkillers"},
		{Name: "Ibuprofen", Price: 6.0},
	}})

	rec := doJSON(t, router, http.MethodGet, "/medicines", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var medicines []MedicineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &medicines))
	require.Len(t, medicines, 2)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.Equal(t, 4.5, medicines[0].Price)
}

func TestListMedicinesStoreFailure(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{err: errors.New("connection reset")})

	rec := doJSON(t, router, http.MethodGet, "/medicines", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// generic message only, no internal detail
	assert.Equal(t, "Internal Server Error", decodeBody(t, rec)["error"])
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeMedicineRepo{})

	rec := doJSON(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
