package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"emedicine/internal/domain"
	"emedicine/internal/repository"
)

// ErrUserNotFound is returned when an order references an email with no
// matching user.
var ErrUserNotFound = errors.New("user not found")

// OrderService appends orders to the ledger after verifying the placing
// user exists, and reads them back by user email or unfiltered.
type OrderService interface {
	PlaceOrder(ctx context.Context, userEmail string, cart []domain.CartItem, totalPrice float64, shipping domain.ShippingAddress) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository) OrderService {
	return &orderService{
		orders: orders,
		users:  users,
	}
}

// PlaceOrder is deliberately not idempotent: identical submissions create
// distinct ledger entries.
func (s *orderService) PlaceOrder(ctx context.Context, userEmail string, cart []domain.CartItem, totalPrice float64, shipping domain.ShippingAddress) error {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return ErrUserNotFound
	}

	if _, err := s.users.GetByEmail(ctx, userEmail); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	order := &domain.Order{
		UserEmail:       userEmail,
		Cart:            cart,
		TotalPrice:      totalPrice,
		ShippingAddress: shipping,
		OrderDate:       time.Now().UTC(),
		Status:          domain.OrderStatusPending,
	}

	return s.orders.Create(ctx, order)
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.ListByUserEmail(ctx, email)
}
