package repository

import (
	"context"

	"emedicine/internal/domain"
)

// OrderRepository exposes persistence operations for the order ledger.
// Listings come back in storage-native order; no sort is applied.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	ListByUserEmail(ctx context.Context, email string) ([]domain.Order, error)
}

// MedicineRepository provides read-only access to the catalog.
type MedicineRepository interface {
	List(ctx context.Context) ([]domain.Medicine, error)
}
