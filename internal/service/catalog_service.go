package service

import (
	"context"

	"emedicine/internal/domain"
	"emedicine/internal/repository"
)

// CatalogService provides read-only access to the medicine catalog.
type CatalogService interface {
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
}

type catalogService struct {
	medicines repository.MedicineRepository
}

func NewCatalogService(medicines repository.MedicineRepository) CatalogService {
	return &catalogService{medicines: medicines}
}

func (s *catalogService) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	return s.medicines.List(ctx)
}
