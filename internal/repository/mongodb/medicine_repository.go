package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"emedicine/internal/domain"
	"emedicine/internal/repository"
)

type MedicineRepository struct {
	medicines *mongo.Collection
}

func NewMedicineRepository(db *mongo.Database) repository.MedicineRepository {
	return &MedicineRepository{medicines: db.Collection(medicineCollection)}
}

func (r *MedicineRepository) List(ctx context.Context) ([]domain.Medicine, error) {
	cursor, err := r.medicines.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find medicines: %w", err)
	}

	var medicines []domain.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, fmt.Errorf("decode medicines: %w", err)
	}
	return medicines, nil
}
