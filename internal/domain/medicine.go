package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Medicine is a catalog entry. The catalog is populated and maintained
// outside this system; it is only ever read here.
type Medicine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Price       float64            `bson:"price"`
	ImageURL    string             `bson:"imageURL,omitempty"`
	Stock       int                `bson:"stock,omitempty"`
}
