package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role classifies a user account. Only RoleUser is assigned by this system;
// other roles may exist in the store.
type Role string

const (
	RoleUser Role = "user"
)

// User represents a registered account. Email is the unique lookup key;
// the password is stored only as a bcrypt hash.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         Role               `bson:"role"`
}
