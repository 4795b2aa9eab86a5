package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a human principal. The password hash never appears in
// JSON, and read paths other than login exclude it from the projection
// entirely. Accounts are never hard-deleted; IsActive is the deletion
// analogue.
type Account struct {
	ID           bson.ObjectID `bson:"_id,omitempty"   json:"id"`
	Name         string        `bson:"name"            json:"name"`
	Email        string        `bson:"email"           json:"email"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	Role         string        `bson:"role"            json:"role"`
	IsActive     bool          `bson:"is_active"       json:"is_active"`
	LastLogin    *time.Time    `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"      json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"      json:"updated_at"`
}

// IsValidRole reports whether value is a known account role.
func IsValidRole(value string) bool {
	return value == RoleUser || value == RoleAdmin
}
