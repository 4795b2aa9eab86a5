package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ClientInquiry represents a message sent through the public contact form.
type ClientInquiry struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Company     string        `bson:"company"       json:"company"`
	ContactName string        `bson:"contact_name"  json:"contact_name"`
	Email       string        `bson:"email"         json:"email"`
	Phone       string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject     string        `bson:"subject"       json:"subject"`
	Message     string        `bson:"message"       json:"message"`
	IsHandled   bool          `bson:"is_handled"    json:"is_handled"`
	CreatedAt   time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updated_at"`
}
