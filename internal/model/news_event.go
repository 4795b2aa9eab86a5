package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NewsEvent kinds.
const (
	KindNews  = "news"
	KindEvent = "event"
)

// NewsEvent represents a news article or an event announcement. Slug is
// unique and is the public lookup key.
type NewsEvent struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title"         json:"title"`
	Slug        string        `bson:"slug"          json:"slug"`
	Kind        string        `bson:"kind"          json:"kind"`
	Body        string        `bson:"body"          json:"body"`
	ImageURL    string        `bson:"image_url,omitempty" json:"image_url,omitempty"`
	EventDate   *time.Time    `bson:"event_date,omitempty" json:"event_date,omitempty"`
	IsPublished bool          `bson:"is_published"  json:"is_published"`
	CreatedAt   time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updated_at"`
}
