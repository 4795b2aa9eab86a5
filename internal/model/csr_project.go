package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CSRProject represents a corporate social responsibility project page.
type CSRProject struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title"         json:"title"`
	Summary     string        `bson:"summary"       json:"summary"`
	Body        string        `bson:"body"          json:"body"`
	ImageURL    string        `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StartedAt   *time.Time    `bson:"started_at,omitempty" json:"started_at,omitempty"`
	IsPublished bool          `bson:"is_published"  json:"is_published"`
	CreatedAt   time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updated_at"`
}
