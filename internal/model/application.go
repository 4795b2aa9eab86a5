package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Application statuses, in rough pipeline order.
const (
	ApplicationSubmitted   = "submitted"
	ApplicationReviewing   = "reviewing"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

// CareerApplication represents a candidate's application to a job posting.
// Reference is a uuid shown to the candidate so they can ask about their
// application without exposing the document id.
type CareerApplication struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CareerID    bson.ObjectID `bson:"career_id"     json:"career_id"`
	Reference   string        `bson:"reference"     json:"reference"`
	Name        string        `bson:"name"          json:"name"`
	Email       string        `bson:"email"         json:"email"`
	Phone       string        `bson:"phone"         json:"phone"`
	CoverLetter string        `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	ResumeURL   string        `bson:"resume_url"    json:"resume_url"`
	Status      string        `bson:"status"        json:"status"`
	CreatedAt   time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updated_at"`
}

// IsValidApplicationStatus reports whether value is a known status.
func IsValidApplicationStatus(value string) bool {
	switch value {
	case ApplicationSubmitted, ApplicationReviewing, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	default:
		return false
	}
}
