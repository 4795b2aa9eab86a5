package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Employment types for a job posting.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// Career represents a job posting. Closed postings stay in the collection
// with IsOpen=false so past applications keep a valid reference.
type Career struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title"         json:"title"`
	Department   string        `bson:"department"    json:"department"`
	Location     string        `bson:"location"      json:"location"`
	Type         string        `bson:"type"          json:"type"`
	Description  string        `bson:"description"   json:"description"`
	Requirements []string      `bson:"requirements"  json:"requirements"`
	SalaryRange  string        `bson:"salary_range,omitempty" json:"salary_range,omitempty"`
	IsOpen       bool          `bson:"is_open"       json:"is_open"`
	Deadline     *time.Time    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"    json:"updated_at"`
}
