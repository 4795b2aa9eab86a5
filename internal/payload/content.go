package payload

import "time"

type SubmitInquiryRequest struct {
	Company     string `json:"company"      validate:"required,max=200"`
	ContactName string `json:"contact_name" validate:"required,min=2,max=100"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"omitempty,max=30"`
	Subject     string `json:"subject"      validate:"required,min=3,max=200"`
	Message     string `json:"message"      validate:"required,min=10,max=10000"`
}

type CreateCSRProjectRequest struct {
	Title       string     `json:"title"        validate:"required,min=3,max=200"`
	Summary     string     `json:"summary"      validate:"required,max=500"`
	Body        string     `json:"body"         validate:"required"`
	ImageURL    string     `json:"image_url"    validate:"omitempty,url,max=500"`
	StartedAt   *time.Time `json:"started_at"`
	IsPublished *bool      `json:"is_published"`
}

type UpdateCSRProjectRequest struct {
	Title       *string    `json:"title"        validate:"omitempty,min=3,max=200"`
	Summary     *string    `json:"summary"      validate:"omitempty,max=500"`
	Body        *string    `json:"body"         validate:"omitempty"`
	ImageURL    *string    `json:"image_url"    validate:"omitempty,url,max=500"`
	StartedAt   *time.Time `json:"started_at"`
	IsPublished *bool      `json:"is_published"`
}

type CreateNewsEventRequest struct {
	Title       string     `json:"title"      validate:"required,min=3,max=200"`
	Slug        string     `json:"slug"       validate:"required,min=3,max=200,lowercase"`
	Kind        string     `json:"kind"       validate:"required,oneof=news event"`
	Body        string     `json:"body"       validate:"required"`
	ImageURL    string     `json:"image_url"  validate:"omitempty,url,max=500"`
	EventDate   *time.Time `json:"event_date"`
	IsPublished *bool      `json:"is_published"`
}

type UpdateNewsEventRequest struct {
	Title       *string    `json:"title"      validate:"omitempty,min=3,max=200"`
	Slug        *string    `json:"slug"       validate:"omitempty,min=3,max=200,lowercase"`
	Kind        *string    `json:"kind"       validate:"omitempty,oneof=news event"`
	Body        *string    `json:"body"       validate:"omitempty"`
	ImageURL    *string    `json:"image_url"  validate:"omitempty,url,max=500"`
	EventDate   *time.Time `json:"event_date"`
	IsPublished *bool      `json:"is_published"`
}
