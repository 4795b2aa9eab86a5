package payload

import "time"

type CreateCareerRequest struct {
	Title        string     `json:"title"        validate:"required,min=3,max=200"`
	Department   string     `json:"department"   validate:"required,max=100"`
	Location     string     `json:"location"     validate:"required,max=200"`
	Type         string     `json:"type"         validate:"required,oneof=full-time part-time contract internship"`
	Description  string     `json:"description"  validate:"required"`
	Requirements []string   `json:"requirements" validate:"required,min=1,dive,required,max=500"`
	SalaryRange  string     `json:"salary_range" validate:"omitempty,max=100"`
	IsOpen       *bool      `json:"is_open"`
	Deadline     *time.Time `json:"deadline"`
}

type UpdateCareerRequest struct {
	Title        *string    `json:"title"        validate:"omitempty,min=3,max=200"`
	Department   *string    `json:"department"   validate:"omitempty,max=100"`
	Location     *string    `json:"location"     validate:"omitempty,max=200"`
	Type         *string    `json:"type"         validate:"omitempty,oneof=full-time part-time contract internship"`
	Description  *string    `json:"description"  validate:"omitempty"`
	Requirements *[]string  `json:"requirements" validate:"omitempty,min=1,dive,required,max=500"`
	SalaryRange  *string    `json:"salary_range" validate:"omitempty,max=100"`
	IsOpen       *bool      `json:"is_open"`
	Deadline     *time.Time `json:"deadline"`
}

type SubmitApplicationRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=100"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required,max=30"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL   string `json:"resume_url"   validate:"required,url,max=500"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted reviewing shortlisted rejected hired"`
}
