package dtos

import (
	"time"

	"github.com/justsurfingit/devjobs/internal/models"
)

type JobExtractionRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

type JobResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	CompanyName      string    `json:"company_name"`
	CompanyLogoType  string    `json:"company_logo_type"`
	Description      string    `json:"description,omitempty"`
	Salary           string    `json:"salary"`
	ApplicationEmail string    `json:"application_email,omitempty"`
	ApplicationURL   string    `json:"application_url,omitempty"`
	LocationType     string    `json:"location_type"`
	Location         string    `json:"location,omitempty"`
	Approved         bool      `json:"approved"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewJobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:               job.ID.String(),
		Title:            job.Title,
		Type:             job.Type,
		CompanyName:      job.CompanyName,
		CompanyLogoType:  job.CompanyLogoType,
		Description:      job.Description,
		Salary:           job.Salary,
		ApplicationEmail: job.ApplicationEmail,
		ApplicationURL:   job.ApplicationURL,
		LocationType:     job.LocationType,
		Location:         job.Location,
		Approved:         job.Approved,
		CreatedAt:        job.CreatedAt,
	}
}

type JobListResponse struct {
	Jobs    []JobResponse `json:"jobs"`
	Count   int           `json:"count"`
	Message string        `json:"message,omitempty"`
}

// ValidationErrorResponse maps each field name to its messages.
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

type OptionsResponse struct {
	JobTypes      []string `json:"job_types"`
	LocationTypes []string `json:"location_types"`
}
