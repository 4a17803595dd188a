package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job statuses as stored in the structured index.
const (
	StatusActive = "active"
	StatusFilled = "filled"
	StatusDraft  = "draft"
)

// Job is a job posting. Everything except JobID and Title is optional:
// candidates coming from the vector channel carry only a title snippet,
// category and skills, so consumers must treat missing attributes as
// "unknown", never as a mismatch.
type Job struct {
	JobID           uuid.UUID  `json:"job_id"`
	ProviderID      *uuid.UUID `json:"provider_id,omitempty"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Category        *string    `json:"category,omitempty"`
	City            *string    `json:"city,omitempty"`
	Country         *string    `json:"country,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	EmploymentType  *string    `json:"employment_type,omitempty"`
	SalaryMin       *int       `json:"salary_min,omitempty"`
	SalaryMax       *int       `json:"salary_max,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	ExperienceLevel *string    `json:"experience_level,omitempty"`
	Skills          []string   `json:"skills"`
	Status          *string    `json:"status,omitempty"`
	IsVerified      *bool      `json:"is_verified,omitempty"`
	DatePosted      *time.Time `json:"date_posted,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`

	// MatchScore is always in [0,1] on a job inside a result set: either
	// the vector similarity or the computed heuristic score.
	MatchScore float64 `json:"match_score"`
}

// JobInsert is the write-side record for ingestion. Unlike Job, the full
// attribute set is required at insert time.
type JobInsert struct {
	ProviderID      uuid.UUID `json:"provider_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	EmploymentType  string    `json:"employment_type"`
	SalaryMin       int       `json:"salary_min"`
	SalaryMax       int       `json:"salary_max"`
	Currency        string    `json:"currency"`
	ExperienceLevel string    `json:"experience_level"`
	Skills          []string  `json:"skills"`
	Status          string    `json:"status"`
	IsVerified      bool      `json:"is_verified"`
}

// Validate checks the fields the engine cannot default.
func (j *JobInsert) Validate() error {
	if j.Title == "" {
		return ErrTitleRequired
	}
	if j.SalaryMin > j.SalaryMax && j.SalaryMax != 0 {
		return ErrSalaryRange
	}
	return nil
}

// SearchResponse is the engine's answer to one query. A degraded query
// (one or both retrieval channels down) still produces a well-formed
// response with fewer results, never an error.
type SearchResponse struct {
	Query         string        `json:"query"`
	ParsedFilters ParsedFilters `json:"parsed_filters"`
	Results       []Job         `json:"results"`
}
