package matchmaker

import "time"

// ParsedFilters is the structured interpretation of a free-text query,
// echoed back by the search endpoint.
type ParsedFilters struct {
	Intent           string   `json:"intent"`
	Keywords         []string `json:"keywords"`
	Location         *string  `json:"location"`
	GeoRadiusKm      *int     `json:"geo_radius_km"`
	SalaryMin        *int     `json:"salary_min"`
	SalaryMax        *int     `json:"salary_max"`
	EmploymentType   *string  `json:"employment_type"`
	ExperienceLevel  *string  `json:"experience_level"`
	Skills           []string `json:"skills"`
	Category         *string  `json:"category"`
	Status           string   `json:"status"`
	DetectedLanguage *string  `json:"detected_language,omitempty"`
	OriginalQuery    string   `json:"original_query"`
}

// Job is a job posting as returned by the API. Optional attributes are
// pointers; a nil field means the server does not know the value.
type Job struct {
	JobID           string     `json:"job_id"`
	ProviderID      *string    `json:"provider_id,omitempty"`
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
	MatchScore      float64    `json:"match_score"`
}

// JobInsert is the write-side record for job creation.
type JobInsert struct {
	ProviderID      string   `json:"provider_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	EmploymentType  string   `json:"employment_type"`
	SalaryMin       int      `json:"salary_min"`
	SalaryMax       int      `json:"salary_max"`
	Currency        string   `json:"currency"`
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"`
	Status          string   `json:"status"`
	IsVerified      bool     `json:"is_verified"`
}

// SearchResponse is the answer to one search query.
type SearchResponse struct {
	Query         string        `json:"query"`
	ParsedFilters ParsedFilters `json:"parsed_filters"`
	Results       []Job         `json:"results"`
}

// BatchResult reports the outcome for one job of a batch insert.
type BatchResult struct {
	JobID string `json:"job_id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthCheck is the state of one dependency.
type HealthCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthReport is the response of the health endpoint.
type HealthReport struct {
	Status string                 `json:"status"`
	Checks map[string]HealthCheck `json:"checks"`
}
