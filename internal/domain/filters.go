package domain

// IntentJobSearch is the only intent the engine understands.
const IntentJobSearch = "job_search"

// ParsedFilters is the structured representation of a free-text query.
// It is produced once per query, by the rule-based parser or the optional
// LLM parser, and is immutable afterwards.
//
// Keywords holds at most five terms in original query order. Skills keeps
// vocabulary order so identical queries always produce identical filters.
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

// NewParsedFilters returns filters with the fixed defaults applied.
func NewParsedFilters(query string) ParsedFilters {
	return ParsedFilters{
		Intent:        IntentJobSearch,
		Keywords:      []string{},
		Skills:        []string{},
		Status:        StatusActive,
		OriginalQuery: query,
	}
}

// VectorCandidate is a hit from the semantic retrieval channel. It lives
// for exactly one fusion pass and is never persisted.
type VectorCandidate struct {
	JobID        string
	TitleSnippet string
	Category     string
	Skills       []string
	Similarity   float64 // in [0,1], cosine similarity
}
