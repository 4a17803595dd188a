package domain

import "errors"

var (
	// ErrEmptyQuery signals a search request without query text.
	ErrEmptyQuery = errors.New("query text is required")
	// ErrJobNotFound signals a missing job record.
	ErrJobNotFound = errors.New("job not found")
	// ErrTitleRequired signals a job insert without a title.
	ErrTitleRequired = errors.New("job title is required")
	// ErrSalaryRange signals salary_min above salary_max.
	ErrSalaryRange = errors.New("salary_min must not exceed salary_max")
	// ErrEmbeddingProviderError signals an upstream embedding API failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrParserUnavailable signals that the LLM parser could not produce
	// usable filters. It is always recovered by the rule-based parser and
	// never reaches a caller.
	ErrParserUnavailable = errors.New("nlp parser unavailable")
)

// KeyPrefix namespaces every key the engine writes to the store.
const KeyPrefix = "mm:"
