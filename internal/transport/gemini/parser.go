package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

//go:embed prompt.md
var parserPrompt string

// Parser extracts search filters from free-form multilingual queries via the
// Gemini API. It is an optional front for the rule-based parser; callers fall
// back to rules on any error.
type Parser struct {
	client *Client
	model  string
	logger *zap.Logger
}

// NewParser creates an LLM query parser using the given generation model.
func NewParser(client *Client, model string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{client: client, model: model, logger: logger}
}

// Parse sends the query to Gemini and unmarshals the structured answer.
// Every failure is wrapped with domain.ErrParserUnavailable so the search
// service can degrade without inspecting transport details.
func (p *Parser) Parse(ctx context.Context, query string) (domain.ParsedFilters, error) {
	prompt := strings.ReplaceAll(parserPrompt, "{{QUERY}}", query)

	raw, err := p.client.generateText(ctx, p.model, prompt)
	if err != nil {
		return domain.ParsedFilters{}, fmt.Errorf("%w: %w", domain.ErrParserUnavailable, err)
	}

	filters := domain.NewParsedFilters(query)
	if err := json.Unmarshal([]byte(extractJSON(raw)), &filters); err != nil {
		p.logger.Debug("gemini parser returned malformed json", zap.String("response", raw))
		return domain.ParsedFilters{}, fmt.Errorf("%w: decode response: %w", domain.ErrParserUnavailable, err)
	}

	// The model occasionally rewrites these; they are ours to set.
	filters.Intent = domain.IntentJobSearch
	filters.Status = domain.StatusActive
	filters.OriginalQuery = query

	return filters, nil
}

// extractJSON strips the markdown code fences Gemini likes to wrap JSON in.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
