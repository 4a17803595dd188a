// Package parser turns free-text job queries into structured filters using
// a fixed rule set: vocabulary scans, ordered regex lists and first-match
// classification tables. It is fully deterministic, makes no external calls
// and never fails; fields a query does not mention are simply left unset.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// radiusPatterns are tried in order; the first match wins.
var radiusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`within\s+(\d+)\s*(?:km|kilometer|kilometres)`),
	regexp.MustCompile(`(\d+)\s*(?:km|kilometer|kilometres)\s+radius`),
	regexp.MustCompile(`radius\s+of\s+(\d+)\s*(?:km|kilometer|kilometres)`),
}

// salaryPatterns are tried in order; the first match wins. Two captures make
// a range, a single capture sets salary_min only. The [-–to]+ character class
// is intentional: it accepts "-", "–", "to" and mixtures like "40k to 60k".
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[kK]?\s*[-–to]+\s*(\d+)[kK]?`),
	regexp.MustCompile(`(\d+)k?\s*-\s*(\d+)k?`),
	regexp.MustCompile(`salary\s+(\d+)[kK]?\s*[-–to]+\s*(\d+)[kK]?`),
	regexp.MustCompile(`minimum\s+(\d+)[kK]?\s+salary`),
	regexp.MustCompile(`(\d+)[kK]?\s+minimum`),
}

// Parser is the deterministic rule-based query parser. It is stateless and
// safe for concurrent use; it also serves as the guaranteed fallback when
// the LLM parser is configured but fails.
type Parser struct{}

// New creates a rule-based parser.
func New() *Parser {
	return &Parser{}
}

// Parse extracts structured filters from query text. Evaluation order is
// fixed (keywords, location, radius, skills, salary, employment, experience,
// category, keyword dedup) because later steps consume terms found by
// earlier ones.
func (p *Parser) Parse(query string) domain.ParsedFilters {
	filters := domain.NewParsedFilters(query)
	lower := strings.ToLower(query)

	rawKeywords := extractKeywords(query)

	if city, ok := matchCity(lower); ok {
		filters.Location = &city
	}
	if radius, ok := matchRadius(lower); ok {
		filters.GeoRadiusKm = &radius
	}
	filters.Skills = matchSkills(lower)

	if smin, smax, ok := matchSalary(lower); ok {
		filters.SalaryMin = smin
		filters.SalaryMax = smax
	}

	var empSynonyms, expSynonyms, catSynonyms []string
	if label, syns, ok := classify(lower, employmentTypes); ok {
		filters.EmploymentType = &label
		empSynonyms = syns
	}
	if label, syns, ok := classify(lower, experienceLevels); ok {
		filters.ExperienceLevel = &label
		expSynonyms = syns
	}
	if label, syns, ok := classify(lower, jobCategories); ok {
		filters.Category = &label
		catSynonyms = syns
	}

	consumed := consumedTerms(filters, empSynonyms, expSynonyms, catSynonyms)
	filters.Keywords = dedupKeywords(rawKeywords, consumed)

	return filters
}

// extractKeywords splits on whitespace, strips punctuation, lower-cases and
// drops short tokens and stop words, preserving query order.
func extractKeywords(query string) []string {
	var keywords []string
	for _, word := range strings.Fields(query) {
		clean := nonWordRe.ReplaceAllString(strings.ToLower(word), "")
		if utf8.RuneCountInString(clean) <= 2 {
			continue
		}
		if _, stop := stopWords[clean]; stop {
			continue
		}
		keywords = append(keywords, clean)
	}
	return keywords
}

func matchCity(lower string) (string, bool) {
	for _, city := range knownCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city, true
		}
	}
	return "", false
}

func matchRadius(lower string) (int, bool) {
	for _, re := range radiusPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if km, err := strconv.Atoi(m[1]); err == nil {
				return km, true
			}
		}
	}
	return 0, false
}

// matchSkills collects every vocabulary entry present in the query. There is
// no early exit: a query can legitimately carry several skills, and keeping
// vocabulary order keeps the output deterministic.
func matchSkills(lower string) []string {
	skills := []string{}
	for _, skill := range skillVocab {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

func matchSalary(lower string) (*int, *int, bool) {
	for _, re := range salaryPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		hasK := strings.Contains(strings.ToLower(m[0]), "k")

		v1, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if hasK {
			v1 *= 1000
		}

		if len(m) > 2 && m[2] != "" {
			v2, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			if hasK {
				v2 *= 1000
			}
			lo, hi := min(v1, v2), max(v1, v2)
			return &lo, &hi, true
		}
		return &v1, nil, true
	}
	return nil, nil, false
}

// classify walks the table in order and returns the first label whose
// synonym list has a substring match. Table order is the tie-break
// authority for overlapping synonym sets.
func classify(lower string, table []classEntry) (string, []string, bool) {
	for _, entry := range table {
		for _, syn := range entry.synonyms {
			if strings.Contains(lower, syn) {
				return entry.label, entry.synonyms, true
			}
		}
	}
	return "", nil, false
}

// consumedTerms gathers every lower-cased term already accounted for by the
// location, employment, experience, skill and category matches.
func consumedTerms(f domain.ParsedFilters, empSyns, expSyns, catSyns []string) []string {
	var terms []string
	if f.Location != nil {
		terms = append(terms, strings.ToLower(*f.Location))
	}
	terms = append(terms, empSyns...)
	terms = append(terms, expSyns...)
	for _, skill := range f.Skills {
		terms = append(terms, strings.ToLower(skill))
	}
	terms = append(terms, catSyns...)
	return terms
}

// dedupKeywords drops every keyword that contains a consumed term and keeps
// at most the first five of what remains, in original order.
func dedupKeywords(keywords, consumed []string) []string {
	final := []string{}
	for _, kw := range keywords {
		dup := false
		for _, term := range consumed {
			if strings.Contains(kw, term) {
				dup = true
				break
			}
		}
		if !dup {
			final = append(final, kw)
		}
		if len(final) == 5 {
			break
		}
	}
	return final
}
