package search

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

// Heuristic score parameters for structured-only candidates. A keyword hit
// in the title counts twice a description hit; both bonuses are capped so
// heuristic scores stay below strong vector similarities.
const (
	heuristicBase      = 0.5
	keywordMatchWeight = 0.05
	keywordBonusCap    = 0.3
	skillMatchBonus    = 0.1
	skillBonusCap      = 0.2
)

// fuseResults merges the two candidate channels into one ranked,
// deduplicated, filtered job list of at most limit entries.
//
// Vector candidates are processed first, in arrival order, because they
// carry a real similarity score; a job seen on both channels keeps its
// structured attributes but takes the vector similarity as match_score.
// First acceptance per job_id wins. Structured-only candidates are scored
// by the keyword/skill heuristic. Ordering is match_score descending with
// job_id ascending as the tie-break, so identical inputs always produce
// identical output.
func fuseResults(
	vector []domain.VectorCandidate,
	structured []domain.Job,
	filters domain.ParsedFilters,
	limit int,
) []domain.Job {
	byID := make(map[string]domain.Job, len(structured))
	for _, job := range structured {
		byID[job.JobID.String()] = job
	}

	accepted := make(map[string]struct{})
	out := make([]domain.Job, 0, len(vector)+len(structured))

	for _, cand := range vector {
		job, ok := jobFromVectorCandidate(cand, byID)
		if !ok {
			// malformed candidate, skip it and keep going
			continue
		}
		id := job.JobID.String()
		if _, dup := accepted[id]; dup {
			continue
		}
		if passesFilters(&job, &filters) {
			accepted[id] = struct{}{}
			out = append(out, job)
		}
	}

	for _, job := range structured {
		id := job.JobID.String()
		if _, dup := accepted[id]; dup {
			continue
		}
		job.MatchScore = heuristicScore(&job, &filters)
		if passesFilters(&job, &filters) {
			accepted[id] = struct{}{}
			out = append(out, job)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].JobID.String() < out[j].JobID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// jobFromVectorCandidate builds a full Job when the candidate also appears
// in the structured set, otherwise a partial Job from the candidate's own
// fields. Returns false for candidates whose job_id cannot be parsed.
func jobFromVectorCandidate(cand domain.VectorCandidate, byID map[string]domain.Job) (domain.Job, bool) {
	if full, ok := byID[cand.JobID]; ok {
		full.MatchScore = clamp01(cand.Similarity)
		return full, true
	}

	id, err := uuid.Parse(cand.JobID)
	if err != nil {
		return domain.Job{}, false
	}

	job := domain.Job{
		JobID:      id,
		Title:      cand.TitleSnippet,
		Skills:     cand.Skills,
		MatchScore: clamp01(cand.Similarity),
	}
	if cand.Category != "" {
		category := cand.Category
		job.Category = &category
	}
	return job, true
}

// passesFilters rejects a job only when a filter field and the job's
// corresponding field are both present and disagree. Missing job data
// never causes rejection: a partial vector candidate must not be punished
// for attributes its source does not expose.
func passesFilters(job *domain.Job, f *domain.ParsedFilters) bool {
	if f.SalaryMin != nil && job.SalaryMin != nil && *job.SalaryMin < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && job.SalaryMax != nil && *job.SalaryMax > *f.SalaryMax {
		return false
	}
	if len(f.Skills) > 0 && len(job.Skills) > 0 && !skillsIntersect(f.Skills, job.Skills) {
		return false
	}
	if !matchesOptional(f.Location, job.City) {
		return false
	}
	if !matchesOptional(f.EmploymentType, job.EmploymentType) {
		return false
	}
	if !matchesOptional(f.ExperienceLevel, job.ExperienceLevel) {
		return false
	}
	if !matchesOptional(f.Category, job.Category) {
		return false
	}
	return true
}

// matchesOptional is a case-insensitive equality check that passes when
// either side is absent.
func matchesOptional(want, got *string) bool {
	if want == nil || got == nil {
		return true
	}
	return strings.EqualFold(*want, *got)
}

func skillsIntersect(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[strings.ToLower(s)]; ok {
			return true
		}
	}
	return false
}

// heuristicScore assigns a computed relevance score to a structured-only
// candidate: 0.5 base, plus a capped keyword bonus (title hits weighted
// twice description hits) and a capped skill-overlap bonus.
func heuristicScore(job *domain.Job, f *domain.ParsedFilters) float64 {
	score := heuristicBase

	title := strings.ToLower(job.Title)
	var description string
	if job.Description != nil {
		description = strings.ToLower(*job.Description)
	}

	matchWeight := 0
	for _, kw := range f.Keywords {
		kw = strings.ToLower(kw)
		switch {
		case strings.Contains(title, kw):
			matchWeight += 2
		case description != "" && strings.Contains(description, kw):
			matchWeight++
		}
	}
	score += minFloat(float64(matchWeight)*keywordMatchWeight, keywordBonusCap)

	if len(f.Skills) > 0 && len(job.Skills) > 0 {
		jobSkills := make(map[string]struct{}, len(job.Skills))
		for _, s := range job.Skills {
			jobSkills[strings.ToLower(s)] = struct{}{}
		}
		overlap := 0
		for _, s := range f.Skills {
			if _, ok := jobSkills[strings.ToLower(s)]; ok {
				overlap++
			}
		}
		score += minFloat(float64(overlap)*skillMatchBonus, skillBonusCap)
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
