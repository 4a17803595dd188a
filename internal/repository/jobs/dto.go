package jobs

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

// Hash field names for a stored job. Tag fields are indexed for structured
// filtering; the embedding field holds the float32 LE blob for KNN search.
const (
	fieldJobID           = "job_id"
	fieldProviderID      = "provider_id"
	fieldTitle           = "title"
	fieldDescription     = "description"
	fieldCategory        = "category"
	fieldCity            = "city"
	fieldCountry         = "country"
	fieldLatitude        = "latitude"
	fieldLongitude       = "longitude"
	fieldEmploymentType  = "employment_type"
	fieldSalaryMin       = "salary_min"
	fieldSalaryMax       = "salary_max"
	fieldCurrency        = "currency"
	fieldExperienceLevel = "experience_level"
	fieldSkills          = "skills"
	fieldStatus          = "status"
	fieldIsVerified      = "is_verified"
	fieldDatePosted      = "date_posted"
	fieldExpiryDate      = "expiry_date"
	fieldEmbedding       = "embedding"
)

// skillSeparator joins the skills list into one TAG field value.
const skillSeparator = ","

// jobToFields flattens a job and its embedding into hash fields.
func jobToFields(job *domain.Job, vector []float32) map[string]string {
	fields := map[string]string{
		fieldJobID: job.JobID.String(),
		fieldTitle: job.Title,
	}

	setOptString(fields, fieldDescription, job.Description)
	setOptString(fields, fieldCategory, job.Category)
	setOptString(fields, fieldCity, job.City)
	setOptString(fields, fieldCountry, job.Country)
	setOptString(fields, fieldEmploymentType, job.EmploymentType)
	setOptString(fields, fieldCurrency, job.Currency)
	setOptString(fields, fieldExperienceLevel, job.ExperienceLevel)
	setOptString(fields, fieldStatus, job.Status)

	if job.ProviderID != nil {
		fields[fieldProviderID] = job.ProviderID.String()
	}
	if job.Latitude != nil {
		fields[fieldLatitude] = strconv.FormatFloat(*job.Latitude, 'f', -1, 64)
	}
	if job.Longitude != nil {
		fields[fieldLongitude] = strconv.FormatFloat(*job.Longitude, 'f', -1, 64)
	}
	if job.SalaryMin != nil {
		fields[fieldSalaryMin] = strconv.Itoa(*job.SalaryMin)
	}
	if job.SalaryMax != nil {
		fields[fieldSalaryMax] = strconv.Itoa(*job.SalaryMax)
	}
	if job.IsVerified != nil {
		fields[fieldIsVerified] = strconv.FormatBool(*job.IsVerified)
	}
	if job.DatePosted != nil {
		fields[fieldDatePosted] = job.DatePosted.UTC().Format(time.RFC3339)
	}
	if job.ExpiryDate != nil {
		fields[fieldExpiryDate] = job.ExpiryDate.UTC().Format(time.RFC3339)
	}
	if len(job.Skills) > 0 {
		fields[fieldSkills] = strings.Join(job.Skills, skillSeparator)
	}
	if len(vector) > 0 {
		fields[fieldEmbedding] = encodeVector(vector)
	}

	return fields
}

// jobFromFields rebuilds a job from hash fields. A record without a
// parseable job_id or a title is malformed and rejected; everything else
// is optional.
func jobFromFields(fields map[string]string) (domain.Job, error) {
	id, err := uuid.Parse(fields[fieldJobID])
	if err != nil {
		return domain.Job{}, fmt.Errorf("parse job_id %q: %w", fields[fieldJobID], err)
	}
	title, ok := fields[fieldTitle]
	if !ok || title == "" {
		return domain.Job{}, fmt.Errorf("job %s has no title", id)
	}

	job := domain.Job{
		JobID:  id,
		Title:  title,
		Skills: []string{},
	}

	job.Description = optString(fields, fieldDescription)
	job.Category = optString(fields, fieldCategory)
	job.City = optString(fields, fieldCity)
	job.Country = optString(fields, fieldCountry)
	job.EmploymentType = optString(fields, fieldEmploymentType)
	job.Currency = optString(fields, fieldCurrency)
	job.ExperienceLevel = optString(fields, fieldExperienceLevel)
	job.Status = optString(fields, fieldStatus)

	if v, ok := fields[fieldProviderID]; ok && v != "" {
		pid, err := uuid.Parse(v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse provider_id %q: %w", v, err)
		}
		job.ProviderID = &pid
	}
	if v, ok := fields[fieldLatitude]; ok {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse latitude %q: %w", v, err)
		}
		job.Latitude = &lat
	}
	if v, ok := fields[fieldLongitude]; ok {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse longitude %q: %w", v, err)
		}
		job.Longitude = &lon
	}
	if v, ok := fields[fieldSalaryMin]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse salary_min %q: %w", v, err)
		}
		job.SalaryMin = &n
	}
	if v, ok := fields[fieldSalaryMax]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse salary_max %q: %w", v, err)
		}
		job.SalaryMax = &n
	}
	if v, ok := fields[fieldIsVerified]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse is_verified %q: %w", v, err)
		}
		job.IsVerified = &b
	}
	if v, ok := fields[fieldDatePosted]; ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse date_posted %q: %w", v, err)
		}
		job.DatePosted = &t
	}
	if v, ok := fields[fieldExpiryDate]; ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return domain.Job{}, fmt.Errorf("parse expiry_date %q: %w", v, err)
		}
		job.ExpiryDate = &t
	}
	if v, ok := fields[fieldSkills]; ok && v != "" {
		job.Skills = strings.Split(v, skillSeparator)
	}

	return job, nil
}

func setOptString(fields map[string]string, name string, value *string) {
	if value != nil && *value != "" {
		fields[name] = *value
	}
}

func optString(fields map[string]string, name string) *string {
	if v, ok := fields[name]; ok && v != "" {
		return &v
	}
	return nil
}

func encodeVector(vec []float32) string {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return string(buf)
}
