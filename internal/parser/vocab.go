package parser

// The vocabularies below drive classification by substring scan. Order is
// load-bearing everywhere: cities and skills are scanned top to bottom, and
// the (label, synonyms) tables resolve overlapping synonym sets by taking
// the first label that matches. Reordering an entry changes classification
// results, so treat these slices as frozen data, not as sets.

// stopWords are tokens dropped during keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {},
	"job": {}, "jobs": {}, "work": {}, "role": {}, "position": {},
}

// knownCities is scanned in order; the first substring match wins.
var knownCities = []string{
	"Dhaka", "Chittagong", "Sylhet", "Rajshahi", "Khulna", "Barisal", "Rangpur", "Mymensingh",
	"Cumilla", "Gazipur", "Narayanganj", "Jessore", "Bogra", "Dinajpur", "Pabna", "Comilla",
	"New York", "London", "Toronto", "Sydney", "Dubai", "Singapore", "Bangalore", "Mumbai",
}

// skillVocab is scanned in order; every matching entry is collected, so the
// output skill list follows vocabulary order, not query order.
var skillVocab = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust", "PHP", "Ruby", "Swift", "Kotlin",
	"React", "Angular", "Vue", "Node.js", "Express", "FastAPI", "Django", "Flask", "Spring", "Laravel",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "OpenCV",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"Machine Learning", "AI", "Data Science", "DevOps", "Frontend", "Backend", "Full-stack", "Mobile",
}

// classEntry pairs a canonical label with the synonyms that select it.
type classEntry struct {
	label    string
	synonyms []string
}

var employmentTypes = []classEntry{
	{"full-time", []string{"full-time", "fulltime", "permanent", "full time"}},
	{"part-time", []string{"part-time", "parttime", "part time"}},
	{"contract", []string{"contract", "contractor", "freelance", "consulting"}},
	{"remote", []string{"remote", "work from home", "wfh", "telecommute"}},
}

// experienceLevels keeps the historical order with "mid" evaluated before
// "senior", and "senior" itself listed as a mid synonym. A query saying
// "senior" therefore classifies as "mid". That is the behavior search
// clients have always seen; changing it would reshuffle live rankings, so
// it is preserved deliberately (see DESIGN.md).
var experienceLevels = []classEntry{
	{"entry", []string{"entry", "junior", "beginner", "fresher", "graduate", "intern"}},
	{"mid", []string{"mid", "intermediate", "experienced", "senior", "lead"}},
	{"senior", []string{"senior", "principal", "architect", "manager", "director", "head"}},
}

var jobCategories = []classEntry{
	{"Software Engineering", []string{"software", "developer", "programmer", "engineer", "coding"}},
	{"Data Science", []string{"data science", "data scientist", "analytics", "data analyst"}},
	{"AI/ML", []string{"ai", "artificial intelligence", "machine learning", "ml", "deep learning"}},
	{"DevOps", []string{"devops", "deployment", "infrastructure", "cloud"}},
	{"Design", []string{"designer", "ui", "ux", "graphic", "creative"}},
	{"Marketing", []string{"marketing", "digital marketing", "content", "social media"}},
	{"Sales", []string{"sales", "business development", "account manager"}},
	{"Finance", []string{"finance", "accounting", "financial analyst"}},
	{"HR", []string{"human resources", "hr", "recruiter", "talent acquisition"}},
	{"Education", []string{"teacher", "tutor", "instructor", "professor", "education"}},
}
