package gemini

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"intent": "job_search"}`, `{"intent": "job_search"}`},
		{"json fence", "```json\n{\"intent\": \"job_search\"}\n```", `{"intent": "job_search"}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "\n  {\"a\": 1}  \n", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Errorf("extractJSON = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFitDimension(t *testing.T) {
	vec := []float32{1, 2, 3, 4}

	if got := fitDimension(vec, 4); len(got) != 4 {
		t.Errorf("same dim: len = %d", len(got))
	}
	if got := fitDimension(vec, 2); len(got) != 2 || got[1] != 2 {
		t.Errorf("truncate: %v", got)
	}
	if got := fitDimension(vec, 6); len(got) != 6 || got[3] != 4 || got[5] != 0 {
		t.Errorf("pad: %v", got)
	}
	if got := fitDimension(vec, 0); len(got) != 4 {
		t.Errorf("zero dim must pass through: %v", got)
	}
}
