package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/extraction"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func sampleSkills() *extraction.SkillSet {
	return &extraction.SkillSet{
		HardSkills:           []string{"Go", "SQL"},
		SoftSkills:           []string{"Communication"},
		ToolsAndTechnologies: []string{"Docker"},
	}
}

const validReport = `{
	"overallMatch": 70,
	"employabilityScore": 65,
	"improvementPotential": 35,
	"skillsMissing": [{"skillName": "Kubernetes", "priority": "High", "category": "Tools"}],
	"recommendedCourses": [{"title": "K8s Basics", "platform": "Coursera", "link": "https://example.com", "priority": "High"}],
	"recommendedJobs": [{"title": "Backend Engineer", "company": "Acme", "matchPercentage": 72, "source": "LinkedIn"}]
}`

func TestGenerate_Success(t *testing.T) {
	client := &fakeClient{response: validReport}

	report, err := Generate(context.Background(), client, Request{
		Skills: sampleSkills(),
		Type:   TypeDomain,
		Target: "Data Science",
	})
	require.NoError(t, err)
	assert.Equal(t, 70, report.OverallMatch)
	assert.Equal(t, 65, report.EmployabilityScore)
	assert.Equal(t, 35, report.ImprovementPotential)
	require.Len(t, report.SkillsMissing, 1)
	assert.Equal(t, "Kubernetes", report.SkillsMissing[0].SkillName)
}

func TestGenerate_ImprovementPotentialRecomputed(t *testing.T) {
	// The model claims improvementPotential 90 but employabilityScore 65; the
	// persisted value must be 100 - 65.
	client := &fakeClient{response: `{
		"overallMatch": 70,
		"employabilityScore": 65,
		"improvementPotential": 90,
		"skillsMissing": [],
		"recommendedCourses": [],
		"recommendedJobs": []
	}`}

	report, err := Generate(context.Background(), client, Request{
		Skills: sampleSkills(),
		Type:   TypeDomain,
		Target: "Data Science",
	})
	require.NoError(t, err)
	assert.Equal(t, 35, report.ImprovementPotential)
}

func TestGenerate_PromptFraming(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		contains []string
	}{
		{
			name: "domain",
			req:  Request{Skills: sampleSkills(), Type: TypeDomain, Target: "Cloud Engineering"},
			contains: []string{
				"Target Career Domain: Cloud Engineering",
				"entry-level requirements",
			},
		},
		{
			name: "job description",
			req:  Request{Skills: sampleSkills(), Type: TypeJobDescription, Target: "We need a Go developer."},
			contains: []string{
				"We need a Go developer.",
				`"""`,
			},
		},
		{
			name: "market without context",
			req:  Request{Skills: sampleSkills(), Type: TypeMarket},
			contains: []string{
				"Current Business Job Market Trends",
			},
		},
		{
			name: "market with domain context",
			req:  Request{Skills: sampleSkills(), Type: TypeMarket, DomainContext: "FinTech"},
			contains: []string{
				"within the **FinTech** field",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: validReport}
			_, err := Generate(context.Background(), client, tt.req)
			require.NoError(t, err)
			require.Len(t, client.prompts, 1)
			for _, s := range tt.contains {
				assert.Contains(t, client.prompts[0], s)
			}
			assert.Contains(t, client.prompts[0], `"Go"`, "prompt must embed the skill inventory")
		})
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown type", Request{Skills: sampleSkills(), Type: "astrology", Target: "x"}},
		{"empty target for domain", Request{Skills: sampleSkills(), Type: TypeDomain, Target: "   "}},
		{"empty target for job description", Request{Skills: sampleSkills(), Type: TypeJobDescription}},
		{"nil skills", Request{Type: TypeDomain, Target: "Data Science"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: validReport}
			_, err := Generate(context.Background(), client, tt.req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, client.prompts, "AI must not be called for invalid input")
		})
	}
}

func TestGenerate_MarketAllowsEmptyTarget(t *testing.T) {
	client := &fakeClient{response: validReport}

	_, err := Generate(context.Background(), client, Request{
		Skills: sampleSkills(),
		Type:   TypeMarket,
	})
	require.NoError(t, err)
}

func TestGenerate_TransportError(t *testing.T) {
	client := &fakeClient{err: errors.New("deadline exceeded")}

	_, err := Generate(context.Background(), client, Request{
		Skills: sampleSkills(),
		Type:   TypeDomain,
		Target: "Data Science",
	})
	var ae *AnalysisError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "deadline exceeded")
}

func TestGenerate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not JSON", "I could not produce a report."},
		{"missing required key", `{"overallMatch": 70}`},
		{"score out of range", `{"overallMatch": 170, "employabilityScore": 65, "skillsMissing": [], "recommendedCourses": [], "recommendedJobs": []}`},
		{"invalid priority", `{"overallMatch": 70, "employabilityScore": 65, "skillsMissing": [{"skillName": "K8s", "priority": "Urgent", "category": "Tools"}], "recommendedCourses": [], "recommendedJobs": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}
			_, err := Generate(context.Background(), client, Request{
				Skills: sampleSkills(),
				Type:   TypeDomain,
				Target: "Data Science",
			})

			var ae *AnalysisError
			require.ErrorAs(t, err, &ae)
		})
	}
}

func TestGenerate_NilSequencesDefaultToEmpty(t *testing.T) {
	client := &fakeClient{response: `{
		"overallMatch": 70,
		"employabilityScore": 65,
		"skillsMissing": [],
		"recommendedCourses": [],
		"recommendedJobs": []
	}`}

	report, err := Generate(context.Background(), client, Request{
		Skills: sampleSkills(),
		Type:   TypeDomain,
		Target: "Data Science",
	})
	require.NoError(t, err)
	assert.NotNil(t, report.SkillsMissing)
	assert.NotNil(t, report.RecommendedCourses)
	assert.NotNil(t, report.RecommendedJobs)
}

func TestStoredTarget(t *testing.T) {
	assert.Equal(t, "Data Science", StoredTarget(TypeDomain, "Data Science"))
	assert.Equal(t, "some posting", StoredTarget(TypeJobDescription, "some posting"))
	assert.Equal(t, MarketSentinel, StoredTarget(TypeMarket, "ignored"))
}
