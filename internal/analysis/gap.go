// Package analysis compares extracted skills against a target (career domain,
// job description, or market trends) and produces a structured gap report via
// a single LLM call.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/extraction"
	"github.com/skillbridge/skillbridge/internal/llm"
	"github.com/skillbridge/skillbridge/internal/prompts"
	"github.com/skillbridge/skillbridge/internal/schemas"
)

// Request carries one gap analysis invocation.
type Request struct {
	Skills *extraction.SkillSet
	Type   AnalysisType
	// Target is the domain name or job-description text. For market analyses
	// it is ignored and MarketSentinel is used instead.
	Target string
	// DomainContext optionally narrows a market analysis to one field.
	DomainContext string
}

// Generate runs the gap analysis and returns the validated report.
// Scoring is delegated to the model under the instruction contract in the
// prompt, except ImprovementPotential which is recomputed from
// EmployabilityScore after decoding.
func Generate(ctx context.Context, client llm.Client, req Request) (*ReportData, error) {
	if !req.Type.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown analysis type %q", req.Type)}
	}
	if req.Type != TypeMarket && strings.TrimSpace(req.Target) == "" {
		return nil, &ValidationError{Message: "target is required"}
	}
	if req.Skills == nil {
		return nil, &ValidationError{Message: "skills are required"}
	}

	skillsJSON, err := json.MarshalIndent(req.Skills, "", "  ")
	if err != nil {
		return nil, &AnalysisError{Message: "failed to encode skills", Cause: err}
	}

	template := prompts.MustGet("analysis.json", "gap-analysis")
	prompt := prompts.Format(template, map[string]string{
		"UserSkills":        string(skillsJSON),
		"TargetDescription": buildTargetDescription(req),
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &AnalysisError{Message: "AI call failed", Cause: err}
	}

	if err := schemas.ValidateJSONString(schemas.ReportData(), raw); err != nil {
		return nil, &AnalysisError{Message: "response does not match report schema", Cause: err}
	}

	var report ReportData
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, &AnalysisError{Message: "response is not valid JSON", Cause: err}
	}

	// The model is instructed to compute this, but the invariant is enforced
	// here rather than trusted.
	report.ImprovementPotential = 100 - report.EmployabilityScore
	report.fillDefaults()

	return &report, nil
}

// buildTargetDescription produces the target framing for the prompt according
// to the analysis type.
func buildTargetDescription(req Request) string {
	switch req.Type {
	case TypeJobDescription:
		return prompts.Format(prompts.MustGet("analysis.json", "target-job-description"),
			map[string]string{"Target": req.Target})
	case TypeDomain:
		return prompts.Format(prompts.MustGet("analysis.json", "target-domain"),
			map[string]string{"Target": req.Target})
	case TypeMarket:
		context := "."
		if strings.TrimSpace(req.DomainContext) != "" {
			context = fmt.Sprintf(" within the **%s** field.", req.DomainContext)
		}
		return prompts.Format(prompts.MustGet("analysis.json", "target-market"),
			map[string]string{"Context": context})
	}
	return ""
}

// StoredTarget returns the target value persisted with the report: the user's
// target text, or the fixed sentinel for market analyses.
func StoredTarget(analysisType AnalysisType, target string) string {
	if analysisType == TypeMarket {
		return MarketSentinel
	}
	return target
}

// fillDefaults replaces nil sequences with empty slices so persisted reports
// never carry JSON null.
func (r *ReportData) fillDefaults() {
	if r.SkillsMissing == nil {
		r.SkillsMissing = []MissingSkill{}
	}
	if r.RecommendedCourses == nil {
		r.RecommendedCourses = []Course{}
	}
	if r.RecommendedJobs == nil {
		r.RecommendedJobs = []JobMatch{}
	}
}
