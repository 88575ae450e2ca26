// Package extraction turns raw resume text into a categorized skill set
// using a single LLM call with a fixed prompt and schema contract.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/skillbridge/skillbridge/internal/llm"
	"github.com/skillbridge/skillbridge/internal/prompts"
	"github.com/skillbridge/skillbridge/internal/schemas"
)

// SkillSet is the categorized skill taxonomy extracted from a resume.
// Labels are free text exactly as the model produced them; the system does
// not deduplicate.
type SkillSet struct {
	HardSkills           []string `json:"hardSkills"`
	SoftSkills           []string `json:"softSkills"`
	ToolsAndTechnologies []string `json:"toolsAndTechnologies"`
}

// ExtractSkills sends the resume text to the generative AI service and parses
// the structured skill taxonomy from the response. Empty or whitespace-only
// text is rejected before any AI call is made.
//
// A bucket absent from the response is treated as an empty sequence rather
// than an error; the schema still rejects buckets of the wrong type.
func ExtractSkills(ctx context.Context, client llm.Client, resumeText string) (*SkillSet, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ValidationError{Message: "resume text is empty"}
	}

	template := prompts.MustGet("skills.json", "extract-skills")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &ExtractionError{Message: "AI call failed", Cause: err}
	}

	if err := schemas.ValidateJSONString(schemas.SkillSet(), raw); err != nil {
		return nil, &ExtractionError{Message: "response does not match skill schema", Cause: err}
	}

	var skills SkillSet
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, &ExtractionError{Message: "response is not valid JSON", Cause: err}
	}

	skills.fillDefaults()
	return &skills, nil
}

// fillDefaults replaces nil buckets with empty slices so downstream code and
// persisted records never carry JSON null.
func (s *SkillSet) fillDefaults() {
	if s.HardSkills == nil {
		s.HardSkills = []string{}
	}
	if s.SoftSkills == nil {
		s.SoftSkills = []string{}
	}
	if s.ToolsAndTechnologies == nil {
		s.ToolsAndTechnologies = []string{}
	}
}
