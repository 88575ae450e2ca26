package analysis

// AnalysisType selects which target-framing strategy the gap analysis uses.
type AnalysisType string

// Supported analysis types. The enumeration is closed; anything else is
// rejected before the analyzer runs.
const (
	TypeDomain         AnalysisType = "domain"
	TypeJobDescription AnalysisType = "job-description"
	TypeMarket         AnalysisType = "market"
)

// MarketSentinel is the fixed target value stored for market-trend analyses.
const MarketSentinel = "JOB_MARKET_TRENDS"

// Valid reports whether t is a member of the closed enumeration.
func (t AnalysisType) Valid() bool {
	switch t {
	case TypeDomain, TypeJobDescription, TypeMarket:
		return true
	}
	return false
}

// MissingSkill is one skill the applicant lacks for the target.
type MissingSkill struct {
	SkillName string `json:"skillName"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
}

// Course is a recommended course covering a high-priority missing skill.
type Course struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
	Priority string `json:"priority"`
}

// JobMatch is a recommended role matching the applicant's existing skills.
type JobMatch struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	MatchPercentage int    `json:"matchPercentage"`
	Source          string `json:"source"`
}

// ReportData is the structured gap analysis report. The numeric scores come
// from the model; ImprovementPotential is recomputed server-side so the
// 100-minus-employability invariant holds for every persisted report.
type ReportData struct {
	OverallMatch         int            `json:"overallMatch"`
	EmployabilityScore   int            `json:"employabilityScore"`
	ImprovementPotential int            `json:"improvementPotential"`
	SkillsMissing        []MissingSkill `json:"skillsMissing"`
	RecommendedCourses   []Course       `json:"recommendedCourses"`
	RecommendedJobs      []JobMatch     `json:"recommendedJobs"`
}
