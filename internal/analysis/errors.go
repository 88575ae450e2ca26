package analysis

import "fmt"

// ValidationError represents invalid analyzer input: an unknown analysis type
// or an empty target.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AnalysisError represents a failed AI gap analysis: transport failure,
// non-JSON response, or a response that does not match the report schema.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gap analysis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("gap analysis failed: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
