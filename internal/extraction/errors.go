package extraction

import "fmt"

// ValidationError represents invalid input to the extractor (empty resume text).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ExtractionError represents a failed AI skill extraction: transport failure,
// non-JSON response, or a response that does not match the expected shape.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
