package extraction

import "fmt"

// ExtractError represents a failure to convert an uploaded resume into text.
type ExtractError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume extraction failed for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("resume extraction failed for %s: %s", e.Filename, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError indicates the uploaded file has an extension the
// extractor cannot convert.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported resume file type: %s", e.Extension)
}
