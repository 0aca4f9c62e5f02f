package generate

import (
	"fmt"

	"prism/internal/models"
)

// GenerationError is the only failure kind the conversation core sees.
// Transport failures, malformed responses, and missing payloads all
// collapse into it; it carries no retry metadata.
type GenerationError struct {
	Mode models.Mode
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation: %v", e.Mode, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func genErr(mode models.Mode, format string, args ...any) error {
	return &GenerationError{Mode: mode, Err: fmt.Errorf(format, args...)}
}
