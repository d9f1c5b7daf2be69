package ai

import "errors"

// ErrNoImageResult indicates the image model answered without an inline
// image part. Callers surface this instead of silently keeping the old image.
var ErrNoImageResult = errors.New("model response contains no image")

// GenerationError wraps a failed Gemini request or an unusable response.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
