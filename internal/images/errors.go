package images

import "fmt"

// ErrTooLarge rejects payloads over MaxBytes.
var ErrTooLarge = &ImageError{Message: fmt.Sprintf("image exceeds the %d byte limit", MaxBytes)}

// ImageError describes a rejected or unreadable image payload.
type ImageError struct {
	Message string
	Cause   error
}

func (e *ImageError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ImageError) Unwrap() error {
	return e.Cause
}
