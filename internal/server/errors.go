package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/images"
	"github.com/jonathan/resume-studio/internal/schemas"
)

// exportGateMessage is shown when an export is requested before any edit.
const exportGateMessage = "您还未进行编辑哦！"

// aiImageFailedMessage is the user-visible text for a failed image edit.
const aiImageFailedMessage = "图片生成失败，请稍后重试。"

// HTTPStatus maps domain errors to status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnknownCollection),
		errors.Is(err, editor.ErrInvalidMode),
		errors.Is(err, editor.ErrInvalidGender),
		errors.Is(err, editor.ErrInvalidSkillStyle):
		return http.StatusBadRequest
	case errors.Is(err, editor.ErrDomesticName):
		return http.StatusConflict
	case errors.Is(err, images.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ai.ErrNoImageResult):
		return http.StatusBadGateway
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}
	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		return http.StatusBadRequest
	}
	var imgErr *images.ImageError
	if errors.As(err, &imgErr) {
		return http.StatusBadRequest
	}
	var genErr *ai.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
