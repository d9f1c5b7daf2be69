package editor

import "errors"

// Sentinel errors returned by editor operations.
var (
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidSkillStyle = errors.New("invalid skill style")
	ErrDomesticName      = errors.New("name regeneration requires remote mode")
	ErrNoGenerator       = errors.New("no name generator configured")
)
