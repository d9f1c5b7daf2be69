package types

import "github.com/go-playground/validator/v10"

// UpdatePersonalRequest updates one scalar field of the personal info block.
type UpdatePersonalRequest struct {
	Field string `json:"field" validate:"required,oneof=name jobTitle yearsExp phone email location"`
	Value string `json:"value"`
}

// SetModeRequest switches the résumé between domestic and remote mode.
type SetModeRequest struct {
	Mode Mode `json:"mode" validate:"required,oneof=domestic remote"`
}

// SetGenderRequest changes the candidate gender.
type SetGenderRequest struct {
	Gender Gender `json:"gender" validate:"required,oneof=male female"`
}

// SetSkillStyleRequest selects the rendered skill representation.
type SetSkillStyleRequest struct {
	Style SkillStyle `json:"style" validate:"required,oneof=tags lines"`
}

// SkillTagRequest updates or removes one skill tag by index.
type SkillTagRequest struct {
	Index int    `json:"index" validate:"min=0"`
	Value string `json:"value"`
}

// SkillsTextRequest replaces the free-form skills paragraph.
type SkillsTextRequest struct {
	Text string `json:"text"`
}

// AddEntityRequest supplies placeholder values for a new collection entry.
// Only the fields matching the target collection are consulted.
type AddEntityRequest struct {
	School           string `json:"school,omitempty"`
	Major            string `json:"major,omitempty"`
	Degree           string `json:"degree,omitempty"`
	Company          string `json:"company,omitempty"`
	JobTitle         string `json:"jobTitle,omitempty"`
	Name             string `json:"name,omitempty"`
	Intro            string `json:"intro,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	DateRange        string `json:"dateRange,omitempty"`
}

// UpdateEntityRequest updates one field of a collection entry by id.
type UpdateEntityRequest struct {
	ID    string `json:"id" validate:"required"`
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// ImageEditRequest carries the instruction for an AI image edit or generation.
type ImageEditRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1"`
}

var validate = validator.New()

// Validate validates the UpdatePersonalRequest using the validator.
func (r *UpdatePersonalRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SetModeRequest using the validator.
func (r *SetModeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SetGenderRequest using the validator.
func (r *SetGenderRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SetSkillStyleRequest using the validator.
func (r *SetSkillStyleRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SkillTagRequest using the validator.
func (r *SkillTagRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UpdateEntityRequest using the validator.
func (r *UpdateEntityRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ImageEditRequest using the validator.
func (r *ImageEditRequest) Validate() error {
	return validate.Struct(r)
}
