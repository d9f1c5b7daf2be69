package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestValidateResumeJSONSeedData(t *testing.T) {
	doc, err := json.Marshal(types.SeedData())
	require.NoError(t, err)
	assert.NoError(t, ValidateResumeJSON(doc))
}

func TestValidateResumeJSONInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ResumeData)
	}{
		{"unknown mode", func(d *types.ResumeData) { d.Mode = "hybrid" }},
		{"unknown gender", func(d *types.ResumeData) { d.PersonalInfo.Gender = "other" }},
		{"unknown skill style", func(d *types.ResumeData) { d.Skills.Style = "bullets" }},
		{"empty entity id", func(d *types.ResumeData) { d.Education[0].ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := types.SeedData()
			tt.mutate(&data)
			doc, err := json.Marshal(data)
			require.NoError(t, err)

			err = ValidateResumeJSON(doc)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateResumeJSONMissingSection(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"mode":"domestic"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "validation failed")
}

func TestValidateResumeJSONUnknownProperty(t *testing.T) {
	data := map[string]any{}
	doc, err := json.Marshal(types.SeedData())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(doc, &data))
	data["theme"] = "dark"
	doc, err = json.Marshal(data)
	require.NoError(t, err)

	assert.Error(t, ValidateResumeJSON(doc))
}

func TestValidateResumeJSONNotJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte("not json at all"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
