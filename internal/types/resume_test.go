package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, ModeDomestic.Valid())
	assert.True(t, ModeRemote.Valid())
	assert.False(t, Mode("hybrid").Valid())

	assert.True(t, GenderMale.Valid())
	assert.True(t, GenderFemale.Valid())
	assert.False(t, Gender("").Valid())

	assert.True(t, SkillStyleTags.Valid())
	assert.True(t, SkillStyleLines.Valid())
	assert.False(t, SkillStyle("bullets").Valid())

	assert.True(t, CollectionEducation.Valid())
	assert.True(t, CollectionWork.Valid())
	assert.True(t, CollectionProjects.Valid())
	assert.False(t, Collection("awards").Valid())
}

func TestCloneIsDeep(t *testing.T) {
	original := SeedData()
	clone := original.Clone()

	clone.Skills.List[0] = "mutated"
	clone.Education[0].School = "mutated"
	clone.Work[0].Company = "mutated"
	clone.Projects[0].Name = "mutated"

	assert.NotEqual(t, "mutated", original.Skills.List[0])
	assert.NotEqual(t, "mutated", original.Education[0].School)
	assert.NotEqual(t, "mutated", original.Work[0].Company)
	assert.NotEqual(t, "mutated", original.Projects[0].Name)
}

func TestSeedDataReturnsFreshCopies(t *testing.T) {
	first := SeedData()
	first.Skills.List[0] = "mutated"
	second := SeedData()
	assert.NotEqual(t, "mutated", second.Skills.List[0])
}

func TestSeedDataShape(t *testing.T) {
	data := SeedData()
	assert.Equal(t, ModeDomestic, data.Mode)
	assert.Equal(t, SeedName, data.PersonalInfo.Name)
	assert.True(t, data.PersonalInfo.AvatarIsDefault)
	assert.Len(t, data.Education, 1)
	assert.Len(t, data.Work, 2)
	assert.Len(t, data.Projects, 2)
	assert.Equal(t, SkillStyleTags, data.Skills.Style)
	assert.NotEmpty(t, data.Skills.List)
	assert.NotEmpty(t, data.Skills.Text)
}

func TestDefaultAvatar(t *testing.T) {
	assert.Equal(t, MaleAvatar, DefaultAvatar(GenderMale))
	assert.Equal(t, FemaleAvatar, DefaultAvatar(GenderFemale))
	assert.True(t, strings.HasPrefix(NeutralAvatar, "data:image/svg+xml;base64,"))
}

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "John Doe", FallbackName(GenderMale))
	assert.Equal(t, "Jane Doe", FallbackName(GenderFemale))
}

func TestTemplatesCatalog(t *testing.T) {
	require.Len(t, Templates, 10)

	seen := map[TemplateID]bool{}
	for _, cfg := range Templates {
		assert.False(t, seen[cfg.ID], "duplicate template id %s", cfg.ID)
		seen[cfg.ID] = true
		assert.NotEmpty(t, cfg.Name)
		assert.NotEmpty(t, cfg.Description)
		assert.True(t, strings.HasPrefix(cfg.AccentColor, "#"))
	}

	assert.True(t, KnownTemplate(TemplateClassic))
	assert.True(t, KnownTemplate(TemplateElegant))
	assert.False(t, KnownTemplate(TemplateID("fancy")))
}

func TestResumeDataJSONShape(t *testing.T) {
	doc, err := json.Marshal(SeedData())
	require.NoError(t, err)

	// Wire field names follow the camelCase convention of the import and
	// export documents.
	assert.Contains(t, string(doc), `"personalInfo"`)
	assert.Contains(t, string(doc), `"jobTitle"`)
	assert.Contains(t, string(doc), `"yearsExp"`)
	assert.Contains(t, string(doc), `"dateRange"`)
	assert.Contains(t, string(doc), `"avatarIsDefault"`)
	assert.NotContains(t, string(doc), `"banner"`, "empty banner is omitted")

	var back ResumeData
	require.NoError(t, json.Unmarshal(doc, &back))
	assert.Equal(t, SeedData(), back)
}

func TestRequestValidation(t *testing.T) {
	valid := []interface{ Validate() error }{
		&UpdatePersonalRequest{Field: "name", Value: "x"},
		&SetModeRequest{Mode: ModeRemote},
		&SetGenderRequest{Gender: GenderFemale},
		&SetSkillStyleRequest{Style: SkillStyleLines},
		&SkillTagRequest{Index: 0, Value: "Go"},
		&UpdateEntityRequest{ID: "work-1", Field: "company", Value: "x"},
		&ImageEditRequest{Prompt: "职业照"},
	}
	for _, req := range valid {
		assert.NoError(t, req.Validate())
	}

	invalid := []interface{ Validate() error }{
		&UpdatePersonalRequest{Field: "avatar", Value: "x"},
		&UpdatePersonalRequest{Value: "x"},
		&SetModeRequest{Mode: "hybrid"},
		&SetGenderRequest{Gender: "other"},
		&SetSkillStyleRequest{Style: "bullets"},
		&SkillTagRequest{Index: -1},
		&UpdateEntityRequest{Field: "company"},
		&ImageEditRequest{},
	}
	for _, req := range invalid {
		assert.Error(t, req.Validate())
	}
}
