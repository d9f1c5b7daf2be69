// Package render maps a résumé record onto one of ten fixed layout variants,
// producing a standalone HTML document.
//
// Rendering is a pure function: identical input yields byte-identical output,
// which export snapshots and the tests rely on. The field-selection contract
// shared by all variants (phone only in domestic mode, avatar only in domestic
// mode, exactly one skill representation) is applied once in buildDocument, so
// the template files only decide layout, never visibility.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates holds one parsed template per variant, keyed by TemplateID.
var templates map[types.TemplateID]*template.Template

func init() {
	var err error
	templates, err = parseTemplates()
	if err != nil {
		panic(fmt.Sprintf("render: failed to parse embedded templates: %v", err))
	}
}

// Document is the view model handed to every template variant. It contains
// only what the current mode and skill style allow to be displayed.
type Document struct {
	Name        string
	FullTitle   string
	GenderLabel string

	// Phone is empty when the résumé is in remote mode, regardless of the
	// stored value.
	Phone    string
	Email    string
	Location string

	// Avatar is empty unless mode is domestic and an avatar reference exists.
	// template.URL because stock and uploaded avatars are data URLs.
	Avatar template.URL
	Banner template.URL

	// TagsMode selects the skill representation; exactly one of SkillTags and
	// SkillsText carries content.
	TagsMode   bool
	SkillTags  []string
	SkillsText string

	Education []types.Education
	Work      []types.WorkExperience
	Projects  []types.ProjectExperience
}

// Render produces the HTML document for a résumé record and template variant.
// An unknown or empty template id falls back to the classic variant.
func Render(data types.ResumeData, id types.TemplateID) (string, error) {
	tmpl, ok := templates[id]
	if !ok {
		tmpl = templates[types.TemplateClassic]
	}

	doc := buildDocument(data)

	var out strings.Builder
	if err := tmpl.Execute(&out, doc); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %q", tmpl.Name()),
			Cause:   err,
		}
	}
	return out.String(), nil
}

// buildDocument applies the cross-template field-selection contract.
func buildDocument(data types.ResumeData) Document {
	doc := Document{
		Name:        data.PersonalInfo.Name,
		FullTitle:   FullTitle(data.PersonalInfo),
		GenderLabel: GenderLabel(data.PersonalInfo.Gender),
		Email:       data.PersonalInfo.Email,
		Location:    data.PersonalInfo.Location,
		Banner:      template.URL(data.PersonalInfo.Banner),
		TagsMode:    data.Skills.Style == types.SkillStyleTags,
		Education:   data.Education,
		Work:        data.Work,
		Projects:    data.Projects,
	}

	if data.Mode == types.ModeDomestic {
		doc.Phone = data.PersonalInfo.Phone
		doc.Avatar = template.URL(data.PersonalInfo.Avatar)
	}

	if doc.TagsMode {
		doc.SkillTags = data.Skills.List
	} else {
		doc.SkillsText = data.Skills.Text
	}

	return doc
}

// FullTitle composes the job title and years of experience into the single
// display string every variant shows under the name.
func FullTitle(pi types.PersonalInfo) string {
	return pi.JobTitle + " | " + pi.YearsExp
}

// GenderLabel returns the localized gender label.
func GenderLabel(g types.Gender) string {
	if g == types.GenderFemale {
		return "女"
	}
	return "男"
}

// parseTemplates loads every embedded variant file. File name stem = variant id.
func parseTemplates() (map[types.TemplateID]*template.Template, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, &TemplateError{Message: "failed to read embedded templates", Cause: err}
	}

	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	parsed := make(map[types.TemplateID]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".html")
		content, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, &TemplateError{Message: fmt.Sprintf("failed to read template %s", entry.Name()), Cause: err}
		}
		tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
		if err != nil {
			return nil, &TemplateError{Message: fmt.Sprintf("failed to parse template %s", entry.Name()), Cause: err}
		}
		parsed[types.TemplateID(name)] = tmpl
	}

	if _, ok := parsed[types.TemplateClassic]; !ok {
		return nil, &TemplateError{Message: "classic fallback template missing"}
	}
	return parsed, nil
}
