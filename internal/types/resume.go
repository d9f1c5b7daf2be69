// Package types provides type definitions for the résumé data model shared across the resume-studio system.
package types

// Mode selects the domestic or remote profile of a résumé. It governs which
// contact fields are displayed and whether a generated English name is used.
type Mode string

// Mode values.
const (
	ModeDomestic Mode = "domestic"
	ModeRemote   Mode = "remote"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeDomestic || m == ModeRemote
}

// Gender of the candidate, used for the localized gender label, the default
// avatar choice and the fallback English name.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// SkillStyle selects which of the two skill representations is rendered.
// Both representations are always stored; switching style never destroys the
// inactive one.
type SkillStyle string

// SkillStyle values.
const (
	SkillStyleTags  SkillStyle = "tags"
	SkillStyleLines SkillStyle = "lines"
)

// Valid reports whether s is a known skill style.
func (s SkillStyle) Valid() bool {
	return s == SkillStyleTags || s == SkillStyleLines
}

// TemplateID identifies one of the fixed layout variants.
type TemplateID string

// The ten template variants. TemplateClassic is the fallback for unknown ids.
const (
	TemplateClassic      TemplateID = "classic"
	TemplateModern       TemplateID = "modern"
	TemplateMinimal      TemplateID = "minimal"
	TemplateBanner       TemplateID = "banner"
	TemplateCreative     TemplateID = "creative"
	TemplateProfessional TemplateID = "professional"
	TemplateTech         TemplateID = "tech"
	TemplateTimeline     TemplateID = "timeline"
	TemplateCorporate    TemplateID = "corporate"
	TemplateElegant      TemplateID = "elegant"
)

// Collection names an entity list inside ResumeData.
type Collection string

// Collection values.
const (
	CollectionEducation Collection = "education"
	CollectionWork      Collection = "work"
	CollectionProjects  Collection = "projects"
)

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	return c == CollectionEducation || c == CollectionWork || c == CollectionProjects
}

// Education is one education history entry. The ID is assigned at creation
// and never reused within a session.
type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Major     string `json:"major"`
	Degree    string `json:"degree"`
	DateRange string `json:"dateRange"`
}

// WorkExperience is one employment history entry.
type WorkExperience struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	DateRange string `json:"dateRange"`
}

// ProjectExperience is one project history entry.
type ProjectExperience struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DateRange        string `json:"dateRange"`
	Intro            string `json:"intro"`
	Responsibilities string `json:"responsibilities"`
}

// PersonalInfo holds the candidate's identity and contact block.
//
// AvatarIsDefault is set by the system whenever it assigns one of the stock
// avatars and cleared on any user upload or AI edit; gender changes only swap
// the avatar while the flag is set.
type PersonalInfo struct {
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	AvatarIsDefault bool   `json:"avatarIsDefault"`
	Banner          string `json:"banner,omitempty"`
	JobTitle        string `json:"jobTitle"`
	YearsExp        string `json:"yearsExp"`
	Gender          Gender `json:"gender"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Location        string `json:"location"`
}

// Skills holds both skill representations side by side; Style selects which
// one the renderer shows.
type Skills struct {
	Style SkillStyle `json:"style"`
	List  []string   `json:"list"`
	Text  string     `json:"text"`
}

// ResumeData is the canonical résumé record. A session owns exactly one
// instance, created from SeedData and mutated only through the editor.
type ResumeData struct {
	Mode         Mode                `json:"mode"`
	PersonalInfo PersonalInfo        `json:"personalInfo"`
	Skills       Skills              `json:"skills"`
	Education    []Education         `json:"education"`
	Work         []WorkExperience    `json:"work"`
	Projects     []ProjectExperience `json:"projects"`
}

// Clone returns a deep copy of the record. Snapshots handed to the renderer
// and to API responses must not alias the editor-owned slices.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Skills.List = append([]string(nil), d.Skills.List...)
	out.Education = append([]Education(nil), d.Education...)
	out.Work = append([]WorkExperience(nil), d.Work...)
	out.Projects = append([]ProjectExperience(nil), d.Projects...)
	return out
}

// TemplateConfig describes one entry of the template gallery.
type TemplateConfig struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AccentColor string     `json:"accentColor"`
}
