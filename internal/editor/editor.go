// Package editor owns the mutable résumé record for one session and exposes
// the full set of mutation operations. All access goes through an Editor so
// concurrent HTTP handlers never observe a half-applied change.
package editor

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// NameGenerator produces an English display name for remote-mode résumés.
// Implementations must be safe for concurrent use.
type NameGenerator interface {
	GenerateName(ctx context.Context, gender types.Gender) (string, error)
}

// NameGenState tracks the asynchronous name generation lifecycle.
type NameGenState string

// NameGenState values.
const (
	NameGenIdle       NameGenState = "idle"
	NameGenRequesting NameGenState = "requesting"
	NameGenResolved   NameGenState = "resolved"
	NameGenFailed     NameGenState = "failed"
)

// Snapshot is a point-in-time copy of the editor state, safe to hand to the
// renderer or serialize into an API response.
type Snapshot struct {
	Data      types.ResumeData `json:"data"`
	Edited    bool             `json:"edited"`
	NameState NameGenState     `json:"nameGenState"`
}

// Editor is the single owner of one ResumeData record.
type Editor struct {
	mu        sync.Mutex
	data      types.ResumeData
	edited    bool
	nameState NameGenState

	namegen NameGenerator
	// nameSeq invalidates in-flight generation results after a newer trigger.
	nameSeq uint64
}

// New creates an editor seeded with the default record. gen may be nil, in
// which case every name generation resolves to the gender fallback.
func New(gen NameGenerator) *Editor {
	return &Editor{
		data:      types.SeedData(),
		nameState: NameGenIdle,
		namegen:   gen,
	}
}

// Snapshot returns a deep copy of the current state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Data:      e.data.Clone(),
		Edited:    e.edited,
		NameState: e.nameState,
	}
}

// Edited reports whether any mutation has been applied since creation.
func (e *Editor) Edited() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.edited
}

// Import replaces the whole record. Callers validate the payload first.
func (e *Editor) Import(data types.ResumeData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data = data.Clone()
	e.edited = true
}

// UpdatePersonal sets one scalar field of the personal info block.
func (e *Editor) UpdatePersonal(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case "name":
		e.data.PersonalInfo.Name = value
	case "jobTitle":
		e.data.PersonalInfo.JobTitle = value
	case "yearsExp":
		e.data.PersonalInfo.YearsExp = value
	case "phone":
		e.data.PersonalInfo.Phone = value
	case "email":
		e.data.PersonalInfo.Email = value
	case "location":
		e.data.PersonalInfo.Location = value
	default:
		return ErrUnknownField
	}
	e.edited = true
	return nil
}

// SetMode switches between domestic and remote. Switching to remote clears
// the name and requests a generated English one; switching back to domestic
// restores the localized seed name. Blocks until the name settles.
func (e *Editor) SetMode(ctx context.Context, mode types.Mode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}

	e.mu.Lock()
	e.data.Mode = mode
	e.edited = true

	if mode == types.ModeDomestic {
		// Invalidate any generation still in flight so a late result
		// cannot overwrite the restored seed name.
		e.nameSeq++
		e.data.PersonalInfo.Name = types.SeedName
		e.nameState = NameGenIdle
		e.mu.Unlock()
		return nil
	}

	e.data.PersonalInfo.Name = ""
	e.requestNameLocked(ctx)
	e.mu.Unlock()
	return nil
}

// SetGender changes the candidate gender, swaps the stock avatar when no
// custom one has been set, and re-requests a name in remote mode.
func (e *Editor) SetGender(ctx context.Context, g types.Gender) error {
	if !g.Valid() {
		return ErrInvalidGender
	}

	e.mu.Lock()
	e.data.PersonalInfo.Gender = g
	if e.data.PersonalInfo.AvatarIsDefault {
		e.data.PersonalInfo.Avatar = types.DefaultAvatar(g)
	}
	e.edited = true

	if e.data.Mode == types.ModeRemote {
		e.requestNameLocked(ctx)
	}
	e.mu.Unlock()
	return nil
}

// RegenerateName re-runs name generation. Only meaningful in remote mode,
// where the displayed name is system generated.
func (e *Editor) RegenerateName(ctx context.Context) error {
	e.mu.Lock()
	if e.data.Mode != types.ModeRemote {
		e.mu.Unlock()
		return ErrDomesticName
	}
	e.edited = true
	e.requestNameLocked(ctx)
	e.mu.Unlock()
	return nil
}

// requestNameLocked runs one generation round. The caller holds e.mu; the
// lock is released for the duration of the network call so unrelated edits
// are not blocked, then reacquired to commit. A result is dropped if a newer
// trigger fired while it was in flight.
func (e *Editor) requestNameLocked(ctx context.Context) {
	e.nameSeq++
	seq := e.nameSeq
	e.nameState = NameGenRequesting
	gender := e.data.PersonalInfo.Gender
	gen := e.namegen

	e.mu.Unlock()
	var name string
	var err error
	if gen == nil {
		err = ErrNoGenerator
	} else {
		name, err = gen.GenerateName(ctx, gender)
	}
	e.mu.Lock()

	if seq != e.nameSeq {
		return
	}

	name = strings.TrimSpace(name)
	if err != nil || name == "" {
		if err != nil {
			log.Printf("[AI] name generation failed: %v", err)
		}
		e.data.PersonalInfo.Name = types.FallbackName(e.data.PersonalInfo.Gender)
		e.nameState = NameGenFailed
		return
	}

	e.data.PersonalInfo.Name = name
	e.nameState = NameGenResolved
}

// AddEntity appends a new entry to a collection and returns its id. The
// request supplies placeholder values for the collection's fields.
func (e *Editor) AddEntity(c types.Collection, req types.AddEntityRequest) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New().String()
	switch c {
	case types.CollectionEducation:
		e.data.Education = append(e.data.Education, types.Education{
			ID:        id,
			School:    req.School,
			Major:     req.Major,
			Degree:    req.Degree,
			DateRange: req.DateRange,
		})
	case types.CollectionWork:
		e.data.Work = append(e.data.Work, types.WorkExperience{
			ID:        id,
			Company:   req.Company,
			JobTitle:  req.JobTitle,
			DateRange: req.DateRange,
		})
	case types.CollectionProjects:
		e.data.Projects = append(e.data.Projects, types.ProjectExperience{
			ID:               id,
			Name:             req.Name,
			DateRange:        req.DateRange,
			Intro:            req.Intro,
			Responsibilities: req.Responsibilities,
		})
	default:
		return "", ErrUnknownCollection
	}
	e.edited = true
	return id, nil
}

// RemoveEntity deletes one entry by id. Removing an id that does not exist
// is a no-op, not an error.
func (e *Editor) RemoveEntity(c types.Collection, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch c {
	case types.CollectionEducation:
		for i, entry := range e.data.Education {
			if entry.ID == id {
				e.data.Education = append(e.data.Education[:i], e.data.Education[i+1:]...)
				break
			}
		}
	case types.CollectionWork:
		for i, entry := range e.data.Work {
			if entry.ID == id {
				e.data.Work = append(e.data.Work[:i], e.data.Work[i+1:]...)
				break
			}
		}
	case types.CollectionProjects:
		for i, entry := range e.data.Projects {
			if entry.ID == id {
				e.data.Projects = append(e.data.Projects[:i], e.data.Projects[i+1:]...)
				break
			}
		}
	default:
		return ErrUnknownCollection
	}
	e.edited = true
	return nil
}

// UpdateEntityField sets one field of a collection entry by id. A missing id
// is a no-op; an unknown field for the collection is an error.
func (e *Editor) UpdateEntityField(c types.Collection, id, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch c {
	case types.CollectionEducation:
		for i := range e.data.Education {
			if e.data.Education[i].ID != id {
				continue
			}
			switch field {
			case "school":
				e.data.Education[i].School = value
			case "major":
				e.data.Education[i].Major = value
			case "degree":
				e.data.Education[i].Degree = value
			case "dateRange":
				e.data.Education[i].DateRange = value
			default:
				return ErrUnknownField
			}
			break
		}
	case types.CollectionWork:
		for i := range e.data.Work {
			if e.data.Work[i].ID != id {
				continue
			}
			switch field {
			case "company":
				e.data.Work[i].Company = value
			case "jobTitle":
				e.data.Work[i].JobTitle = value
			case "dateRange":
				e.data.Work[i].DateRange = value
			default:
				return ErrUnknownField
			}
			break
		}
	case types.CollectionProjects:
		for i := range e.data.Projects {
			if e.data.Projects[i].ID != id {
				continue
			}
			switch field {
			case "name":
				e.data.Projects[i].Name = value
			case "dateRange":
				e.data.Projects[i].DateRange = value
			case "intro":
				e.data.Projects[i].Intro = value
			case "responsibilities":
				e.data.Projects[i].Responsibilities = value
			default:
				return ErrUnknownField
			}
			break
		}
	default:
		return ErrUnknownCollection
	}
	e.edited = true
	return nil
}

// SetSkillStyle selects the rendered skill representation. Both
// representations stay stored, so toggling never loses content.
func (e *Editor) SetSkillStyle(style types.SkillStyle) error {
	if !style.Valid() {
		return ErrInvalidSkillStyle
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data.Skills.Style = style
	e.edited = true
	return nil
}

// AddSkillTag appends a placeholder tag for in-place editing.
func (e *Editor) AddSkillTag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data.Skills.List = append(e.data.Skills.List, "新技能")
	e.edited = true
}

// UpdateSkillTag replaces the tag at index. Out-of-range indexes are ignored.
func (e *Editor) UpdateSkillTag(index int, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.data.Skills.List) {
		return
	}
	e.data.Skills.List[index] = value
	e.edited = true
}

// RemoveSkillTag deletes the tag at index. Out-of-range indexes are ignored.
func (e *Editor) RemoveSkillTag(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.data.Skills.List) {
		return
	}
	e.data.Skills.List = append(e.data.Skills.List[:index], e.data.Skills.List[index+1:]...)
	e.edited = true
}

// SetSkillsText replaces the free-form skills paragraph.
func (e *Editor) SetSkillsText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data.Skills.Text = text
	e.edited = true
}

// SetAvatar installs a user-supplied avatar and clears the stock-avatar flag
// so later gender changes stop swapping it.
func (e *Editor) SetAvatar(dataURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data.PersonalInfo.Avatar = dataURL
	e.data.PersonalInfo.AvatarIsDefault = false
	e.edited = true
}

// SetBanner installs a user-supplied banner image.
func (e *Editor) SetBanner(dataURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data.PersonalInfo.Banner = dataURL
	e.edited = true
}
