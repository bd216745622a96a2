package form

import "cv-builder/internal/model"

// PlaceholderImage is shown when no profile photo is stored. Never persisted.
const PlaceholderImage = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop"

// DefaultSkillLevel preselects the range input on a freshly added skill row.
const DefaultSkillLevel = 50

// Themes selectable from the design tab. "default" leaves the page theme
// attribute unset.
var Themes = []string{"default", "dark", "ocean", "sunset"}

// Fonts selectable from the design tab.
var Fonts = []string{
	"'Poppins', sans-serif",
	"'Inter', sans-serif",
	"'Roboto', sans-serif",
	"Georgia, serif",
}

type ExperienceRow struct {
	Number int
	model.Experience
}

type EducationRow struct {
	Number int
	model.Education
}

type SkillRow struct {
	Number int
	model.Skill
}

type ProjectRow struct {
	Number int
	model.Project
}

type CertificationRow struct {
	Number int
	model.Certification
	HasFile bool
}

type AwardRow struct {
	Number int
	model.Award
}

// View is the editor's render model: one entry per document field, repeatable
// sections in document order with 1-based display numbers.
type View struct {
	Personal     model.Personal
	ImagePreview string
	Contact      model.Contact
	Summary      string
	SummaryCount int

	Experience      []ExperienceRow
	Education       []EducationRow
	TechnicalSkills []SkillRow
	SoftSkills      []SkillRow
	Projects        []ProjectRow
	Certifications  []CertificationRow
	Awards          []AwardRow

	Design model.Design
	Themes []string
	Fonts  []string
}

// NewView projects the document onto the editor form.
func NewView(doc *model.Document) *View {
	v := &View{
		Personal:     doc.Personal,
		ImagePreview: doc.Personal.ProfileImage,
		Contact:      doc.Contact,
		Summary:      doc.Summary,
		SummaryCount: len(doc.Summary),
		Design:       doc.Design,
		Themes:       Themes,
		Fonts:        Fonts,
	}
	if v.ImagePreview == "" {
		v.ImagePreview = PlaceholderImage
	}

	for i, e := range doc.Experience {
		v.Experience = append(v.Experience, ExperienceRow{Number: i + 1, Experience: e})
	}
	for i, e := range doc.Education {
		v.Education = append(v.Education, EducationRow{Number: i + 1, Education: e})
	}
	for i, s := range doc.TechnicalSkills {
		v.TechnicalSkills = append(v.TechnicalSkills, SkillRow{Number: i + 1, Skill: s})
	}
	for i, s := range doc.SoftSkills {
		v.SoftSkills = append(v.SoftSkills, SkillRow{Number: i + 1, Skill: s})
	}
	for i, p := range doc.Projects {
		v.Projects = append(v.Projects, ProjectRow{Number: i + 1, Project: p})
	}
	for i, c := range doc.Certifications {
		v.Certifications = append(v.Certifications, CertificationRow{
			Number:        i + 1,
			Certification: c,
			HasFile:       c.File != nil && *c.File != "",
		})
	}
	for i, a := range doc.Awards {
		v.Awards = append(v.Awards, AwardRow{Number: i + 1, Award: a})
	}
	return v
}
