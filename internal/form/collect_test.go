package form

import (
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valuesFor serializes a document the way the populated editor posts it back.
func valuesFor(doc *model.Document) url.Values {
	v := url.Values{}
	v.Set("fullName", doc.Personal.FullName)
	v.Set("jobTitle", doc.Personal.JobTitle)
	v.Set("age", doc.Personal.Age)
	v.Set("location", doc.Personal.Location)
	v.Set("profileImage", doc.Personal.ProfileImage)
	v.Set("phone", doc.Contact.Phone)
	v.Set("email", doc.Contact.Email)
	v.Set("linkedin", doc.Contact.LinkedIn)
	v.Set("github", doc.Contact.GitHub)
	v.Set("website", doc.Contact.Website)
	v.Set("twitter", doc.Contact.Twitter)
	v.Set("summary", doc.Summary)
	v.Set("theme", doc.Design.Theme)
	v.Set("font", doc.Design.Font)

	for i, e := range doc.Experience {
		k := fmt.Sprintf("experience.%d.", i)
		v.Set(k+"company", e.Company)
		v.Set(k+"role", e.Role)
		v.Set(k+"startDate", e.StartDate)
		v.Set(k+"endDate", e.EndDate)
		for _, a := range e.Achievements {
			v.Add(k+"achievement", a)
		}
	}
	for i, e := range doc.Education {
		k := fmt.Sprintf("education.%d.", i)
		v.Set(k+"degree", e.Degree)
		v.Set(k+"institution", e.Institution)
		v.Set(k+"graduationDate", e.GraduationDate)
		v.Set(k+"gpa", e.GPA)
	}
	for i, s := range doc.TechnicalSkills {
		k := fmt.Sprintf("technicalSkill.%d.", i)
		v.Set(k+"name", s.Name)
		v.Set(k+"level", strconv.Itoa(s.Level))
	}
	for i, s := range doc.SoftSkills {
		k := fmt.Sprintf("softSkill.%d.", i)
		v.Set(k+"name", s.Name)
		v.Set(k+"level", strconv.Itoa(s.Level))
	}
	for i, p := range doc.Projects {
		k := fmt.Sprintf("project.%d.", i)
		v.Set(k+"name", p.Name)
		v.Set(k+"description", p.Description)
		v.Set(k+"demoUrl", p.DemoURL)
		v.Set(k+"codeUrl", p.CodeURL)
		for _, tech := range p.Technologies {
			v.Add(k+"technology", tech)
		}
	}
	for i, c := range doc.Certifications {
		k := fmt.Sprintf("certification.%d.", i)
		v.Set(k+"name", c.Name)
		v.Set(k+"organization", c.Organization)
		v.Set(k+"year", c.Year)
		if c.File != nil {
			v.Set(k+"file", *c.File)
		} else {
			v.Set(k+"file", "")
		}
	}
	for i, a := range doc.Awards {
		k := fmt.Sprintf("award.%d.", i)
		v.Set(k+"name", a.Name)
		v.Set(k+"organization", a.Organization)
		v.Set(k+"year", a.Year)
	}
	return v
}

// First run: populating the form with the sample profile and collecting with
// no edits reproduces the sample exactly.
func TestCollectReproducesDefaultDocument(t *testing.T) {
	doc := model.Default()
	collected := Collect(valuesFor(doc))
	assert.Equal(t, doc, collected)
}

func TestCollectIsIdempotent(t *testing.T) {
	first := Collect(valuesFor(model.Default()))
	second := Collect(valuesFor(first))
	assert.Equal(t, first, second)
}

func TestCollectEmptyFormYieldsEmptyDocument(t *testing.T) {
	doc := Collect(url.Values{})

	assert.Empty(t, doc.Personal.FullName)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Projects)
	// Normalize fills design defaults even on an empty post.
	assert.Equal(t, model.DefaultTheme, doc.Design.Theme)
	assert.Equal(t, model.DefaultFont, doc.Design.Font)
}

func TestCollectPreservesSparseRowOrder(t *testing.T) {
	// Rows 1 and 3 were removed client-side; remaining indices stay sparse.
	v := url.Values{}
	for _, i := range []int{0, 2, 5} {
		v.Set(fmt.Sprintf("experience.%d.company", i), fmt.Sprintf("Company %d", i))
	}

	doc := Collect(v)
	require.Len(t, doc.Experience, 3)
	assert.Equal(t, "Company 0", doc.Experience[0].Company)
	assert.Equal(t, "Company 2", doc.Experience[1].Company)
	assert.Equal(t, "Company 5", doc.Experience[2].Company)
}

func TestCollectDropsBlankSkillRows(t *testing.T) {
	v := url.Values{}
	v.Set("technicalSkill.0.name", "Go")
	v.Set("technicalSkill.0.level", "80")
	v.Set("technicalSkill.1.name", "")
	v.Set("technicalSkill.1.level", "50")
	v.Set("technicalSkill.2.name", "Rust")
	v.Set("technicalSkill.2.level", "70")

	doc := Collect(v)
	require.Len(t, doc.TechnicalSkills, 2)
	assert.Equal(t, model.Skill{Name: "Go", Level: 80}, doc.TechnicalSkills[0])
	assert.Equal(t, model.Skill{Name: "Rust", Level: 70}, doc.TechnicalSkills[1])
}

func TestCollectTrimsAndDropsListEntryText(t *testing.T) {
	v := url.Values{}
	v.Set("experience.0.company", "  Acme  ") // scalar: kept verbatim
	v.Add("experience.0.achievement", "   ")
	v.Add("experience.0.achievement", "  shipped the thing  ")
	v.Set("project.0.name", "P")
	v.Add("project.0.technology", "\t")
	v.Add("project.0.technology", " Go ")
	v.Set("softSkill.0.name", "  Listening  ")
	v.Set("softSkill.0.level", "60")

	doc := Collect(v)
	assert.Equal(t, "  Acme  ", doc.Experience[0].Company)
	assert.Equal(t, []string{"shipped the thing"}, doc.Experience[0].Achievements)
	assert.Equal(t, []string{"Go"}, doc.Projects[0].Technologies)
	assert.Equal(t, "Listening", doc.SoftSkills[0].Name)
}

func TestCollectClampsSkillLevels(t *testing.T) {
	v := url.Values{}
	v.Set("technicalSkill.0.name", "A")
	v.Set("technicalSkill.0.level", "150")
	v.Set("technicalSkill.1.name", "B")
	v.Set("technicalSkill.1.level", "-5")
	v.Set("technicalSkill.2.name", "C")
	v.Set("technicalSkill.2.level", "junk")

	doc := Collect(v)
	require.Len(t, doc.TechnicalSkills, 3)
	assert.Equal(t, 100, doc.TechnicalSkills[0].Level)
	assert.Equal(t, 0, doc.TechnicalSkills[1].Level)
	assert.Equal(t, 0, doc.TechnicalSkills[2].Level)
}

func TestCollectCertificationFile(t *testing.T) {
	v := url.Values{}
	v.Set("certification.0.name", "With file")
	v.Set("certification.0.file", "data:application/pdf;base64,AAAA")
	v.Set("certification.1.name", "Without file")
	v.Set("certification.1.file", "")

	doc := Collect(v)
	require.Len(t, doc.Certifications, 2)
	require.NotNil(t, doc.Certifications[0].File)
	assert.Equal(t, "data:application/pdf;base64,AAAA", *doc.Certifications[0].File)
	assert.Nil(t, doc.Certifications[1].File)
}

func TestRowIndicesIgnoresMalformedKeys(t *testing.T) {
	v := url.Values{}
	v.Set("experience.0.company", "ok")
	v.Set("experience.x.company", "bad index")
	v.Set("experience.-1.company", "negative")
	v.Set("experienceX.1.company", "other key")
	v.Set("experience.2", "no field part")

	assert.Equal(t, []int{0}, rowIndices(v, "experience"))
}
