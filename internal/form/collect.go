// Package form maps between posted dashboard fields and the document.
//
// Scalar fields post under their model names. Repeatable rows post under
// "<section>.<index>.<field>"; ascending index order is the on-screen row
// order. Indices may be sparse after client-side removals. Sub-entries that
// repeat inside one row (achievements, technologies) post as repeated values
// for a single key, in on-screen order.
package form

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"cv-builder/internal/model"
)

// Section key prefixes, shared with the dashboard markup.
const (
	keyExperience    = "experience"
	keyEducation     = "education"
	keyTechnicalSkll = "technicalSkill"
	keySoftSkill     = "softSkill"
	keyProject       = "project"
	keyCertification = "certification"
	keyAward         = "award"
)

// Collect rebuilds the full document from posted form values. Scalars are
// read verbatim; list-entry text (achievements, technologies, skill names) is
// trimmed, and entries that trim to empty are dropped.
func Collect(values url.Values) *model.Document {
	doc := &model.Document{
		Personal: model.Personal{
			FullName:     values.Get("fullName"),
			JobTitle:     values.Get("jobTitle"),
			Age:          values.Get("age"),
			Location:     values.Get("location"),
			ProfileImage: values.Get("profileImage"),
		},
		Contact: model.Contact{
			Phone:    values.Get("phone"),
			Email:    values.Get("email"),
			LinkedIn: values.Get("linkedin"),
			GitHub:   values.Get("github"),
			Website:  values.Get("website"),
			Twitter:  values.Get("twitter"),
		},
		Summary: values.Get("summary"),
		Design: model.Design{
			Theme: values.Get("theme"),
			Font:  values.Get("font"),
		},
	}

	doc.Experience = collectExperience(values)
	doc.Education = collectEducation(values)
	doc.TechnicalSkills = collectSkills(values, keyTechnicalSkll)
	doc.SoftSkills = collectSkills(values, keySoftSkill)
	doc.Projects = collectProjects(values)
	doc.Certifications = collectCertifications(values)
	doc.Awards = collectAwards(values)

	doc.Normalize()
	return doc
}

func collectExperience(values url.Values) []model.Experience {
	out := []model.Experience{}
	for _, i := range rowIndices(values, keyExperience) {
		k := rowKey(keyExperience, i)
		achievements := []string{}
		for _, a := range values[k+"achievement"] {
			if s := strings.TrimSpace(a); s != "" {
				achievements = append(achievements, s)
			}
		}
		out = append(out, model.Experience{
			Company:      values.Get(k + "company"),
			Role:         values.Get(k + "role"),
			StartDate:    values.Get(k + "startDate"),
			EndDate:      values.Get(k + "endDate"),
			Achievements: achievements,
		})
	}
	return out
}

func collectEducation(values url.Values) []model.Education {
	out := []model.Education{}
	for _, i := range rowIndices(values, keyEducation) {
		k := rowKey(keyEducation, i)
		out = append(out, model.Education{
			Degree:         values.Get(k + "degree"),
			Institution:    values.Get(k + "institution"),
			GraduationDate: values.Get(k + "graduationDate"),
			GPA:            values.Get(k + "gpa"),
		})
	}
	return out
}

func collectSkills(values url.Values, section string) []model.Skill {
	out := []model.Skill{}
	for _, i := range rowIndices(values, section) {
		k := rowKey(section, i)
		name := strings.TrimSpace(values.Get(k + "name"))
		if name == "" {
			continue
		}
		out = append(out, model.Skill{
			Name:  name,
			Level: clampLevel(values.Get(k + "level")),
		})
	}
	return out
}

func collectProjects(values url.Values) []model.Project {
	out := []model.Project{}
	for _, i := range rowIndices(values, keyProject) {
		k := rowKey(keyProject, i)
		technologies := []string{}
		for _, tech := range values[k+"technology"] {
			if s := strings.TrimSpace(tech); s != "" {
				technologies = append(technologies, s)
			}
		}
		out = append(out, model.Project{
			Name:         values.Get(k + "name"),
			Description:  values.Get(k + "description"),
			Technologies: technologies,
			DemoURL:      values.Get(k + "demoUrl"),
			CodeURL:      values.Get(k + "codeUrl"),
		})
	}
	return out
}

func collectCertifications(values url.Values) []model.Certification {
	out := []model.Certification{}
	for _, i := range rowIndices(values, keyCertification) {
		k := rowKey(keyCertification, i)
		cert := model.Certification{
			Name:         values.Get(k + "name"),
			Organization: values.Get(k + "organization"),
			Year:         values.Get(k + "year"),
		}
		if f := values.Get(k + "file"); f != "" {
			cert.File = &f
		}
		out = append(out, cert)
	}
	return out
}

func collectAwards(values url.Values) []model.Award {
	out := []model.Award{}
	for _, i := range rowIndices(values, keyAward) {
		k := rowKey(keyAward, i)
		out = append(out, model.Award{
			Name:         values.Get(k + "name"),
			Organization: values.Get(k + "organization"),
			Year:         values.Get(k + "year"),
		})
	}
	return out
}

func rowKey(section string, index int) string {
	return fmt.Sprintf("%s.%d.", section, index)
}

// rowIndices returns the distinct row indices posted for a section, ascending.
func rowIndices(values url.Values, section string) []int {
	prefix := section + "."
	seen := map[int]bool{}
	for key := range values {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		idx, _, ok := strings.Cut(rest, ".")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			continue
		}
		seen[n] = true
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// clampLevel parses a skill level, clamped to [0,100]. The range input keeps
// honest clients inside the bounds already; posted values are not trusted.
func clampLevel(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
