package form

import (
	"errors"
	"fmt"

	"cv-builder/internal/model"
)

// Section names a repeatable section for the add/remove operations. Values
// match the form key prefixes.
type Section string

const (
	SectionExperience     Section = keyExperience
	SectionEducation      Section = keyEducation
	SectionTechnicalSkill Section = keyTechnicalSkll
	SectionSoftSkill      Section = keySoftSkill
	SectionProject        Section = keyProject
	SectionCertification  Section = keyCertification
	SectionAward          Section = keyAward
)

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// ParseSection maps a route parameter to a Section.
func ParseSection(name string) (Section, error) {
	switch s := Section(name); s {
	case SectionExperience, SectionEducation, SectionTechnicalSkill,
		SectionSoftSkill, SectionProject, SectionCertification, SectionAward:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}

// AddItem appends an empty entry to the section's list. The document is the
// single source of truth for list state; callers re-render the editor after.
func AddItem(doc *model.Document, section Section) error {
	switch section {
	case SectionExperience:
		// A fresh experience row starts with one empty achievement line.
		doc.Experience = append(doc.Experience, model.Experience{Achievements: []string{""}})
	case SectionEducation:
		doc.Education = append(doc.Education, model.Education{})
	case SectionTechnicalSkill:
		doc.TechnicalSkills = append(doc.TechnicalSkills, model.Skill{Level: DefaultSkillLevel})
	case SectionSoftSkill:
		doc.SoftSkills = append(doc.SoftSkills, model.Skill{Level: DefaultSkillLevel})
	case SectionProject:
		doc.Projects = append(doc.Projects, model.Project{Technologies: []string{}})
	case SectionCertification:
		doc.Certifications = append(doc.Certifications, model.Certification{})
	case SectionAward:
		doc.Awards = append(doc.Awards, model.Award{})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return nil
}

// RemoveItem deletes the entry at the given document index, preserving the
// order of the remaining entries.
func RemoveItem(doc *model.Document, section Section, index int) error {
	switch section {
	case SectionExperience:
		out, err := removeAt(doc.Experience, index)
		if err != nil {
			return err
		}
		doc.Experience = out
	case SectionEducation:
		out, err := removeAt(doc.Education, index)
		if err != nil {
			return err
		}
		doc.Education = out
	case SectionTechnicalSkill:
		out, err := removeAt(doc.TechnicalSkills, index)
		if err != nil {
			return err
		}
		doc.TechnicalSkills = out
	case SectionSoftSkill:
		out, err := removeAt(doc.SoftSkills, index)
		if err != nil {
			return err
		}
		doc.SoftSkills = out
	case SectionProject:
		out, err := removeAt(doc.Projects, index)
		if err != nil {
			return err
		}
		doc.Projects = out
	case SectionCertification:
		out, err := removeAt(doc.Certifications, index)
		if err != nil {
			return err
		}
		doc.Certifications = out
	case SectionAward:
		out, err := removeAt(doc.Awards, index)
		if err != nil {
			return err
		}
		doc.Awards = out
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return nil
}

func removeAt[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d (len %d)", ErrIndexOutOfRange, index, len(list))
	}
	return append(list[:index], list[index+1:]...), nil
}
