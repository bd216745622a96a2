// Package strength derives the profile-strength percentage shown next to the
// editor. The rubric is fixed: seven weighted categories summing to 100, each
// scored by boolean presence checks with no partial credit inside a list.
package strength

import (
	"math"

	"cv-builder/internal/model"
)

type Band string

const (
	BandWeak   Band = "weak"   // below 40
	BandFair   Band = "fair"   // 40-69
	BandStrong Band = "strong" // 70 and up
)

// Category weights.
const (
	weightPersonal   = 15
	weightContact    = 15
	weightSummary    = 10
	weightExperience = 20
	weightEducation  = 15
	weightSkills     = 15
	weightProjects   = 10

	// Summary only counts once it is longer than a bare sentence.
	summaryMinLength = 50
)

type Score struct {
	Percent int  `json:"percent"`
	Band    Band `json:"band"`
}

// Calculate scores the document. Pure; call after every collect.
func Calculate(doc *model.Document) Score {
	score := 0
	total := 0

	// Personal: 5 each for name, title, photo.
	total += weightPersonal
	if doc.Personal.FullName != "" {
		score += 5
	}
	if doc.Personal.JobTitle != "" {
		score += 5
	}
	if doc.Personal.ProfileImage != "" {
		score += 5
	}

	// Contact: 5 each for email, phone, at least one code/profile link.
	total += weightContact
	if doc.Contact.Email != "" {
		score += 5
	}
	if doc.Contact.Phone != "" {
		score += 5
	}
	if doc.Contact.LinkedIn != "" || doc.Contact.GitHub != "" {
		score += 5
	}

	total += weightSummary
	if len(doc.Summary) > summaryMinLength {
		score += weightSummary
	}

	total += weightExperience
	if len(doc.Experience) > 0 {
		score += weightExperience
	}

	total += weightEducation
	if len(doc.Education) > 0 {
		score += weightEducation
	}

	total += weightSkills
	if len(doc.TechnicalSkills) > 0 || len(doc.SoftSkills) > 0 {
		score += weightSkills
	}

	total += weightProjects
	if len(doc.Projects) > 0 {
		score += weightProjects
	}

	percent := int(math.Round(float64(score) / float64(total) * 100))
	return Score{Percent: percent, Band: bandFor(percent)}
}

func bandFor(percent int) Band {
	switch {
	case percent < 40:
		return BandWeak
	case percent < 70:
		return BandFair
	default:
		return BandStrong
	}
}
