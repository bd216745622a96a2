package form

import (
	"testing"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewNumbersRows(t *testing.T) {
	v := NewView(model.Default())

	require.Len(t, v.Experience, 2)
	assert.Equal(t, 1, v.Experience[0].Number)
	assert.Equal(t, 2, v.Experience[1].Number)
	assert.Equal(t, "TechCorp Solutions", v.Experience[0].Company)

	require.Len(t, v.Projects, 2)
	assert.Equal(t, 2, v.Projects[1].Number)
}

func TestNewViewImagePlaceholder(t *testing.T) {
	doc := &model.Document{}
	assert.Equal(t, PlaceholderImage, NewView(doc).ImagePreview)

	doc.Personal.ProfileImage = "data:image/png;base64,AA"
	assert.Equal(t, "data:image/png;base64,AA", NewView(doc).ImagePreview)
}

func TestNewViewSummaryCount(t *testing.T) {
	doc := &model.Document{Summary: "hello"}
	assert.Equal(t, 5, NewView(doc).SummaryCount)
}

func TestNewViewCertificationFileFlag(t *testing.T) {
	file := "data:application/pdf;base64,AAAA"
	empty := ""
	doc := &model.Document{Certifications: []model.Certification{
		{Name: "with"},
		{Name: "uploaded", File: &file},
		{Name: "cleared", File: &empty},
	}}

	v := NewView(doc)
	require.Len(t, v.Certifications, 3)
	assert.False(t, v.Certifications[0].HasFile)
	assert.True(t, v.Certifications[1].HasFile)
	assert.False(t, v.Certifications[2].HasFile)
}
