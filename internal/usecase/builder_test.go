package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/form"
	"cv-builder/internal/model"
)

func newTestBuilder(t *testing.T) (*Builder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewBuilder(repository.NewRedisStore(client), zap.NewNop()), mr
}

func TestLoadOrDefaultFirstRun(t *testing.T) {
	b, _ := newTestBuilder(t)

	doc := b.LoadOrDefault(context.Background())

	assert.Equal(t, model.Default(), doc)
}

func TestLoadOrDefaultCorruptRecord(t *testing.T) {
	b, mr := newTestBuilder(t)
	mr.Set("cv:document", "{definitely not json")

	doc := b.LoadOrDefault(context.Background())

	assert.Equal(t, model.Default(), doc)
}

func TestSaveFormPersistsSnapshot(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	values := url.Values{}
	values.Set("fullName", "Jane Smith")
	values.Set("jobTitle", "Platform Engineer")
	values.Set("email", "jane@example.com")
	values.Set("technicalSkill.0.name", "Go")
	values.Set("technicalSkill.0.level", "90")

	saved, score, err := b.SaveForm(ctx, values)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", saved.Personal.FullName)
	assert.Positive(t, score.Percent)

	reloaded := b.LoadOrDefault(ctx)
	assert.Equal(t, saved, reloaded)
	require.Len(t, reloaded.TechnicalSkills, 1)
	assert.Equal(t, 90, reloaded.TechnicalSkills[0].Level)
}

func TestAddSectionItemPersists(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	before := len(b.LoadOrDefault(ctx).Experience)
	doc, err := b.AddSectionItem(ctx, form.SectionExperience)
	require.NoError(t, err)
	assert.Len(t, doc.Experience, before+1)

	reloaded := b.LoadOrDefault(ctx)
	assert.Len(t, reloaded.Experience, before+1)
}

func TestRemoveSectionItemKeepsOrder(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	doc := model.Default()
	doc.Education = []model.Education{
		{Degree: "First"},
		{Degree: "Second"},
		{Degree: "Third"},
	}
	_, _, err := b.SaveForm(ctx, valuesForEducation(doc))
	require.NoError(t, err)

	updated, err := b.RemoveSectionItem(ctx, form.SectionEducation, 1)
	require.NoError(t, err)
	require.Len(t, updated.Education, 2)
	assert.Equal(t, "First", updated.Education[0].Degree)
	assert.Equal(t, "Third", updated.Education[1].Degree)
}

func TestRemoveSectionItemOutOfRange(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.RemoveSectionItem(context.Background(), form.SectionAward, 99)
	assert.Error(t, err)
}

func TestImportBackupOverwritesDocument(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	_, _, err := b.SaveForm(ctx, url.Values{"fullName": {"Before Import"}})
	require.NoError(t, err)

	incoming := model.Default()
	incoming.Personal.FullName = "Imported Person"
	raw, err := json.Marshal(incoming)
	require.NoError(t, err)

	imported, err := b.ImportBackup(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "Imported Person", imported.Personal.FullName)

	reloaded := b.LoadOrDefault(ctx)
	assert.Equal(t, "Imported Person", reloaded.Personal.FullName)
}

func TestImportBackupRejectsInvalidPayload(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	_, _, err := b.SaveForm(ctx, url.Values{"fullName": {"Keep Me"}})
	require.NoError(t, err)

	for _, raw := range []string{
		"not json at all",
		`{"personal": 5}`,
		`{"contact": {}}`,
	} {
		_, err := b.ImportBackup(ctx, []byte(raw))
		assert.Error(t, err, "payload %q should be rejected", raw)
	}

	reloaded := b.LoadOrDefault(ctx)
	assert.Equal(t, "Keep Me", reloaded.Personal.FullName)
}

func TestExportBackupRoundTrips(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	_, _, err := b.SaveForm(ctx, url.Values{"fullName": {"Round Trip"}})
	require.NoError(t, err)

	data, err := b.ExportBackup(ctx)
	require.NoError(t, err)

	doc, err := model.ValidatePayload(data)
	require.NoError(t, err)
	assert.Equal(t, "Round Trip", doc.Personal.FullName)
}

// valuesForEducation posts only the education rows of doc alongside its name,
// the way the editor form would.
func valuesForEducation(doc *model.Document) url.Values {
	values := url.Values{}
	values.Set("fullName", doc.Personal.FullName)
	for i, e := range doc.Education {
		prefix := "education." + strconv.Itoa(i) + "."
		values.Set(prefix+"degree", e.Degree)
		values.Set(prefix+"institution", e.Institution)
		values.Set(prefix+"graduationDate", e.GraduationDate)
		values.Set(prefix+"gpa", e.GPA)
	}
	return values
}
