package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewoo/careerfolio/internal/profile"
	"github.com/jaewoo/careerfolio/internal/schemas"
)

func TestReadAbsentFileKeepsDefault(t *testing.T) {
	store := New(t.TempDir())

	careers := []profile.Career{}
	err := store.Read("careers", &careers)
	require.NoError(t, err)
	assert.Empty(t, careers)
}

func TestWriteThenRead(t *testing.T) {
	store := New(t.TempDir())

	in := []profile.Skill{
		{Category: "backend", Name: "Go", Level: profile.SkillLevelExpert},
		{Category: "database", Name: "PostgreSQL", Level: profile.SkillLevelWorking},
	}
	require.NoError(t, store.Write("skills", in))

	var out []profile.Skill
	require.NoError(t, store.Read("skills", &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Go", out[0].Name)
	assert.Equal(t, profile.SkillLevelWorking, out[1].Level)
}

func TestWriteRejectsInvalidContent(t *testing.T) {
	store := New(t.TempDir())

	err := store.Write("skills", []profile.Skill{{Category: "backend", Name: "Go", Level: 9}})
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.NoFileExists(t, store.Path("skills"))
}

func TestReadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careers.json"), []byte(`[{"company": "Acme"}]`), 0o644))

	var careers []profile.Career
	err := store.Read("careers", &careers)
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestPathLayout(t *testing.T) {
	store := New("/data")
	assert.Equal(t, filepath.Join("/data", "basic-info.json"), store.Path("basic-info"))
}

func TestUnknownTypeKey(t *testing.T) {
	store := New(t.TempDir())
	err := store.Write("resumes", []string{})
	assert.Error(t, err)
}
