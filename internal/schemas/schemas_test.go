package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaKnownTypes(t *testing.T) {
	for _, key := range []string{"basic-info", "careers", "skills", "educations", "projects", "other-items"} {
		src, err := Schema(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, src, key)
	}
}

func TestSchemaUnknownType(t *testing.T) {
	_, err := Schema("resumes")
	assert.Error(t, err)
}

func TestValidateCareersValid(t *testing.T) {
	content := `[
		{
			"company": "Acme",
			"position": "Engineer",
			"start_date": "2021-03",
			"end_date": "2023-06",
			"current": false,
			"achievements": ["Shipped the thing"]
		}
	]`
	assert.NoError(t, Validate("careers", content))
}

func TestValidateCareersBadDate(t *testing.T) {
	content := `[{"company": "Acme", "position": "Engineer", "start_date": "2021-13"}]`
	err := Validate("careers", content)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "careers", ve.TypeKey)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateCareersMissingRequired(t *testing.T) {
	content := `[{"company": "Acme"}]`
	var ve *ValidationError
	require.True(t, errors.As(Validate("careers", content), &ve))
}

func TestValidateSkillsLevelRange(t *testing.T) {
	assert.NoError(t, Validate("skills", `[{"category": "backend", "name": "Go", "level": 3}]`))

	var ve *ValidationError
	require.True(t, errors.As(Validate("skills", `[{"category": "backend", "name": "Go", "level": 4}]`), &ve))
}

func TestValidateBasicInfoIsObject(t *testing.T) {
	assert.NoError(t, Validate("basic-info", `{"name": "Kim", "email": "kim@example.com", "phone": "010-0000-0000"}`))

	var ve *ValidationError
	require.True(t, errors.As(Validate("basic-info", `[]`), &ve))
}
