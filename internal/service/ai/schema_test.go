package ai_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/service/ai"
)

const validReport = `{
	"purpose": "p",
	"education_and_accomplishments": "e",
	"ability_to_lecture": "a",
	"suitability": "s",
	"conclusion": "c"
}`

func TestValidateJSON_Report(t *testing.T) {
	require.NoError(t, ai.ValidateJSON(ai.SchemaReport, validReport))
}

func TestValidateJSON_MissingField(t *testing.T) {
	err := ai.ValidateJSON(ai.SchemaReport, `{"purpose":"p","conclusion":"c"}`)
	require.Error(t, err)

	var schemaErr *ai.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.NotEmpty(t, schemaErr.Errors)
	require.Contains(t, err.Error(), "suitability")
}

func TestValidateJSON_WrongType(t *testing.T) {
	err := ai.ValidateJSON(ai.SchemaReport, `{"purpose":1,"education_and_accomplishments":"e","ability_to_lecture":"a","suitability":"s","conclusion":"c"}`)
	var schemaErr *ai.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "purpose", schemaErr.Errors[0].Field)
}

func TestValidateJSON_TranslationRequiresDate(t *testing.T) {
	err := ai.ValidateJSON(ai.SchemaTranslation, validReport)
	require.Error(t, err)
	require.Contains(t, err.Error(), "date")
}

func TestValidateJSON_Malformed(t *testing.T) {
	err := ai.ValidateJSON(ai.SchemaReport, `{"purpose":`)
	require.Error(t, err)
	var schemaErr *ai.SchemaError
	require.False(t, errors.As(err, &schemaErr))
}

func TestValidateJSON_UnknownKind(t *testing.T) {
	require.Error(t, ai.ValidateJSON("summary", validReport))
}
