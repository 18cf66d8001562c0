package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string `validate:"required,min=1,max=200"`
	Priority string `validate:"omitempty,oneof=low medium high"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleRequest{Title: "ok"}))
	assert.NoError(t, ValidateStruct(&sampleRequest{Title: "ok", Priority: "high"}))
	assert.Error(t, ValidateStruct(&sampleRequest{}))
	assert.Error(t, ValidateStruct(&sampleRequest{Title: "ok", Priority: "urgent"}))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Priority: "urgent"})
	require.Error(t, err)

	fields := GetValidationErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "Title", fields[0].Field)
	assert.Equal(t, "required", fields[0].Tag)
	assert.Equal(t, "Priority", fields[1].Field)
	assert.Equal(t, "oneof", fields[1].Tag)
}
