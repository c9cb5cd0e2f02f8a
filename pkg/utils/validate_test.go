package utils

import (
	"testing"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateComparisonRequest(t *testing.T) {
	_, err := Validate(models.ComparisonRequest{
		TruthID:     "a",
		CandidateID: "b",
	})
	assert.NoError(t, err)
}

func TestValidateMissingField(t *testing.T) {
	_, err := Validate(models.ComparisonRequest{TruthID: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CandidateID")
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, ValidateValue("a@b.com", "email"))
	assert.Error(t, ValidateValue("not-an-email", "email"))
}
