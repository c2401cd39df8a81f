package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsEmptyInventories(t *testing.T) {
	_, err := Schedule(&Problem{})
	require.Error(t, err)
	var schedErr *Error
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, CodeInvalidInput, schedErr.Code)
}

func TestValidateRejectsNonPositiveClassSize(t *testing.T) {
	p := trivialProblem()
	p.ClassSizes["C"] = 0

	_, err := Schedule(p)
	require.Error(t, err)
	var schedErr *Error
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, CodeInvalidInput, schedErr.Code)
}

func TestValidateRejectsUnknownSubjectReference(t *testing.T) {
	p := trivialProblem()
	p.SubjectPrerequisites = map[string][]string{"S": {"Ghost"}}

	_, err := Schedule(p)
	require.Error(t, err)
	var schedErr *Error
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, CodeInvalidInput, schedErr.Code)
}
