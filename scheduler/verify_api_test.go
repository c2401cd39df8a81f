package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsCleanResult(t *testing.T) {
	p := trivialProblem()
	result, err := Schedule(p)
	require.NoError(t, err)

	violations, err := Verify(p, result)
	require.NoError(t, err)
	assert.Equal(t, []string{"schedule satisfies all hard constraints"}, violations)
}

func TestVerifyFlagsTeacherDoubleBooking(t *testing.T) {
	p := trivialProblem()
	p.Classes = []string{"C1", "C2"}
	p.ClassSizes = map[string]int{"C1": 20, "C2": 20}

	broken := &Result{
		Schedule: map[string]map[string]*Entry{
			"C1": {"Mon-1": {Subject: "S", Teacher: "T", Room: "R"}},
			"C2": {"Mon-1": {Subject: "S", Teacher: "T", Room: "R"}},
		},
	}

	violations, err := Verify(p, broken)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "double-booked")
}

func TestVerifyRejectsMalformedProblem(t *testing.T) {
	_, err := Verify(&Problem{}, &Result{})
	require.Error(t, err)
	var schedErr *Error
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, CodeInvalidInput, schedErr.Code)
}
