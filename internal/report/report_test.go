package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusched/timetable/scheduler"
)

func sampleResult() (*scheduler.Problem, *scheduler.Result) {
	problem := &scheduler.Problem{
		Classes:   []string{"C"},
		TimeSlots: []string{"Mon-1", "Mon-2"},
	}
	result := &scheduler.Result{
		RunID: "run-1",
		Schedule: map[string]map[string]*scheduler.Entry{
			"C": {
				"Mon-1": {Subject: "Math", Teacher: "T", Room: "R"},
				"Mon-2": nil,
			},
		},
		Statistics: scheduler.Statistics{TotalRequired: 2, TotalScheduled: 1, SuccessRate: 50},
	}
	return problem, result
}

func TestWriteJSONIncludesRunID(t *testing.T) {
	_, result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))
	assert.Contains(t, buf.String(), "\"run_id\": \"run-1\"")
}

func TestWriteTextIncludesEntriesAndEmptyMarker(t *testing.T) {
	problem, result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, problem, result))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Math / T / R"))
	assert.True(t, strings.Contains(out, "(empty)"))
	assert.True(t, strings.Contains(out, "run-1"))
}
