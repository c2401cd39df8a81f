package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repairFixture builds a three-class instance where class C's target
// subject has no admissible slot until repair evicts C's sole existing
// assignment. Both tests below share the same room/slot layout and
// differ only in whether a home remains for the evicted subject once
// the target has taken its place.
func repairFixture(t *testing.T, evicteeHasRoomElsewhere bool) (*instance, *State) {
	p := &Problem{
		Teachers:  []string{"T", "T2", "T3"},
		Classes:   []string{"C", "D", "E"},
		Subjects:  []string{"A", "B", "D1", "D2", "E1", "E2"},
		TimeSlots: []string{"Mon-1", "Mon-2", "Tue-1"},
		Rooms: map[string]RoomSpec{
			"R": {Capacity: 30, Type: RoomTheory},
			"L": {Capacity: 30, Type: RoomLab},
		},
		SubjectCredits: map[string]int{
			"A": 1, "B": 1, "D1": 1, "D2": 1, "E1": 1, "E2": 1,
		},
		SubjectRoomRequirements: map[string]RoomKind{
			"B": RoomLab, "E1": RoomLab, "E2": RoomLab,
		},
		TeacherQualifications: map[string][]string{
			"T":  {"A", "B"},
			"T2": {"D1", "D2"},
			"T3": {"E1", "E2"},
		},
		ClassSizes:          map[string]int{"C": 20, "D": 20, "E": 20},
		TeacherMaxDailyLoad: 2,
	}

	inst := buildInstance(p)
	required := map[string]map[string]int{
		"C": {"A": 1, "B": 1},
		"D": {"D1": 1, "D2": 1},
		"E": {"E1": 1, "E2": 1},
	}
	state := newState(inst, required)

	// D and E each occupy Mon-2 and Tue-1 with a theory and a lab
	// session respectively, leaving Mon-1 wide open and blocking both
	// rooms at the other two slots.
	require.True(t, state.tryPlace("D", "D1", "T2", "R", 1)) // Mon-2
	require.True(t, state.tryPlace("D", "D2", "T2", "R", 2)) // Tue-1
	require.True(t, state.tryPlace("E", "E1", "T3", "L", 1)) // Mon-2
	require.True(t, state.tryPlace("E", "E2", "T3", "L", 2)) // Tue-1

	// C occupies its only slot, Mon-1, with A in the one theory room.
	require.True(t, state.tryPlace("C", "A", "T", "R", 0))

	if !evicteeHasRoomElsewhere {
		return inst, state
	}

	// Free up a theory room at a slot D/E don't use, so the evicted A
	// has somewhere to go back to after B takes Mon-1.
	require.True(t, state.unplace("D", 2))
	delete(state.required["D"], "D2")
	delete(state.scheduled["D"], "D2")
	return inst, state
}

func TestRepairEvictsAndReseatsSuccessfully(t *testing.T) {
	inst, state := repairFixture(t, true)
	rng := rand.New(rand.NewSource(1))

	ok := repair(rng, inst, state, false, "C", "B")
	require.True(t, ok)

	bCell := cell{class: "C", slot: 0}
	assert.Equal(t, "B", state.assignments[bCell].subject)

	aPlaced := false
	for slot := 0; slot < 3; slot++ {
		if p, found := state.assignments[cell{class: "C", slot: slot}]; found && p.subject == "A" {
			aPlaced = true
		}
	}
	assert.True(t, aPlaced, "evicted subject A must have been reseated somewhere")
	assert.Equal(t, 1, state.scheduled["C"]["A"])
	assert.Equal(t, 1, state.scheduled["C"]["B"])
}

func TestRepairRestoresAndStopsWhenEvicteeHasNowhereToGo(t *testing.T) {
	inst, state := repairFixture(t, false)
	rng := rand.New(rand.NewSource(1))

	before := map[cell]placement{}
	for c, p := range state.assignments {
		before[c] = p
	}
	beforeScheduledA := state.scheduled["C"]["A"]

	ok := repair(rng, inst, state, false, "C", "B")
	require.False(t, ok)

	assert.Equal(t, before, state.assignments,
		"a failed repair must restore the snapshot instead of leaving the target placed")
	assert.Equal(t, beforeScheduledA, state.scheduled["C"]["A"])
	assert.Equal(t, 0, state.scheduled["C"]["B"])
}
