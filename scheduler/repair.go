package scheduler

import "math/rand"

// repair resolves a local conflict for (class, subject) by temporarily
// evicting up to maxRepairEvictions existing assignments of the same
// class, per spec §4.8. It keeps evicting additional sessions only
// while the target still has nowhere to go; once the target has been
// placed, it makes exactly one attempt to reseat every evictee and
// either keeps that outcome (returning true) or restores the snapshot
// and gives up immediately (returning false) — it never keeps evicting
// past a successful target placement. State is never left inconsistent.
func repair(rng *rand.Rand, inst *instance, state *State, consecutive bool, class, subject string) bool {
	snap := state.snapshot()

	slots := classAssignmentSlots(state, class)
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	_, targetIsLab := state.baseOfLab(subject)

	evictedSubjects := make([]string, 0, maxRepairEvictions)
	attempts := 0
	for _, slot := range slots {
		if attempts >= maxRepairEvictions {
			break
		}
		c := cell{class: class, slot: slot}
		p, ok := state.assignments[c]
		if !ok {
			continue
		}
		if _, isLab := state.baseOfLab(p.subject); isLab && !targetIsLab {
			// prefer moving theory sessions out of the way over labs
			continue
		}

		state.unplace(class, slot)
		evictedSubjects = append(evictedSubjects, p.subject)
		attempts++

		if !placeOne(rng, inst, state, consecutive, class, subject) {
			// target still doesn't fit anywhere; evict more room.
			continue
		}

		if reseatEvictees(rng, inst, state, consecutive, class, evictedSubjects) {
			return true
		}
		state.restore(snap)
		return false
	}

	state.restore(snap)
	return false
}

// classAssignmentSlots returns the time slots currently occupied by class.
func classAssignmentSlots(state *State, class string) []int {
	var slots []int
	for c := range state.assignments {
		if c.class == class {
			slots = append(slots, c.slot)
		}
	}
	return slots
}

// reseatEvictees tries to re-place every evicted subject. All must
// succeed or the attempt fails.
func reseatEvictees(rng *rand.Rand, inst *instance, state *State, consecutive bool, class string, evictedSubjects []string) bool {
	for _, evictedSubject := range evictedSubjects {
		if !placeOne(rng, inst, state, consecutive, class, evictedSubject) {
			return false
		}
	}
	return true
}

// placeOne tries every qualified teacher for (class, subject) via
// Placement Search and commits the first success.
func placeOne(rng *rand.Rand, inst *instance, state *State, consecutive bool, class, subject string) bool {
	for _, teacher := range rankedTeachers(inst, state, subject) {
		choice, found := state.findPlacement(rng, class, subject, teacher, consecutive)
		if !found {
			continue
		}
		if state.tryPlace(class, subject, teacher, choice.room, choice.slot) {
			return true
		}
	}
	return false
}
