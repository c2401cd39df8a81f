package scheduler

import "fmt"

// verify re-checks hard constraints on the final schedule and returns
// the list of human-readable violations, including every required
// session left unscheduled, or a single positive marker if none are
// found (spec §4.9). Invariants 2, 3, 8, 10 cannot be violated if
// tryPlace was the only mutation path, but teacher conflict (invariant
// 1) and the daily load cap (invariant 8) are re-checked anyway as
// defense in depth.
func verify(inst *instance, state *State) []string {
	var violations []string

	teacherSlot := make(map[string]map[int]string) // teacher -> slot -> class (first one seen)
	for c, p := range state.assignments {
		if teacherSlot[p.teacher] == nil {
			teacherSlot[p.teacher] = make(map[int]string)
		}
		if other, seen := teacherSlot[p.teacher][c.slot]; seen && other != c.class {
			violations = append(violations, fmt.Sprintf(
				"teacher %q double-booked at slot %d for classes %q and %q", p.teacher, c.slot, other, c.class))
		} else {
			teacherSlot[p.teacher][c.slot] = c.class
		}
	}

	for c, p := range state.assignments {
		if !inst.qualifications[p.teacher][p.subject] {
			violations = append(violations, fmt.Sprintf(
				"teacher %q is not qualified for %q (class %q)", p.teacher, p.subject, c.class))
		}

		spec, ok := inst.rooms[p.room]
		if !ok {
			violations = append(violations, fmt.Sprintf("assignment references unknown room %q", p.room))
			continue
		}
		if spec.Capacity < inst.classSizes[c.class] {
			violations = append(violations, fmt.Sprintf(
				"room %q capacity %d is below class %q size %d", p.room, spec.Capacity, c.class, inst.classSizes[c.class]))
		}
		kind := inst.requiredKind[p.subject]
		if spec.Type != kind && spec.Type != RoomFlex {
			violations = append(violations, fmt.Sprintf(
				"room %q (%s) does not match required kind %q for %q", p.room, spec.Type, kind, p.subject))
		}
	}

	for class, bySubject := range state.scheduled {
		for subject, count := range bySubject {
			if need := state.required[class][subject]; count > need {
				violations = append(violations, fmt.Sprintf(
					"class %q subject %q scheduled %d sessions but only %d required", class, subject, count, need))
			}
		}
	}

	for class, bySubject := range state.required {
		for subject, need := range bySubject {
			if count := state.scheduled[class][subject]; count < need {
				violations = append(violations, fmt.Sprintf(
					"class %q subject %q has only %d of %d required sessions scheduled", class, subject, count, need))
			}
		}
	}

	for class, bySubject := range state.subjectAt {
		for subject, slots := range bySubject {
			base, isLab := state.baseOfLab(subject)
			if !isLab {
				continue
			}
			for _, labSlot := range slots {
				if !hasEarlierIn(state.subjectAt[class][base], labSlot) {
					violations = append(violations, fmt.Sprintf(
						"class %q lab session %q at slot %d has no earlier theory session of %q", class, subject, labSlot, base))
				}
			}
		}
	}

	for teacher, days := range state.teacherDay {
		dailyCap := inst.problem.teacherMaxDailyLoad()
		for day, count := range days {
			if count > dailyCap {
				violations = append(violations, fmt.Sprintf(
					"teacher %q has %d sessions on %q, exceeding the daily cap of %d", teacher, count, day, dailyCap))
			}
		}
	}

	if len(violations) == 0 {
		return []string{"schedule satisfies all hard constraints"}
	}
	return violations
}

func hasEarlierIn(slots []int, before int) bool {
	for _, s := range slots {
		if s < before {
			return true
		}
	}
	return false
}
