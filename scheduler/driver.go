package scheduler

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"
)

// runDriver is the outer round-robin loop (spec §4.7): it repeatedly
// picks the least-progressed not-yet-fully-scheduled class, walks its
// prerequisite-ordered subjects, and feeds the Placement Search. It
// terminates when every class is fully scheduled, or when a full pass
// makes no progress and repair cannot unstick it, with an absolute
// iteration cap as a safety net. log may
// be nil; when non-nil it only narrates progress, it never changes
// behavior (mirrors the teacher's log.Printf calls in its CommandGen
// search loop, upgraded to the pack's structured logger).
func runDriver(rng *rand.Rand, inst *instance, state *State, order map[string][]string, consecutive bool, log *zap.SugaredLogger) {
	pending := make(map[string]bool, len(inst.problem.Classes))
	for _, c := range inst.problem.Classes {
		if !state.fullyScheduled(c) {
			pending[c] = true
		}
	}

	for iteration := 0; iteration < maxDriverIterations && len(pending) > 0; iteration++ {
		classes := pendingList(pending)
		sort.SliceStable(classes, func(i, j int) bool {
			return state.progress(classes[i]) < state.progress(classes[j])
		})

		madeProgress := false
		var stuckClass, stuckSubject string

		for _, class := range classes {
			subject, ok := firstUnmetSubject(state, class, order[class])
			if !ok {
				delete(pending, class)
				continue
			}

			teachers := rankedTeachers(inst, state, subject)
			placed := false
			for _, teacher := range teachers {
				choice, found := state.findPlacement(rng, class, subject, teacher, consecutive)
				if !found {
					continue
				}
				if state.tryPlace(class, subject, teacher, choice.room, choice.slot) {
					placed = true
					madeProgress = true
					if log != nil {
						log.Debugw("placed session",
							"class", class, "subject", subject, "teacher", teacher,
							"room", choice.room, "slot", inst.timeSlots[choice.slot].Label)
					}
					break
				}
			}

			if placed {
				if state.fullyScheduled(class) {
					delete(pending, class)
				}
				break
			}

			if stuckClass == "" {
				stuckClass, stuckSubject = class, subject
			}
		}

		if !madeProgress {
			if stuckClass == "" {
				break
			}
			if log != nil {
				log.Infow("no forward progress, attempting repair",
					"class", stuckClass, "subject", stuckSubject, "iteration", iteration)
			}
			if !repair(rng, inst, state, consecutive, stuckClass, stuckSubject) {
				if log != nil {
					log.Infow("repair failed, stopping driver", "class", stuckClass, "subject", stuckSubject)
				}
				break
			}
		}
	}
}

func pendingList(pending map[string]bool) []string {
	out := make([]string, 0, len(pending))
	for c := range pending {
		out = append(out, c)
	}
	return out
}

// firstUnmetSubject walks a class's topological subject order and
// returns the first subject whose scheduled count is below required.
func firstUnmetSubject(state *State, class string, order []string) (string, bool) {
	for _, subject := range order {
		if state.scheduledCount(class, subject) < state.requiredCount(class, subject) {
			return subject, true
		}
	}
	return "", false
}

// rankedTeachers returns subject's qualified teachers ordered by
// ascending total daily load, then descending remaining-available-slot
// count (spec §4.7 step 3).
func rankedTeachers(inst *instance, state *State, subject string) []string {
	var teachers []string
	for _, t := range inst.problem.Teachers {
		if inst.qualifications[t][subject] {
			teachers = append(teachers, t)
		}
	}
	sort.SliceStable(teachers, func(i, j int) bool {
		li, lj := totalLoad(state, teachers[i]), totalLoad(state, teachers[j])
		if li != lj {
			return li < lj
		}
		return remainingSlots(inst, state, teachers[i]) > remainingSlots(inst, state, teachers[j])
	})
	return teachers
}

func totalLoad(state *State, teacher string) int {
	total := 0
	for _, n := range state.teacherDay[teacher] {
		total += n
	}
	return total
}

func remainingSlots(inst *instance, state *State, teacher string) int {
	busy := len(state.teacherBusy[teacher])
	return len(inst.timeSlots) - busy
}
