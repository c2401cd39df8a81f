package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a single Schedule call.
type Option func(*options)

type options struct {
	logger *zap.SugaredLogger
}

// WithLogger attaches a structured logger used purely for progress
// narration; a nil logger (the default) disables narration entirely
// without changing scheduling behavior. No component consults it for
// decisions — the core performs no I/O (spec §5).
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = logger }
}

// Schedule runs the full pipeline described in spec §2 against problem
// and returns the resulting timetable plus its verification report.
// Fatal input or feasibility defects are returned as *Error; a schedule
// that could not place every required session is not an error, it is
// reported inside the returned Result's Constraints.
func Schedule(problem *Problem, opts ...Option) (*Result, error) {
	cfg := &options{}
	for _, o := range opts {
		o(cfg)
	}

	if err := validate(problem); err != nil {
		return nil, err
	}

	inst := buildInstance(problem)
	required := expandRequirements(problem, inst)

	if err := validateExpanded(problem, inst, required); err != nil {
		return nil, err
	}

	order := make(map[string][]string, len(problem.Classes))
	for _, class := range problem.Classes {
		order[class] = orderSubjects(problem, inst, required[class])
	}

	seed := problem.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state := newState(inst, required)

	runID := uuid.NewString()
	if cfg.logger != nil {
		cfg.logger = cfg.logger.With("run_id", runID)
		cfg.logger.Infow("starting scheduling run", "classes", len(problem.Classes), "subjects", len(problem.Subjects))
	}

	runDriver(rng, inst, state, order, problem.consecutivePreferred(), cfg.logger)

	violations := verify(inst, state)

	result := &Result{
		RunID:       runID,
		Schedule:    buildScheduleView(problem, state),
		Statistics:  buildStatistics(problem, state),
		Constraints: violations,
	}

	if cfg.logger != nil {
		cfg.logger.Infow("scheduling run complete",
			"total_scheduled", result.Statistics.TotalScheduled,
			"total_required", result.Statistics.TotalRequired,
			"success_rate", result.Statistics.SuccessRate)
	}

	return result, nil
}

// Verify re-checks hard constraints for a schedule that may have been
// produced, hand-edited, or carried over from elsewhere — it does not
// call the Driver. It fails with *Error only if problem itself is
// malformed; an inconsistent schedule is reported in the returned
// violation list, not as an error.
func Verify(problem *Problem, result *Result) ([]string, error) {
	if err := validate(problem); err != nil {
		return nil, err
	}
	inst := buildInstance(problem)
	required := expandRequirements(problem, inst)
	state := stateFromResult(inst, required, result)
	return verify(inst, state), nil
}

// stateFromResult rebuilds a State's assignments and indexes directly
// from a Result's schedule view, without going through tryPlace's
// admissibility gate — an externally-supplied schedule may be exactly
// what Verify needs to flag as broken.
func stateFromResult(inst *instance, required map[string]map[string]int, result *Result) *State {
	state := newState(inst, required)

	for class, byTime := range result.Schedule {
		for label, entry := range byTime {
			if entry == nil {
				continue
			}
			slot, ok := inst.slotIndex[label]
			if !ok {
				continue
			}
			c := cell{class: class, slot: slot}
			state.assignments[c] = placement{subject: entry.Subject, teacher: entry.Teacher, room: entry.Room}

			if state.teacherBusy[entry.Teacher] == nil {
				state.teacherBusy[entry.Teacher] = make(map[int]bool)
			}
			state.teacherBusy[entry.Teacher][slot] = true
			if state.classBusy[class] == nil {
				state.classBusy[class] = make(map[int]bool)
			}
			state.classBusy[class][slot] = true
			if state.roomBusy[entry.Room] == nil {
				state.roomBusy[entry.Room] = make(map[int]bool)
			}
			state.roomBusy[entry.Room][slot] = true

			if _, isLab := state.baseOfLab(entry.Subject); isLab {
				if spec, ok := inst.rooms[entry.Room]; ok && spec.Type == RoomLab {
					state.labRoomBusy[slot][entry.Room] = true
				}
			}

			day := inst.timeSlots[slot].Day
			if state.teacherDay[entry.Teacher] == nil {
				state.teacherDay[entry.Teacher] = make(map[string]int)
			}
			state.teacherDay[entry.Teacher][day]++

			if state.subjectAt[class] == nil {
				state.subjectAt[class] = make(map[string][]int)
			}
			state.subjectAt[class][entry.Subject] = insertSorted(state.subjectAt[class][entry.Subject], slot)

			if state.scheduled[class] == nil {
				state.scheduled[class] = make(map[string]int)
			}
			state.scheduled[class][entry.Subject]++
		}
	}

	return state
}

func buildScheduleView(problem *Problem, state *State) map[string]map[string]*Entry {
	view := make(map[string]map[string]*Entry, len(problem.Classes))
	for _, class := range problem.Classes {
		byTime := make(map[string]*Entry, len(problem.TimeSlots))
		for i, label := range problem.TimeSlots {
			if p, ok := state.assignments[cell{class: class, slot: i}]; ok {
				byTime[label] = &Entry{Subject: p.subject, Teacher: p.teacher, Room: p.room}
			} else {
				byTime[label] = nil
			}
		}
		view[class] = byTime
	}
	return view
}

func buildStatistics(problem *Problem, state *State) Statistics {
	totalRequired, totalScheduled := 0, 0
	for _, bySubject := range state.required {
		for _, n := range bySubject {
			totalRequired += n
		}
	}
	for _, bySubject := range state.scheduled {
		for _, n := range bySubject {
			totalScheduled += n
		}
	}

	successRate := 0.0
	if totalRequired > 0 {
		successRate = float64(totalScheduled) / float64(totalRequired) * 100
	}

	sessionsByTeacher := make(map[string]int, len(problem.Teachers))
	sessionsByRoom := make(map[string]int, len(problem.Rooms))
	headroomTotal := 0
	for c, p := range state.assignments {
		sessionsByTeacher[p.teacher]++
		sessionsByRoom[p.room]++
		headroomTotal += state.inst.rooms[p.room].Capacity - state.inst.classSizes[c.class]
	}

	teacherUtil := make([]TeacherUtilization, 0, len(problem.Teachers))
	for _, t := range problem.Teachers {
		teacherUtil = append(teacherUtil, TeacherUtilization{Name: t, TotalSessions: sessionsByTeacher[t]})
	}
	sort.Slice(teacherUtil, func(i, j int) bool { return teacherUtil[i].Name < teacherUtil[j].Name })

	roomUtil := make([]RoomUtilization, 0, len(state.inst.roomNames))
	for _, r := range state.inst.roomNames {
		roomUtil = append(roomUtil, RoomUtilization{Name: r, TotalSessions: sessionsByRoom[r]})
	}

	avgHeadroom := 0.0
	if totalScheduled > 0 {
		avgHeadroom = float64(headroomTotal) / float64(totalScheduled)
	}

	return Statistics{
		TotalRequired:       totalRequired,
		TotalScheduled:      totalScheduled,
		SuccessRate:         successRate,
		TeacherUtilization:  teacherUtil,
		RoomUtilization:     roomUtil,
		AverageRoomHeadroom: avgHeadroom,
	}
}
