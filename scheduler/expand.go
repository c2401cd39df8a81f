package scheduler

// expandRequirements converts per-subject credits into a concrete
// per-class bag of required sessions: required[class][subject] = count.
// A subject with credits c > 0 contributes c theory sessions; if c >= 3
// it also contributes one session of the implicit lab-subject. A
// zero-credit subject contributes nothing and never appears in the bag.
func expandRequirements(p *Problem, inst *instance) map[string]map[string]int {
	required := make(map[string]map[string]int, len(p.Classes))

	for _, class := range p.Classes {
		bag := make(map[string]int)
		for _, subject := range p.Subjects {
			credits := p.SubjectCredits[subject]
			if credits <= 0 {
				continue
			}
			bag[subject] = credits
			if credits >= 3 {
				bag[labSubjectName(subject)] = 1
			}
		}
		required[class] = bag
	}

	return required
}
