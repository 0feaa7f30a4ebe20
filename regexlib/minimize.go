package regexlib

// Minimize collapses d into its minimal equivalent by repeated
// signature-row refinement: states start split only into accepting /
// non-accepting, and any pass that finds two same-class states whose
// per-symbol successor classes disagree carves the later one out into a
// fresh class, until a pass finds nothing to split.
//
// The minimized automaton is seeded with two states up front (index 0
// for the initial non-accepting class, index 1 for the initial
// accepting class) and index 1 is marked accepting immediately, even if
// the input DFA turns out to have no accepting states at all and that
// seed state is never actually referenced by any input state's class
// (and likewise for seed 0 when every input state is accepting). Such
// an unreferenced seed stays in the result with every transition left
// at ErrorState; no state has an edge into it, so it is unreachable from
// the minimized DFA's start and never affects matching or state
// elimination. It is kept rather than special-cased away, matching the
// shape of the original minimization routine this is ported from.
func Minimize[A Alphabet](d *DFA[A]) DFA[A] {
	mindfa := NewDFA[A](d.alpha) // state 0: seed non-accepting class
	mindfa.CreateState()         // state 1: seed accepting class
	mindfa.MakeAccepting(1)

	classes := make([]int, d.Size())
	for i := 0; i < d.Size(); i++ {
		if d.IsAccepting(i) {
			classes[i] = 1
		} else {
			classes[i] = 0
		}
	}
	mindfa.SetStart(classes[d.Start()])

	size := d.alpha.Size()
	addedNewClass := true
	for addedNewClass {
		addedNewClass = false
		newClasses := append([]int(nil), classes...)
		initialized := make([]bool, mindfa.Size())

		for i := 0; i < len(classes); i++ {
			if !initialized[classes[i]] {
				initialized[classes[i]] = true
				for via := uint64(1); via < size; via++ {
					mindfa.SetTransition(classes[i], via, classes[d.Transition(i, via)])
				}
				continue
			}

			row := make([]int, size)
			for via := uint64(1); via < size; via++ {
				row[via] = classes[d.Transition(i, via)]
			}
			if rowEqual(row, mindfa.trans[classes[i]], size) {
				continue
			}

			for j := 0; j < i; j++ {
				if classes[j] != classes[i] {
					continue
				}
				if rowEqual(row, mindfa.trans[newClasses[j]], size) {
					newClasses[i] = newClasses[j]
					break
				}
			}
			if newClasses[i] == classes[i] {
				fresh := mindfa.Size()
				mindfa.CreateState()
				if mindfa.IsAccepting(classes[i]) {
					mindfa.MakeAccepting(fresh)
				}
				for via := uint64(1); via < size; via++ {
					mindfa.SetTransition(fresh, via, classes[d.Transition(i, via)])
				}
				newClasses[i] = fresh
				addedNewClass = true
			}
		}
		classes = newClasses
	}
	return mindfa
}

func rowEqual(row, other []int, size uint64) bool {
	for via := uint64(1); via < size; via++ {
		if row[via] != other[via] {
			return false
		}
	}
	return true
}
