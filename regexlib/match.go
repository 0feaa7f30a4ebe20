package regexlib

// MaxMatch runs pattern through the full pipeline (parse -> NFA ->
// epsilon elimination -> subset construction -> minimize) and then
// returns the length of the longest prefix of input accepted by the
// resulting DFA starting at offset 0, i.e. longest_accepted_prefix
// (spec.md's max_match).
func MaxMatch[A Alphabet](alpha A, pattern, input string) (int, error) {
	d, err := CompileDFA(alpha, pattern)
	if err != nil {
		return 0, err
	}
	return Match(&d, input), nil
}

// CompileDFA runs the full parse -> NFA -> DFA -> minimize pipeline and
// returns the resulting minimal DFA.
func CompileDFA[A Alphabet](alpha A, pattern string) (DFA[A], error) {
	re, err := Parse(alpha, pattern)
	if err != nil {
		return DFA[A]{}, err
	}
	n := BuildNFA(re)
	n.EliminateEpsilon()
	d := DFAFromNFA(&n)
	return Minimize(&d), nil
}

// Match returns the length of the longest prefix of input accepted by
// d, scanning from d's start state and recording the furthest position
// at which the current state is accepting. It returns 0 if not even the
// empty prefix is accepted.
func Match[A Alphabet](d *DFA[A], input string) int {
	state := d.Start()
	best := 0
	if d.IsAccepting(state) {
		best = 0
	}
	data := []byte(input)
	pos := 0
	for pos < len(data) {
		ord, ok := d.alpha.Ord(data[pos])
		if !ok {
			break
		}
		to := d.Transition(state, ord)
		if to == ErrorState {
			break
		}
		pos++
		state = to
		if d.IsAccepting(state) {
			best = pos
		}
	}
	return best
}
