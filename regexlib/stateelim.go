package regexlib

// RegexFromDFA turns a DFA back into regex text via state elimination
// (C6): it builds an AnyAlphabet graph mirroring d's edges plus one
// fresh accept state, then repeatedly removes an interior state,
// folding every path that passed through it into a single combined
// regex edge between its neighbors, until only the start and the fresh
// accept state remain.
func RegexFromDFA[A Alphabet](d *DFA[A]) Regex[A] {
	alpha := d.alpha

	// table interns regex fragments by value; index c (1 <= c < alpha
	// size) starts out holding the single-letter regex for ordinal c,
	// and grows as elimination combines fragments into new labels.
	table := []Regex[A]{NewRegex(alpha)}
	for o := uint64(1); o < alpha.Size(); o++ {
		table = append(table, newLetterRegex(alpha, o))
	}
	intern := func(r Regex[A]) uint64 {
		for i, t := range table {
			if regexASTEqual(t, r) {
				return uint64(i)
			}
		}
		table = append(table, r)
		return uint64(len(table) - 1)
	}

	g := NewNFA[AnyAlphabet](AnyAlphabet{})
	for i := 1; i < d.Size(); i++ {
		g.CreateState()
	}
	for from := 0; from < d.Size(); from++ {
		for via := uint64(1); via < alpha.Size(); via++ {
			to := d.Transition(from, via)
			if to == ErrorState {
				continue
			}
			g.AddTransition(from, via, to)
		}
	}
	g.SetStart(d.Start())
	term := g.CreateState()
	g.MakeAccepting(term)
	for x := 0; x < d.Size(); x++ {
		if d.IsAccepting(x) {
			g.AddTransition(x, Epsilon, term)
		}
	}
	g.pruneDeadTowardAccept()

	for v := 0; v < d.Size(); v++ {
		if v == g.Start() || g.IsAccepting(v) {
			continue
		}
		eliminate(&g, table, intern, v)
	}

	return assembleFinal(&g, table, term)
}

func eliminate[A Alphabet](g *NFA[AnyAlphabet], table []Regex[A], intern func(Regex[A]) uint64, v int) {
	var loopRegex Regex[A]
	for _, c := range sortedKeys(g.trans[v]) {
		if g.HasTransition(v, c, v) {
			loopRegex.Alternate(table[c])
		}
	}
	if !loopRegex.IsNull() {
		loopRegex.Kleene()
	}

	var preds []int
	for u := 0; u < g.Size(); u++ {
		if u == v {
			continue
		}
		if u != g.Start() && u <= v {
			continue
		}
		if _, ok := g.FindTransition(u, v); ok {
			preds = append(preds, u)
		}
	}
	var succs []int
	for _, c := range sortedKeys(g.trans[v]) {
		for _, w := range g.trans[v][c] {
			if w == v {
				continue
			}
			seen := false
			for _, s := range succs {
				if s == w {
					seen = true
					break
				}
			}
			if !seen {
				succs = append(succs, w)
			}
		}
	}

	uvRegex := make(map[int]Regex[A], len(preds))
	for _, u := range preds {
		var r Regex[A]
		for {
			lbl, ok := g.FindTransition(u, v)
			if !ok {
				break
			}
			r.Alternate(table[lbl])
			g.RemoveTransition(u, lbl, v)
		}
		uvRegex[u] = r
	}
	vwRegex := make(map[int]Regex[A], len(succs))
	for _, w := range succs {
		var r Regex[A]
		for {
			lbl, ok := g.FindTransition(v, w)
			if !ok {
				break
			}
			r.Alternate(table[lbl])
			g.RemoveTransition(v, lbl, w)
		}
		vwRegex[w] = r
	}

	for _, u := range preds {
		for _, w := range succs {
			combo := uvRegex[u].Clone()
			combo.Concat(loopRegex)
			combo.Concat(vwRegex[w])
			label := intern(combo)
			g.AddTransition(u, label, w)
		}
	}
	g.RemoveTransitionsFrom(v)
}

func assembleFinal[A Alphabet](g *NFA[AnyAlphabet], table []Regex[A], term int) Regex[A] {
	alpha := table[0].alpha
	start := g.Start()

	selfLoop := func(s int) Regex[A] {
		var r Regex[A]
		for _, c := range sortedKeys(g.trans[s]) {
			if g.HasTransition(s, c, s) {
				r.Alternate(table[c])
			}
		}
		if !r.IsNull() {
			r.Kleene()
		}
		return r
	}

	if start == term {
		r := selfLoop(start)
		if r.IsNull() {
			return NewRegex(alpha)
		}
		return r
	}

	startLoop := selfLoop(start)
	var direct Regex[A]
	for _, c := range sortedKeys(g.trans[start]) {
		if g.HasTransition(start, c, term) {
			direct.Alternate(table[c])
		}
	}
	result := startLoop
	result.Concat(direct)
	return result
}

func regexASTEqual[A Alphabet](a, b Regex[A]) bool {
	var an, bn *astNode
	if a.box != nil {
		an = a.box.node
	}
	if b.box != nil {
		bn = b.box.node
	}
	return astEqual(an, bn)
}
