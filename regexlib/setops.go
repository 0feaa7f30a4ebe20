package regexlib

// Complement returns a DFA accepting exactly the strings d rejects,
// assuming d is total (every symbol is defined from every state, as
// every DFA produced by this package's subset construction is).
func Complement[A Alphabet](d *DFA[A]) DFA[A] {
	out := DFA[A]{alpha: d.alpha, start: d.start, accept: map[int]bool{}}
	out.trans = make([][]int, len(d.trans))
	for i, row := range d.trans {
		out.trans[i] = append([]int(nil), row...)
		if !d.accept[i] {
			out.accept[i] = true
		}
	}
	return out
}

// Product builds the synchronized product of a and b over their shared
// alphabet, combining acceptance with op. The result is not
// necessarily total if a or b is not.
func Product[A Alphabet](a, b *DFA[A], op func(x, y bool) bool) DFA[A] {
	type pair struct{ i, j int }
	out := DFA[A]{alpha: a.alpha, accept: map[int]bool{}}
	idx := map[pair]int{}
	start := pair{a.start, b.start}
	idx[start] = out.CreateState()
	if op(a.accept[a.start], b.accept[b.start]) {
		out.MakeAccepting(0)
	}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := idx[p]
		for c := uint64(1); c < a.alpha.Size(); c++ {
			ta := a.Transition(p.i, c)
			tb := b.Transition(p.j, c)
			if ta == ErrorState || tb == ErrorState {
				continue
			}
			np := pair{ta, tb}
			ns, ok := idx[np]
			if !ok {
				ns = out.CreateState()
				idx[np] = ns
				if op(a.accept[ta], b.accept[tb]) {
					out.MakeAccepting(ns)
				}
				queue = append(queue, np)
			}
			out.SetTransition(cur, c, ns)
		}
	}
	return out
}

// Intersect accepts the strings both a and b accept.
func Intersect[A Alphabet](a, b *DFA[A]) DFA[A] {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the strings either a or b accepts.
func Union[A Alphabet](a, b *DFA[A]) DFA[A] {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Reverse builds a DFA accepting the reverse of every string d accepts:
// every edge is flipped, a fresh start gets an epsilon edge to each of
// d's accepting states, and a fresh accept state collects an epsilon
// edge from d's original start.
func Reverse[A Alphabet](d *DFA[A]) DFA[A] {
	n := NewNFA(d.alpha)
	for i := 1; i < d.Size(); i++ {
		n.CreateState()
	}
	for from := 0; from < d.Size(); from++ {
		for c := uint64(1); c < d.alpha.Size(); c++ {
			to := d.Transition(from, c)
			if to == ErrorState {
				continue
			}
			n.AddTransition(to, c, from)
		}
	}
	newStart := n.CreateState()
	for s := 0; s < d.Size(); s++ {
		if d.IsAccepting(s) {
			n.AddTransition(newStart, Epsilon, s)
		}
	}
	n.SetStart(newStart)
	newAccept := n.CreateState()
	n.AddTransition(d.Start(), Epsilon, newAccept)
	n.MakeAccepting(newAccept)

	n.EliminateEpsilon()
	return DFAFromNFA(&n)
}

// Reverse mutates r's raw AST in place into the regex for the reverse
// language: letters and the empty word are unaffected, Concat's
// children are reordered, and every other combinator's children are
// reversed recursively.
func (r *Regex[A]) Reverse() {
	assertf(r.box != nil, "Reverse on a null regex handle")
	newNode := reverseNode(r.box.node)
	if r.box.refcount > 1 {
		r.box.refcount--
	}
	r.box = &regexBox{refcount: 1, node: newNode}
}

func reverseNode(n *astNode) *astNode {
	switch n.kind {
	case kLetter, kEmpty:
		return deepCopyNode(n)
	case kKleene:
		return &astNode{kind: kKleene, child: reverseNode(n.child)}
	case kOptional:
		return &astNode{kind: kOptional, child: reverseNode(n.child)}
	case kConcat:
		children := make([]*astNode, len(n.children))
		for i, c := range n.children {
			children[len(children)-1-i] = reverseNode(c)
		}
		return &astNode{kind: kConcat, children: children}
	default: // kAlternate
		children := make([]*astNode, len(n.children))
		for i, c := range n.children {
			children[i] = reverseNode(c)
		}
		return &astNode{kind: kAlternate, children: children}
	}
}
