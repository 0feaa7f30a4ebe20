package regexlib

// BuildNFA runs Thompson construction over re's AST (C4): each letter
// becomes a two-state fragment, the empty word a single accepting
// state, and every Kleene/Optional/Concat/
// Alternate node combines its already-built children's NFAs with the
// matching combinator.
func BuildNFA[A Alphabet](re Regex[A]) NFA[A] {
	assertf(re.box != nil, "BuildNFA on a null regex handle")
	return buildFromNode(re.alpha, re.box.node)
}

func buildFromNode[A Alphabet](alpha A, n *astNode) NFA[A] {
	switch n.kind {
	case kLetter:
		nf := NewNFA(alpha)
		s := nf.CreateState()
		nf.AddTransition(0, n.letter, s)
		nf.MakeAccepting(s)
		return nf
	case kEmpty:
		nf := NewNFA(alpha)
		nf.MakeAccepting(0)
		return nf
	case kKleene:
		nf := buildFromNode(alpha, n.child)
		nf.Kleene()
		return nf
	case kOptional:
		nf := buildFromNode(alpha, n.child)
		nf.Optional()
		return nf
	case kConcat:
		nf := buildFromNode(alpha, n.children[0])
		for _, c := range n.children[1:] {
			nf.Concat(buildFromNode(alpha, c))
		}
		return nf
	default: // kAlternate
		nf := buildFromNode(alpha, n.children[0])
		for _, c := range n.children[1:] {
			nf.Alternate(buildFromNode(alpha, c))
		}
		return nf
	}
}
