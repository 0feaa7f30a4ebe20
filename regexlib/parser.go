package regexlib

// Parse reads text as a complete regex over alpha and returns the
// resulting handle. Grammar (loosest to tightest):
//
//	Regex  ::= Alt
//	Alt    ::= Cat ('+' Cat)*
//	Cat    ::= Quant Quant*
//	Quant  ::= Simple ('*' | '?')?
//	Simple ::= '(' Regex ')' | letter | empty-word token
//
// Each production takes a pointer to the token cursor and advances it
// in place; on failure the cursor is put back by assigning a copy saved
// before the attempt — the same backtracking protocol the teacher's own
// Pratt parser uses, just without precedence climbing since this
// grammar has none.
func Parse[A Alphabet](alpha A, text string) (Regex[A], error) {
	it := newTokenIter(alpha, text)
	node, ok := parseAlt(&it)
	if !ok {
		return Regex[A]{}, syntaxErrorf(it.pos, "malformed regex")
	}
	if it.cur.kind != tkEOL {
		return Regex[A]{}, syntaxErrorf(it.pos, "trailing input after complete expression")
	}
	return Regex[A]{alpha: alpha, box: &regexBox{refcount: 1, node: node}}, nil
}

func parseAlt[A Alphabet](it *tokenIter[A]) (*astNode, bool) {
	first, ok := parseCat(it)
	if !ok {
		return nil, false
	}
	children := []*astNode{first}
	for it.cur.kind == tkAlternate {
		backup := *it
		it.advance()
		next, ok := parseCat(it)
		if !ok {
			*it = backup
			break
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], true
	}
	return &astNode{kind: kAlternate, children: children}, true
}

func parseCat[A Alphabet](it *tokenIter[A]) (*astNode, bool) {
	first, ok := parseQuant(it)
	if !ok {
		return nil, false
	}
	children := []*astNode{first}
	for {
		backup := *it
		next, ok := parseQuant(it)
		if !ok {
			*it = backup
			break
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], true
	}
	return &astNode{kind: kConcat, children: children}, true
}

func parseQuant[A Alphabet](it *tokenIter[A]) (*astNode, bool) {
	n, ok := parseSimple(it)
	if !ok {
		return nil, false
	}
	switch it.cur.kind {
	case tkKleeneStar:
		it.advance()
		return &astNode{kind: kKleene, child: n}, true
	case tkQuestionMark:
		it.advance()
		return &astNode{kind: kOptional, child: n}, true
	default:
		return n, true
	}
}

func parseSimple[A Alphabet](it *tokenIter[A]) (*astNode, bool) {
	switch it.cur.kind {
	case tkLParen:
		backup := *it
		it.advance()
		inner, ok := parseAlt(it)
		if !ok || it.cur.kind != tkRParen {
			*it = backup
			return nil, false
		}
		it.advance()
		return inner, true
	case tkLetter:
		n := letterNode(it.cur.ord)
		it.advance()
		return n, true
	case tkEmpty:
		n := emptyNode()
		it.advance()
		return n, true
	default:
		return nil, false
	}
}
