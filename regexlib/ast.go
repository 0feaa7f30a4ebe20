package regexlib

// astKind orders the raw AST node shapes by printer precedence: a child
// whose kind is >= its parent's kind must be parenthesized when printed.
// This mirrors the order letters bind tightest and alternation loosest.
type astKind int

const (
	kLetter astKind = iota
	kEmpty
	kKleene
	kOptional
	kConcat
	kAlternate
)

// astNode is one raw AST node (C3's "Regex AST"). A node is only
// changed in place by a Regex handle that owns its tree exclusively.
// The tree never shares sub-nodes: every handle that wants to reuse a
// fragment deep-copies it first.
type astNode struct {
	kind     astKind
	letter   uint64     // valid when kind == kLetter
	child    *astNode   // valid when kind == kKleene || kind == kOptional
	children []*astNode // valid when kind == kConcat || kind == kAlternate, len >= 2
}

func letterNode(ord uint64) *astNode { return &astNode{kind: kLetter, letter: ord} }
func emptyNode() *astNode            { return &astNode{kind: kEmpty} }

func deepCopyNode(n *astNode) *astNode {
	if n == nil {
		return nil
	}
	cp := &astNode{kind: n.kind, letter: n.letter}
	if n.child != nil {
		cp.child = deepCopyNode(n.child)
	}
	if n.children != nil {
		cp.children = make([]*astNode, len(n.children))
		for i, c := range n.children {
			cp.children[i] = deepCopyNode(c)
		}
	}
	return cp
}

func astEqual(a, b *astNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case kLetter:
		return a.letter == b.letter
	case kEmpty:
		return true
	case kKleene, kOptional:
		return astEqual(a.child, b.child)
	default: // kConcat, kAlternate
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !astEqual(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	}
}

// regexBox is the refcounted, non-atomic owner of a raw AST shared by
// every Regex handle cloned from the same value. Two handles never
// observe each other's mutations: a mutating method deep-copies the tree
// first whenever it is shared.
type regexBox struct {
	refcount int
	node     *astNode
}

// Regex is a copy-on-write handle over a raw AST (C3). The
// zero value is the "null" handle, used only as an accumulator's initial
// value before the first Concat/Alternate call populates it.
type Regex[A Alphabet] struct {
	alpha A
	box   *regexBox
}

// NewRegex builds a handle around the empty-word regex.
func NewRegex[A Alphabet](alpha A) Regex[A] {
	return Regex[A]{alpha: alpha, box: &regexBox{refcount: 1, node: emptyNode()}}
}

func newLetterRegex[A Alphabet](alpha A, ord uint64) Regex[A] {
	return Regex[A]{alpha: alpha, box: &regexBox{refcount: 1, node: letterNode(ord)}}
}

// IsNull reports whether r is the zero-value accumulator handle.
func (r Regex[A]) IsNull() bool { return r.box == nil }

// Clone returns a cheap alias sharing the same underlying AST; the
// shared tree is only copied on the first subsequent mutation.
func (r Regex[A]) Clone() Regex[A] {
	if r.box != nil {
		r.box.refcount++
	}
	return r
}

func (r *Regex[A]) ensureUnique() {
	assertf(r.box != nil, "ensureUnique on a null regex handle")
	if r.box.refcount > 1 {
		r.box.refcount--
		r.box = &regexBox{refcount: 1, node: deepCopyNode(r.box.node)}
	}
}

// Concat appends other after r in sequence. A null r is treated as the
// accumulator's identity (result becomes other); concatenating with the
// empty-word regex on either side is an identity on the non-empty side.
func (r *Regex[A]) Concat(other Regex[A]) {
	if r.box == nil {
		*r = other.Clone()
		return
	}
	if other.box == nil || other.box.node.kind == kEmpty {
		return
	}
	if r.box.node.kind == kEmpty {
		*r = other.Clone()
		return
	}
	r.ensureUnique()
	appended := deepCopyNode(other.box.node)
	if r.box.node.kind == kConcat {
		r.box.node.children = append(r.box.node.children, appended)
	} else {
		r.box.node = &astNode{kind: kConcat, children: []*astNode{r.box.node, appended}}
	}
}

// Alternate builds the union of r and other. A null r is treated as the
// accumulator's identity (result becomes other); unlike Concat, there is
// no Empty-operand shortcut — alternating with the empty word produces a
// genuine alternation.
func (r *Regex[A]) Alternate(other Regex[A]) {
	if r.box == nil {
		*r = other.Clone()
		return
	}
	if other.box == nil {
		return
	}
	r.ensureUnique()
	appended := deepCopyNode(other.box.node)
	if r.box.node.kind == kAlternate {
		r.box.node.children = append(r.box.node.children, appended)
	} else {
		r.box.node = &astNode{kind: kAlternate, children: []*astNode{r.box.node, appended}}
	}
}

// Kleene wraps r in a zero-or-more repetition. r must not be null.
func (r *Regex[A]) Kleene() {
	assertf(r.box != nil, "Kleene on a null regex handle")
	r.ensureUnique()
	r.box.node = &astNode{kind: kKleene, child: r.box.node}
}

// Optional wraps r in a zero-or-one repetition. r must not be null.
func (r *Regex[A]) Optional() {
	assertf(r.box != nil, "Optional on a null regex handle")
	r.ensureUnique()
	r.box.node = &astNode{kind: kOptional, child: r.box.node}
}

// String prints r using the alphabet's own meta-characters, bracketing a
// child whenever its kind binds no tighter than its parent's.
func (r Regex[A]) String() string {
	if r.box == nil {
		return ""
	}
	var b []byte
	b = writeNode(b, r.alpha, r.box.node)
	return string(b)
}

func writeNode[A Alphabet](b []byte, alpha A, n *astNode) []byte {
	switch n.kind {
	case kLetter:
		return append(b, alpha.FormatChr(n.letter)...)
	case kEmpty:
		return append(b, alpha.EmptyWord())
	case kKleene:
		b = writeMaybeBracketed(b, alpha, n.child, n.kind)
		return append(b, alpha.Star())
	case kOptional:
		b = writeMaybeBracketed(b, alpha, n.child, n.kind)
		return append(b, alpha.QuestionMark())
	case kConcat:
		for _, c := range n.children {
			b = writeMaybeBracketed(b, alpha, c, n.kind)
		}
		return b
	default: // kAlternate
		for i, c := range n.children {
			if i > 0 {
				b = append(b, alpha.Plus())
			}
			b = writeMaybeBracketed(b, alpha, c, n.kind)
		}
		return b
	}
}

func writeMaybeBracketed[A Alphabet](b []byte, alpha A, n *astNode, parentKind astKind) []byte {
	if n.kind >= parentKind {
		b = append(b, alpha.LBracket())
		b = writeNode(b, alpha, n)
		b = append(b, alpha.RBracket())
		return b
	}
	return writeNode(b, alpha, n)
}
