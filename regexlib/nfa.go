package regexlib

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved ordinal used for an NFA's epsilon transitions.
// It is never a valid letter ordinal (letters start at 1).
const Epsilon uint64 = 0

// NFA is a nondeterministic automaton over Alphabet A (C4). States are
// dense integer ids starting at 0; each state's outgoing edges are kept
// as ordinal -> sorted-by-insertion target list, with Epsilon (0) used
// for epsilon edges.
type NFA[A Alphabet] struct {
	alpha  A
	trans  []map[uint64][]int
	accept map[int]bool
	start  int
}

// NewNFA returns a one-state NFA (the start state, non-accepting).
func NewNFA[A Alphabet](alpha A) NFA[A] {
	return NFA[A]{alpha: alpha, trans: []map[uint64][]int{{}}, accept: map[int]bool{}}
}

func (n *NFA[A]) CreateState() int {
	n.trans = append(n.trans, map[uint64][]int{})
	return len(n.trans) - 1
}

func (n *NFA[A]) Size() int       { return len(n.trans) }
func (n *NFA[A]) Start() int      { return n.start }
func (n *NFA[A]) SetStart(s int)  { n.start = s }
func (n *NFA[A]) MakeAccepting(s int)    { n.accept[s] = true }
func (n *NFA[A]) IsAccepting(s int) bool { return n.accept[s] }

func (n *NFA[A]) HasTransition(from int, via uint64, to int) bool {
	for _, t := range n.trans[from][via] {
		if t == to {
			return true
		}
	}
	return false
}

// AddTransition records from-via->to, ignoring a request that would
// duplicate an existing triple.
func (n *NFA[A]) AddTransition(from int, via uint64, to int) {
	if !n.HasTransition(from, via, to) {
		n.trans[from][via] = append(n.trans[from][via], to)
	}
}

func (n *NFA[A]) RemoveTransition(from int, via uint64, to int) {
	tos := n.trans[from][via]
	for i, t := range tos {
		if t == to {
			n.trans[from][via] = append(tos[:i:i], tos[i+1:]...)
			return
		}
	}
}

func (n *NFA[A]) RemoveTransitionsFrom(from int) {
	n.trans[from] = map[uint64][]int{}
}

// FindTransition reports the smallest label carrying an edge from->to,
// if any.
func (n *NFA[A]) FindTransition(from, to int) (uint64, bool) {
	for _, via := range sortedKeys(n.trans[from]) {
		for _, t := range n.trans[from][via] {
			if t == to {
				return via, true
			}
		}
	}
	return 0, false
}

func sortedKeys(m map[uint64][]int) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func relabelTo(m map[uint64][]int, delta int) {
	for c, tos := range m {
		shifted := make([]int, len(tos))
		for i, t := range tos {
			shifted[i] = t + delta
		}
		m[c] = shifted
	}
}

// appendRelabeled shifts every state id in other by delta and appends
// its states to n, returning other's relabeled start and accept set.
// other is consumed: the caller must not reuse it afterward.
func (n *NFA[A]) appendRelabeled(other *NFA[A], delta int) (newStart int, newAccept map[int]bool) {
	for _, m := range other.trans {
		relabelTo(m, delta)
	}
	n.trans = append(n.trans, other.trans...)
	newStart = other.start + delta
	newAccept = make(map[int]bool, len(other.accept))
	for s := range other.accept {
		newAccept[s+delta] = true
	}
	return newStart, newAccept
}

func acceptSlice(accept map[int]bool) []int {
	out := make([]int, 0, len(accept))
	for s := range accept {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Concat appends other in sequence after n: every accepting state of n
// gets an epsilon edge to other's start, and n's accept set becomes
// other's (relabeled) accept set. other is consumed.
func (n *NFA[A]) Concat(other NFA[A]) {
	delta := n.Size()
	oldAccept := acceptSlice(n.accept)
	otherStart, otherAccept := n.appendRelabeled(&other, delta)
	n.accept = map[int]bool{}
	for _, s := range oldAccept {
		n.AddTransition(s, Epsilon, otherStart)
	}
	n.accept = otherAccept
}

// Alternate builds the union of n and other behind a fresh start state
// and a fresh shared accept state. other is consumed.
func (n *NFA[A]) Alternate(other NFA[A]) {
	delta := n.Size()
	oldStart := n.start
	oldAccept := acceptSlice(n.accept)
	otherStart, otherAccept := n.appendRelabeled(&other, delta)

	newStart := n.CreateState()
	n.AddTransition(newStart, Epsilon, oldStart)
	n.AddTransition(newStart, Epsilon, otherStart)
	n.start = newStart

	newTerm := n.CreateState()
	n.accept = map[int]bool{}
	for _, s := range oldAccept {
		n.AddTransition(s, Epsilon, newTerm)
	}
	for _, s := range acceptSlice(otherAccept) {
		n.AddTransition(s, Epsilon, newTerm)
	}
	n.accept[newTerm] = true
}

// Kleene wraps n in a zero-or-more repetition. The old accepting states
// remain accepting (the loop-back is reachable from them via epsilon);
// the new start is additionally marked accepting for the zero-repeat
// case.
func (n *NFA[A]) Kleene() {
	oldStart := n.start
	oldAccept := acceptSlice(n.accept)
	newStart := n.CreateState()
	n.AddTransition(newStart, Epsilon, oldStart)
	for _, s := range oldAccept {
		n.AddTransition(s, Epsilon, newStart)
	}
	n.start = newStart
	n.accept[newStart] = true
}

// Optional wraps n in a zero-or-one repetition. The old accepting states
// remain accepting; the new start is additionally accepting.
func (n *NFA[A]) Optional() {
	oldStart := n.start
	newStart := n.CreateState()
	n.AddTransition(newStart, Epsilon, oldStart)
	n.start = newStart
	n.accept[newStart] = true
}

// EliminateEpsilon absorbs every epsilon-reachable state's non-epsilon
// transitions and accepting-ness into each state directly, then strips
// all epsilon edges and prunes states no longer reachable from start.
// Processing runs in ascending state-index order and mutates in place,
// so a state's own borrowed edges are immediately available to any
// later (higher-index) state that epsilon-reaches it — this is what
// lets a single forward pass fully propagate multi-hop epsilon chains.
func (n *NFA[A]) EliminateEpsilon() {
	for node := 0; node < n.Size(); node++ {
		seen := map[int]bool{node: true}
		stack := []int{node}
		for len(stack) > 0 {
			via := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, to := range n.trans[via][Epsilon] {
				if !seen[to] {
					seen[to] = true
					stack = append(stack, to)
				}
			}
		}
		delete(seen, node)
		reachable := make([]int, 0, len(seen))
		for s := range seen {
			reachable = append(reachable, s)
		}
		sort.Ints(reachable)

		for _, via := range reachable {
			if n.accept[via] {
				n.accept[node] = true
			}
			for _, c := range sortedKeys(n.trans[via]) {
				if c == Epsilon {
					continue
				}
				for _, t := range n.trans[via][c] {
					n.AddTransition(node, c, t)
				}
			}
		}
		delete(n.trans[node], Epsilon)
	}
	n.pruneUnreachable()
}

// pruneUnreachable drops every state not reachable from start over any
// label, clearing its accepting flag and outgoing edges. Reachability is
// tracked in a bitset.BitSet rather than a []bool/map, following the
// state-set idiom other_examples/geange-automaton__operations.go uses
// for the same kind of fixed-universe visited-state bookkeeping.
func (n *NFA[A]) pruneUnreachable() {
	reachable := bitset.New(uint(n.Size()))
	stack := []int{n.start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable.Test(uint(node)) {
			continue
		}
		reachable.Set(uint(node))
		for _, tos := range n.trans[node] {
			stack = append(stack, tos...)
		}
	}
	for i := 0; i < n.Size(); i++ {
		if !reachable.Test(uint(i)) {
			delete(n.accept, i)
			n.trans[i] = map[uint64][]int{}
		}
	}
}

// pruneDeadTowardAccept drops every state that cannot reach any
// accepting state, by reverse-reachability from the accept set: its
// outgoing edges and every edge leading into it are removed.
func (n *NFA[A]) pruneDeadTowardAccept() {
	rev := make([][]int, n.Size())
	for from := 0; from < n.Size(); from++ {
		for _, tos := range n.trans[from] {
			for _, to := range tos {
				rev[to] = append(rev[to], from)
			}
		}
	}
	live := bitset.New(uint(n.Size()))
	stack := make([]int, 0, len(n.accept))
	for _, s := range acceptSlice(n.accept) {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if live.Test(uint(node)) {
			continue
		}
		live.Set(uint(node))
		stack = append(stack, rev[node]...)
	}
	for i := 0; i < n.Size(); i++ {
		if !live.Test(uint(i)) {
			n.trans[i] = map[uint64][]int{}
			continue
		}
		for c, tos := range n.trans[i] {
			var kept []int
			for _, t := range tos {
				if live.Test(uint(t)) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(n.trans[i], c)
			} else {
				n.trans[i][c] = kept
			}
		}
	}
}

// TextDump renders n in the pipeline's canonical graph-dump format:
// start state, blank line, each accepting state on its own line, blank
// line, then every transition as "<src> <dst> " with the (escaped)
// character and a newline appended — except an epsilon transition,
// which omits the character AND the newline, so consecutive epsilon
// entries (even across state boundaries) run together on one line until
// the next non-epsilon entry or the dump's own closing newline.
func (n *NFA[A]) TextDump() string {
	var b []byte
	b = appendInt(b, n.start)
	b = append(b, '\n', '\n')
	for _, s := range acceptSlice(n.accept) {
		b = appendInt(b, s)
		b = append(b, '\n')
	}
	b = append(b, '\n')
	for node := 0; node < n.Size(); node++ {
		for _, c := range sortedKeys(n.trans[node]) {
			for _, to := range n.trans[node][c] {
				b = appendInt(b, node)
				b = append(b, ' ')
				b = appendInt(b, to)
				b = append(b, ' ')
				if c != Epsilon {
					b = append(b, n.alpha.FormatChr(c)...)
					b = append(b, '\n')
				}
			}
		}
	}
	b = append(b, '\n')
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	end := len(b)
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
