package regexlib

import "testing"

func acceptsFull[A Alphabet](d *DFA[A], s string) bool {
	state := d.Start()
	for i := 0; i < len(s); i++ {
		ord, ok := d.alpha.Ord(s[i])
		if !ok {
			return false
		}
		to := d.Transition(state, ord)
		if to == ErrorState {
			return false
		}
		state = to
	}
	return d.IsAccepting(state)
}

// allStrings enumerates every string of length 0..maxLen over the
// letters 'a'..'a'+n-1.
func allStrings(n, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, s := range frontier {
			for i := 0; i < n; i++ {
				next = append(next, s+string(rune('a'+i)))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestMaxMatch(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	cases := []struct {
		pattern, input string
		want            int
	}{
		{"a*b", "aaab", 4},
		{"a*b", "b", 1},
		{"a*b", "aaa", 0},
		{"a*b", "aaabaaa", 4},
		{"(ab)*", "ababab", 6},
		{"(ab)*", "ababx", 4},
		{"a+b", "b", 1},
		{"a+b", "a", 1},
		{"a+b", "c", 0},
	}
	for _, c := range cases {
		got, err := MaxMatch(alpha, c.pattern, c.input)
		if err != nil {
			t.Errorf("MaxMatch(%q, %q): unexpected error: %v", c.pattern, c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("MaxMatch(%q, %q) = %d, want %d", c.pattern, c.input, got, c.want)
		}
	}
}

func TestMinimizeShrinksEquivalentStates(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	d, err := CompileDFA(alpha, "a+b")
	if err != nil {
		t.Fatalf("CompileDFA: %v", err)
	}
	if !acceptsFull(&d, "a") || !acceptsFull(&d, "b") {
		t.Fatalf("minimized DFA rejects a member of its own language")
	}
	if acceptsFull(&d, "ab") || acceptsFull(&d, "") {
		t.Fatalf("minimized DFA accepts a string outside its language")
	}
	re, err := Parse(alpha, "a+b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n := BuildNFA(re)
	n.EliminateEpsilon()
	raw := DFAFromNFA(&n)
	if d.Size() >= raw.Size() {
		t.Fatalf("minimized DFA has %d states, raw DFA has %d", d.Size(), raw.Size())
	}
}

func TestRegexFromDFARoundTripLanguage(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	patterns := []string{"a*b", "(ab)*", "a+b", "(a+b)*aa", "a?b?"}
	for _, p := range patterns {
		d1, err := CompileDFA(alpha, p)
		if err != nil {
			t.Fatalf("CompileDFA(%q): %v", p, err)
		}
		re := RegexFromDFA(&d1)
		printed := re.String()
		d2, err := CompileDFA(alpha, printed)
		if err != nil {
			t.Fatalf("pattern %q printed as %q, which fails to reparse: %v", p, printed, err)
		}
		for _, s := range allStrings(2, 6) {
			if acceptsFull(&d1, s) != acceptsFull(&d2, s) {
				t.Fatalf("pattern %q round-tripped through %q disagrees on %q", p, printed, s)
			}
		}
	}
}

func TestSetOps(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	da, err := CompileDFA(alpha, "a*")
	if err != nil {
		t.Fatalf("CompileDFA: %v", err)
	}
	db, err := CompileDFA(alpha, "a*b")
	if err != nil {
		t.Fatalf("CompileDFA: %v", err)
	}

	comp := Complement(&da)
	if acceptsFull(&comp, "aaa") {
		t.Fatalf("Complement(a*) must reject \"aaa\"")
	}
	if !acceptsFull(&comp, "b") {
		t.Fatalf("Complement(a*) must accept \"b\"")
	}

	inter := Intersect(&da, &db)
	for _, s := range allStrings(2, 5) {
		want := acceptsFull(&da, s) && acceptsFull(&db, s)
		if acceptsFull(&inter, s) != want {
			t.Fatalf("Intersect disagrees on %q", s)
		}
	}

	union := Union(&da, &db)
	for _, s := range allStrings(2, 5) {
		want := acceptsFull(&da, s) || acceptsFull(&db, s)
		if acceptsFull(&union, s) != want {
			t.Fatalf("Union disagrees on %q", s)
		}
	}
}

func TestDFAReverseLanguage(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	d, err := CompileDFA(alpha, "ab*a")
	if err != nil {
		t.Fatalf("CompileDFA: %v", err)
	}
	rev := Reverse(&d)
	for _, s := range allStrings(2, 6) {
		reversed := reverseString(s)
		if acceptsFull(&d, s) != acceptsFull(&rev, reversed) {
			t.Fatalf("Reverse disagrees on %q (reversed %q)", s, reversed)
		}
	}
}

func TestRegexHandleReverse(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	re, err := Parse(alpha, "ab")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	re.Reverse()
	if got, want := re.String(), "ba"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
