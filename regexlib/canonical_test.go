package regexlib

import "testing"

// CanonicalAlphabet's defining difference from SimpleAlphabet is its
// empty-word token: '1' instead of '_', freeing every lowercase letter
// (including a hypothetical letter 'a'..'a'+N-1 that would otherwise
// collide with '_' reservation) to stay a plain, unescaped literal.

func TestCanonicalAlphabetEmptyWordToken(t *testing.T) {
	alpha := CanonicalAlphabet{N: 3}
	re, err := Parse(alpha, "1")
	if err != nil {
		t.Fatalf("Parse(%q): %v", "1", err)
	}
	if got, want := re.String(), "1"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCanonicalAlphabetUnderscoreIsNotReserved(t *testing.T) {
	alpha := CanonicalAlphabet{N: 3}
	if _, err := Parse(alpha, "_"); err == nil {
		t.Fatalf(`Parse("_") on CanonicalAlphabet should fail: '_' is an ordinary out-of-alphabet byte here, not the empty word`)
	}
}

func TestCanonicalAlphabetPrinterRoundTrip(t *testing.T) {
	alpha := CanonicalAlphabet{N: 3}
	pattern := "a+1+(b?aaac)*"
	re, err := Parse(alpha, pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	if got := re.String(); got != pattern {
		t.Fatalf("round-trip print: got %q want %q", got, pattern)
	}
}

func TestCanonicalAlphabetMaxMatch(t *testing.T) {
	alpha := CanonicalAlphabet{N: 3}
	cases := []struct {
		pattern, input string
		want           int
	}{
		{"a*b", "aaab", 4},
		{"a*b", "aaa", 0},
		{"(ab)*c", "ababc", 5},
		{"1+a", "a", 1},
		{"1+a", "aa", 1},
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
