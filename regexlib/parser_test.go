package regexlib

import "testing"

func TestParseValid(t *testing.T) {
	alpha := SimpleAlphabet{N: 3}
	cases := []string{
		"a", "_", "a*", "a?", "a+b", "ab", "(a+b)*c", "a+_", "(a?b)*",
	}
	for _, c := range cases {
		if _, err := Parse(alpha, c); err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c, err)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	cases := []string{
		"ab++", // '+' is alternation, and neither '+' is followed by an operand
		"a\\",  // dangling escape at end of input
		"a+(",  // unterminated group
		"()",   // empty group body
		"*a",   // leading quantifier with no operand
	}
	for _, c := range cases {
		if _, err := Parse(alpha, c); err == nil {
			t.Errorf("Parse(%q): expected an error, got none", c)
		}
	}
}

func TestParseRejectsOutOfAlphabetLetter(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	if _, err := Parse(alpha, "c"); err == nil {
		t.Fatalf("Parse(%q): expected an error for a letter outside the alphabet", "c")
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	if _, err := Parse(alpha, "a)"); err == nil {
		t.Fatalf("expected a trailing-input error")
	}
}
