package regexlib

import "testing"

func TestRegexHandleConcatIdentity(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	var acc Regex[SimpleAlphabet]
	a := newLetterRegex(alpha, 1)
	acc.Concat(a)
	if acc.String() != "a" {
		t.Fatalf("Concat onto null handle: got %q, want %q", acc.String(), "a")
	}
	empty := NewRegex(alpha)
	acc.Concat(empty)
	if acc.String() != "a" {
		t.Fatalf("Concat with empty word should be an identity: got %q", acc.String())
	}
}

func TestRegexHandleConcatFlattensIntoExistingNode(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	var acc Regex[SimpleAlphabet]
	acc.Concat(newLetterRegex(alpha, 1))
	acc.Concat(newLetterRegex(alpha, 2))
	acc.Concat(newLetterRegex(alpha, 1))
	if got, want := acc.String(), "aba"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRegexHandleAlternateNoEmptyShortcut(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	var acc Regex[SimpleAlphabet]
	acc.Alternate(newLetterRegex(alpha, 1))
	acc.Alternate(NewRegex(alpha))
	if got, want := acc.String(), "a+_"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRegexHandleCloneIsCopyOnWrite(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	orig := newLetterRegex(alpha, 1)
	clone := orig.Clone()
	clone.Kleene()
	if orig.String() != "a" {
		t.Fatalf("mutating a clone must not affect the original: got %q", orig.String())
	}
	if clone.String() != "a*" {
		t.Fatalf("got %q want %q", clone.String(), "a*")
	}
}

func TestRegexHandlePrinterBracketing(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	pattern := "a+_((b?aaaa)?+a+_)*+((a+b)(a+b))?"
	re, err := Parse(alpha, pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	if got := re.String(); got != pattern {
		t.Fatalf("round-trip print: got %q want %q", got, pattern)
	}
}
