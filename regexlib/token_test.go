package regexlib

import "testing"

func TestTokenizerBasic(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	it := newTokenIter(alpha, "a+b*?_()\\a")
	kinds := []tokenKind{}
	for it.cur.kind != tkEOL {
		kinds = append(kinds, it.cur.kind)
		it.advance()
	}
	want := []tokenKind{
		tkLetter, tkAlternate, tkLetter, tkKleeneStar, tkQuestionMark,
		tkEmpty, tkLParen, tkRParen, tkLetter,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, kinds[i], want[i])
		}
	}
}

func TestTokenizerEscapeOutOfAlphabet(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	it := newTokenIter(alpha, "\\c")
	if it.cur.kind != tkError {
		t.Fatalf("expected error token for out-of-alphabet escape, got %v", it.cur.kind)
	}
}

func TestTokenizerDanglingEscape(t *testing.T) {
	alpha := SimpleAlphabet{N: 2}
	it := newTokenIter(alpha, "a\\")
	it.advance()
	if it.cur.kind != tkError {
		t.Fatalf("expected error token for dangling escape, got %v", it.cur.kind)
	}
}
