package regexlib

import "strconv"

// Alphabet is the pluggable symbol set behind every other component of
// the pipeline (C1). Ordinal 0 is reserved for epsilon / the empty word
// in every variant; ordinals 1..Size()-1 are the alphabet's letters.
type Alphabet interface {
	// Size returns the number of distinct ordinals, including the
	// reserved ordinal 0.
	Size() uint64
	// Ord maps a source byte to its ordinal. ok is false if c does not
	// name a letter of this alphabet.
	Ord(c byte) (uint64, bool)
	// FormatChr renders ordinal o (o >= 1) the way it must appear in
	// printed regex text and graph dumps, escaping it first if needed.
	FormatChr(o uint64) string
	IsSpace(c byte) bool
	EscapeChar() byte
	Star() byte
	QuestionMark() byte
	Plus() byte
	LBracket() byte
	RBracket() byte
	EmptyWord() byte
}

func isMetaChar(a Alphabet, c byte) bool {
	switch c {
	case a.EscapeChar(), a.Star(), a.QuestionMark(), a.Plus(), a.LBracket(), a.RBracket(), a.EmptyWord():
		return true
	}
	return false
}

func formatLetter(a Alphabet, c byte) string {
	if isMetaChar(a, c) || a.IsSpace(c) {
		return string(a.EscapeChar()) + string(c)
	}
	return string(c)
}

// SimpleAlphabet is the letters 'a'..'a'+N-1 (N <= 26), with '_' as the
// empty-word token and '+' as alternation, matching the textual grammar
// used throughout spec.md's worked examples.
type SimpleAlphabet struct {
	N uint64
}

func (a SimpleAlphabet) Size() uint64 { return a.N + 1 }

func (a SimpleAlphabet) Ord(c byte) (uint64, bool) {
	if c < 'a' || uint64(c-'a') >= a.N {
		return 0, false
	}
	return uint64(c-'a') + 1, true
}

func (a SimpleAlphabet) chr(o uint64) byte { return 'a' + byte(o-1) }

func (a SimpleAlphabet) FormatChr(o uint64) string { return formatLetter(a, a.chr(o)) }

func (a SimpleAlphabet) IsSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func (a SimpleAlphabet) EscapeChar() byte    { return '\\' }
func (a SimpleAlphabet) Star() byte          { return '*' }
func (a SimpleAlphabet) QuestionMark() byte  { return '?' }
func (a SimpleAlphabet) Plus() byte          { return '+' }
func (a SimpleAlphabet) LBracket() byte      { return '(' }
func (a SimpleAlphabet) RBracket() byte      { return ')' }
func (a SimpleAlphabet) EmptyWord() byte     { return '_' }

// CharAlphabet is the full byte range 1..255, any of which may appear
// literally in text unless it collides with a meta character or is a
// whitespace byte (which the tokenizer skips), in which case it must be
// escaped.
type CharAlphabet struct{}

func (CharAlphabet) Size() uint64 { return 256 }

func (CharAlphabet) Ord(c byte) (uint64, bool) {
	if c == 0 {
		return 0, false
	}
	return uint64(c), true
}

func (a CharAlphabet) FormatChr(o uint64) string { return formatLetter(a, byte(o)) }

func (CharAlphabet) IsSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func (CharAlphabet) EscapeChar() byte    { return '\\' }
func (CharAlphabet) Star() byte          { return '*' }
func (CharAlphabet) QuestionMark() byte  { return '?' }
func (CharAlphabet) Plus() byte          { return '+' }
func (CharAlphabet) LBracket() byte      { return '(' }
func (CharAlphabet) RBracket() byte      { return ')' }
func (CharAlphabet) EmptyWord() byte     { return '_' }

// CanonicalAlphabet is like SimpleAlphabet but reserves no underscore or
// dollar sign for the empty word, using the digit '1' instead — so every
// lowercase letter in the alphabet's range stays available as a literal
// without escaping.
type CanonicalAlphabet struct {
	N uint64
}

func (a CanonicalAlphabet) Size() uint64 { return a.N + 1 }

func (a CanonicalAlphabet) Ord(c byte) (uint64, bool) {
	if c < 'a' || uint64(c-'a') >= a.N {
		return 0, false
	}
	return uint64(c-'a') + 1, true
}

func (a CanonicalAlphabet) chr(o uint64) byte { return 'a' + byte(o-1) }

func (a CanonicalAlphabet) FormatChr(o uint64) string { return formatLetter(a, a.chr(o)) }

func (a CanonicalAlphabet) IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
func (a CanonicalAlphabet) EscapeChar() byte   { return '\\' }
func (a CanonicalAlphabet) Star() byte         { return '*' }
func (a CanonicalAlphabet) QuestionMark() byte { return '?' }
func (a CanonicalAlphabet) Plus() byte         { return '+' }
func (a CanonicalAlphabet) LBracket() byte     { return '(' }
func (a CanonicalAlphabet) RBracket() byte     { return ')' }
func (a CanonicalAlphabet) EmptyWord() byte    { return '1' }

// AnyAlphabet is the opaque meta-alphabet used internally by state
// elimination (C6): its ordinals index into a per-run table of regex
// fragments rather than naming characters. It supports no parsing and no
// escaping; its methods exist only so the elimination graph can reuse
// the generic NFA machinery built for textual alphabets.
type AnyAlphabet struct{}

func (AnyAlphabet) Size() uint64                { return 0 }
func (AnyAlphabet) Ord(byte) (uint64, bool)     { return 0, false }
func (AnyAlphabet) FormatChr(o uint64) string   { return "#" + strconv.FormatUint(o, 10) }
func (AnyAlphabet) IsSpace(byte) bool           { return false }
func (AnyAlphabet) EscapeChar() byte            { return 0 }
func (AnyAlphabet) Star() byte                  { return 0 }
func (AnyAlphabet) QuestionMark() byte          { return 0 }
func (AnyAlphabet) Plus() byte                  { return 0 }
func (AnyAlphabet) LBracket() byte              { return 0 }
func (AnyAlphabet) RBracket() byte              { return 0 }
func (AnyAlphabet) EmptyWord() byte             { return 0 }
