// Command repl is an interactive console over the regex pipeline: it
// compiles a pattern into its minimal DFA, then answers match and
// inspection commands against it until told to quit.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"rgx/regexlib"
)

// Command is the REPL's grammar: exactly one of its alternatives is
// populated per parsed line, participle-struct-tag style.
type Command struct {
	Compile *compileCmd `parser:"@@"`
	Match   *matchCmd   `parser:"| @@"`
	Show    *showCmd    `parser:"| @@"`
	Quit    *quitCmd    `parser:"| @@"`
}

type compileCmd struct {
	Keyword  string `parser:"'compile'"`
	Alphabet string `parser:"('alphabet' @Ident)?"`
	N        *int   `parser:"('n' @Int)?"`
	Pattern  string `parser:"@String"`
}

type matchCmd struct {
	Keyword string `parser:"'match'"`
	Input   string `parser:"@String"`
}

type showCmd struct {
	Keyword string `parser:"@('dfa'|'nfa'|'rawdfa'|'regex')"`
}

type quitCmd struct {
	Keyword string `parser:"@('quit'|'exit')"`
}

var grammar = participle.MustBuild[Command](participle.Unquote("String"))

// session is the live, already-compiled pipeline state for whichever
// alphabet the last "compile" command chose. It exists so the REPL loop
// can hold one uniform value across compile commands for different
// concrete Alphabet type parameters.
type session interface {
	match(input string) int
	showDFA(w io.Writer, raw bool)
	showNFA(w io.Writer)
	regexText() string
}

type sessionImpl[A regexlib.Alphabet] struct {
	alpha A
	n     regexlib.NFA[A]
	raw   regexlib.DFA[A]
	min   regexlib.DFA[A]
}

func newSession[A regexlib.Alphabet](alpha A, pattern string) (session, error) {
	re, err := regexlib.Parse(alpha, pattern)
	if err != nil {
		return nil, err
	}
	n := regexlib.BuildNFA(re)
	n.EliminateEpsilon()
	raw := regexlib.DFAFromNFA(&n)
	min := regexlib.Minimize(&raw)
	return &sessionImpl[A]{alpha: alpha, n: n, raw: raw, min: min}, nil
}

func (s *sessionImpl[A]) match(input string) int {
	return regexlib.Match(&s.min, input)
}

func (s *sessionImpl[A]) showDFA(w io.Writer, raw bool) {
	if raw {
		regexlib.ExportDFADOT(w, &s.raw)
		return
	}
	regexlib.ExportDFADOT(w, &s.min)
}

func (s *sessionImpl[A]) showNFA(w io.Writer) {
	regexlib.ExportNFADOT(w, &s.n)
}

func (s *sessionImpl[A]) regexText() string {
	re := regexlib.RegexFromDFA(&s.min)
	return re.String()
}

func compile(c *compileCmd) (session, error) {
	n := uint64(2)
	if c.N != nil {
		n = uint64(*c.N)
	}
	switch c.Alphabet {
	case "", "simple":
		return newSession(regexlib.SimpleAlphabet{N: n}, c.Pattern)
	case "canonical":
		return newSession(regexlib.CanonicalAlphabet{N: n}, c.Pattern)
	case "char":
		return newSession(regexlib.CharAlphabet{}, c.Pattern)
	default:
		return nil, fmt.Errorf("unknown alphabet %q", c.Alphabet)
	}
}

func main() {
	fmt.Println(`rgx console. Commands:`)
	fmt.Println(`  compile [alphabet <simple|canonical|char>] [n <N>] "<pattern>"`)
	fmt.Println(`  match "<input>"`)
	fmt.Println(`  dfa | rawdfa | nfa | regex`)
	fmt.Println(`  quit`)

	var cur session
	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("rgx> ")
		line, err := rdr.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintln(os.Stderr, "read error:", err)
			return
		}
		if len(bytes.TrimSpace([]byte(line))) == 0 {
			continue
		}

		cmd, err := grammar.ParseString("repl", line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			continue
		}

		if cmd.Quit != nil {
			return
		}
		cur = dispatch(cmd, cur)
	}
}

// dispatch runs one parsed command against the current session and
// returns the (possibly replaced) session. It recovers
// *regexlib.AssertionViolation the same way cmd/regexviz's package
// boundary does (SPEC_FULL.md's AMBIENT STACK): an internal invariant
// break is reported like any other error rather than crashing the whole
// interactive session, so the REPL can keep running after it. Any other
// panic value is not ours to interpret and is re-raised.
func dispatch(cmd *Command, cur session) (out session) {
	out = cur
	defer func() {
		if r := recover(); r != nil {
			if av, ok := r.(*regexlib.AssertionViolation); ok {
				fmt.Fprintln(os.Stderr, "internal error:", av.Error())
				return
			}
			panic(r)
		}
	}()

	switch {
	case cmd.Compile != nil:
		s, err := compile(cmd.Compile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return cur
		}
		fmt.Println("compiled.")
		return s

	case cmd.Match != nil:
		if cur == nil {
			fmt.Fprintln(os.Stderr, "no pattern compiled yet")
			return cur
		}
		n := cur.match(cmd.Match.Input)
		fmt.Printf("longest accepted prefix: %d of %d\n", n, len([]byte(cmd.Match.Input)))

	case cmd.Show != nil:
		if cur == nil {
			fmt.Fprintln(os.Stderr, "no pattern compiled yet")
			return cur
		}
		switch cmd.Show.Keyword {
		case "dfa":
			cur.showDFA(os.Stdout, false)
		case "rawdfa":
			cur.showDFA(os.Stdout, true)
		case "nfa":
			cur.showNFA(os.Stdout)
		case "regex":
			fmt.Println(cur.regexText())
		}
	}
	return cur
}
