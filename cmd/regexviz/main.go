// Command regexviz compiles a pattern over a chosen parametric alphabet
// and exports the pipeline's intermediate automata as Graphviz DOT, a
// rendered PNG, or a plain transition table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/olekukonko/tablewriter"

	"rgx/regexlib"
)

func main() {
	defer recoverAssertionViolation()

	pattern := flag.String("re", "", "pattern (required)")
	alphaKind := flag.String("alphabet", "simple", "alphabet: simple, canonical, or char")
	n := flag.Uint64("n", 2, "letter count for the simple/canonical alphabets")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	rawFlag := flag.Bool("rawdfa", false, "export the raw (non-minimized) DFA")
	tableFlag := flag.Bool("table", false, "print the DFA transition table instead of exporting DOT")
	outFile := flag.String("o", "graph.dot", "output file for the DOT text or the -png image")
	pngFlag := flag.Bool("png", false, "render PNG via `dot -Tpng` instead of writing DOT text")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-alphabet simple|canonical|char] [-n N] [-nfa|-rawdfa|-table] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var err error
	switch *alphaKind {
	case "simple":
		err = run(regexlib.SimpleAlphabet{N: *n}, *pattern, *nfaFlag, *rawFlag, *tableFlag, *outFile, *pngFlag)
	case "canonical":
		err = run(regexlib.CanonicalAlphabet{N: *n}, *pattern, *nfaFlag, *rawFlag, *tableFlag, *outFile, *pngFlag)
	case "char":
		err = run(regexlib.CharAlphabet{}, *pattern, *nfaFlag, *rawFlag, *tableFlag, *outFile, *pngFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown -alphabet %q\n", *alphaKind)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run[A regexlib.Alphabet](alpha A, pattern string, nfaFlag, rawFlag, tableFlag bool, outFile string, pngFlag bool) error {
	re, err := regexlib.Parse(alpha, pattern)
	if err != nil {
		return err
	}
	n := regexlib.BuildNFA(re)
	n.EliminateEpsilon()
	raw := regexlib.DFAFromNFA(&n)
	minimal := regexlib.Minimize(&raw)

	if tableFlag {
		printTable(&minimal)
		return nil
	}

	var buf bytes.Buffer
	switch {
	case nfaFlag:
		regexlib.ExportNFADOT(&buf, &n)
	case rawFlag:
		regexlib.ExportDFADOT(&buf, &raw)
	default:
		regexlib.ExportDFADOT(&buf, &minimal)
	}

	if pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		fmt.Printf("PNG written to %s\n", outFile)
		return nil
	}

	var w io.Writer
	if outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", outFile, err)
		}
		defer f.Close()
		w = f
	}
	_, err = io.Copy(w, &buf)
	if err == nil && outFile != "-" {
		fmt.Printf("DOT written to %s\n", outFile)
	}
	return err
}

// recoverAssertionViolation is the package boundary SPEC_FULL.md's
// AMBIENT STACK section promises: regexlib panics with
// *regexlib.AssertionViolation on a broken internal invariant rather
// than returning it as an error, so the CLI entry point recovers it and
// reports it like any other fatal error instead of dumping a raw Go
// panic trace. Any other panic value is not ours to interpret and is
// re-raised.
func recoverAssertionViolation() {
	r := recover()
	if r == nil {
		return
	}
	if av, ok := r.(*regexlib.AssertionViolation); ok {
		fmt.Fprintln(os.Stderr, "internal error:", av.Error())
		os.Exit(1)
	}
	panic(r)
}

// printTable renders d's transition table with tablewriter: one row per
// state (the start state prefixed with '*'), a second "accept" column
// holding "yes"/"-", then one column per letter.
func printTable[A regexlib.Alphabet](d *regexlib.DFA[A]) {
	alpha := d.Alphabet()
	table := tablewriter.NewWriter(os.Stdout)

	header := []string{"state", "accept"}
	for c := uint64(1); c < alpha.Size(); c++ {
		header = append(header, alpha.FormatChr(c))
	}
	table.SetHeader(header)

	for s := 0; s < d.Size(); s++ {
		row := []string{fmt.Sprintf("%d", s), "-"}
		if d.IsAccepting(s) {
			row[1] = "yes"
		}
		if s == d.Start() {
			row[0] = fmt.Sprintf("*%d", s)
		}
		for c := uint64(1); c < alpha.Size(); c++ {
			to := d.Transition(s, c)
			if to == regexlib.ErrorState {
				row = append(row, "-")
			} else {
				row = append(row, fmt.Sprintf("%d", to))
			}
		}
		table.Append(row)
	}
	table.Render()
}
