package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-sprintreport/internal/docx"
)

// ErrReadReport indicates a DOCX file could not be opened or parsed.
var ErrReadReport = errors.New("failed to read report")

// runInspect prints the outline of a generated report: metadata,
// headings, tables and page breaks.
func runInspect(args []string, env *Environment) error {
	fs := flag.NewFlagSet(cmdInspect, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var all bool
	fs.BoolVarP(&all, "all", "a", false, "list every body element in order")
	fs.Usage = func() { printInspectUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError(err)
	}
	if fs.NArg() != 1 {
		return usageError(fmt.Errorf("inspect takes one .docx file, got %d argument(s)", fs.NArg()))
	}

	path := fs.Arg(0)
	outline, err := docx.InspectFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadReport, path, err)
	}

	printOutline(env.Stdout, outline, all)
	return nil
}

// printOutline writes a human-readable outline.
func printOutline(w io.Writer, o *docx.Outline, all bool) {
	fmt.Fprintf(w, "Title:   %s\n", o.Title)
	fmt.Fprintf(w, "Subject: %s\n", o.Subject)
	fmt.Fprintf(w, "Creator: %s\n", o.Creator)
	fmt.Fprintf(w, "Footer:  %s\n", o.Footer)
	fmt.Fprintln(w)

	if all {
		for _, e := range o.Elements {
			fmt.Fprintln(w, describeElement(e))
		}
		return
	}

	headings := o.Headings()
	fmt.Fprintf(w, "Headings (%d):\n", len(headings))
	for _, h := range headings {
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
	}

	tables := o.Tables()
	fmt.Fprintf(w, "Tables (%d):\n", len(tables))
	for _, t := range tables {
		fmt.Fprintf(w, "  %dx%d  %s\n", t.Rows, t.Cols, strings.Join(t.Header, " | "))
	}

	fmt.Fprintf(w, "Page breaks: %d\n", o.PageBreaks())
}

func describeElement(e docx.Element) string {
	switch e.Kind {
	case docx.KindHeading:
		return fmt.Sprintf("H%d  %s", e.Level, e.Text)
	case docx.KindTable:
		return fmt.Sprintf("TBL %dx%d  %s", e.Rows, e.Cols, strings.Join(e.Header, " | "))
	case docx.KindPageBreak:
		return "--- page break ---"
	case docx.KindParagraph:
		if e.Bullet {
			return "  • " + e.Text
		}
		return "  " + e.Text
	}
	return string(e.Kind)
}
