package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// RenderDiff renders a line diff from a to b, with - and + prefixes for
// removed and added lines.
func RenderDiff(a, b string, colors bool) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	skip := color.New(color.FgCyan)
	if colors {
		del.EnableColor()
		ins.EnableColor()
		skip.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
		skip.DisableColor()
	}

	out := strings.Builder{}
	for i, d := range diffs {
		ls := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, l := range ls {
				out.WriteString(del.Sprint("-"+l) + "\n")
			}
		case diffpatch.DiffInsert:
			for _, l := range ls {
				out.WriteString(ins.Sprint("+"+l) + "\n")
			}
		case diffpatch.DiffEqual:
			head, tail := diffContext, diffContext
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(ls) > head+tail {
				for _, l := range ls[:head] {
					out.WriteString(" " + l + "\n")
				}
				out.WriteString(skip.Sprintf("@@ %d unchanged lines @@", len(ls)-head-tail) + "\n")
				ls = ls[len(ls)-tail:]
			}
			for _, l := range ls {
				out.WriteString(" " + l + "\n")
			}
		}
	}
	return out.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// colorize reports whether w is a terminal.
func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
