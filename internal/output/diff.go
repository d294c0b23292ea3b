package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// DiffLine is one line of a line-oriented diff.
type DiffLine struct {
	// Op is '+', '-' or ' '.
	Op   byte
	Text string
}

// LineDiff computes a line-oriented diff between two texts.
func LineDiff(oldText, newText string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// RenderDiff renders a colored diff between the existing and proposed content of a file.
// Long unchanged runs are collapsed to diffContext lines on each side.
func RenderDiff(path, oldText, newText string) string {
	lines := LineDiff(oldText, newText)

	changed := false
	for _, l := range lines {
		if l.Op != ' ' {
			changed = true
			break
		}
	}
	if !changed {
		return "No changes detected."
	}

	added := lipgloss.NewStyle().Foreground(ColorGreen)
	removed := lipgloss.NewStyle().Foreground(ColorRed)

	var sb strings.Builder
	sb.WriteString(StyleDim.Render("--- " + path + " (existing)"))
	sb.WriteString("\n")
	sb.WriteString(StyleDim.Render("+++ " + path + " (generated)"))
	sb.WriteString("\n")

	skipping := false
	for i, l := range lines {
		if l.Op == ' ' && !nearChange(lines, i) {
			if !skipping {
				sb.WriteString(StyleDim.Render("  ..."))
				sb.WriteString("\n")
				skipping = true
			}
			continue
		}
		skipping = false

		switch l.Op {
		case '+':
			sb.WriteString(added.Render("+" + l.Text))
		case '-':
			sb.WriteString(removed.Render("-" + l.Text))
		default:
			sb.WriteString(" " + l.Text)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// nearChange reports whether line i is within diffContext lines of a change.
func nearChange(lines []DiffLine, i int) bool {
	lo := max(0, i-diffContext)
	hi := min(len(lines)-1, i+diffContext)
	for j := lo; j <= hi; j++ {
		if lines[j].Op != ' ' {
			return true
		}
	}
	return false
}
