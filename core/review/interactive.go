package review

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const rulerWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Interactive is an Oracle that shows both renderings of a test to a human
// operator and reads one answer per name. An answer of "y" (case-insensitive)
// marks the pair equivalent; anything else skips it. End of input aborts the
// remaining review.
type Interactive struct {
	in     *bufio.Scanner
	out    io.Writer
	labelA string
	labelB string
}

// NewInteractive creates an Interactive oracle reading answers from in and
// writing prompts to out. labelA and labelB name the two origins, typically
// the input file paths.
func NewInteractive(in io.Reader, out io.Writer, labelA, labelB string) *Interactive {
	return &Interactive{
		in:     bufio.NewScanner(in),
		out:    out,
		labelA: labelA,
		labelB: labelB,
	}
}

// Decide prompts for one equivalence verdict. It blocks until the operator
// answers or the input stream ends.
func (o *Interactive) Decide(name, fromA, fromB string) (bool, error) {
	ruler := strings.Repeat("=", rulerWidth)

	fmt.Fprintln(o.out, ruler)
	fmt.Fprintln(o.out, titleStyle.Render("TEST: "+name))
	fmt.Fprintln(o.out, ruler)

	fmt.Fprintf(o.out, "\n%s\n%s\n", originStyle.Render("--- from "+o.labelA+" ---"), fromA)
	fmt.Fprintf(o.out, "\n%s\n%s\n", originStyle.Render("--- from "+o.labelB+" ---"), fromB)

	fmt.Fprintln(o.out, "\n"+strings.Repeat("-", rulerWidth))
	fmt.Fprint(o.out, "Are these equivalent? (y/n): ")

	if !o.in.Scan() {
		if err := o.in.Err(); err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		return false, ErrAborted
	}

	if strings.EqualFold(strings.TrimSpace(o.in.Text()), "y") {
		fmt.Fprintln(o.out, markStyle.Render("marked "+name+" as equivalent"))
		fmt.Fprintln(o.out)
		return true, nil
	}

	fmt.Fprintln(o.out, skipStyle.Render("skipped "+name))
	fmt.Fprintln(o.out)
	return false, nil
}
