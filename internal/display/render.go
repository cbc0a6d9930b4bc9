// Package display renders probability tables and decisions for human reading.
// It is presentation only; nothing here feeds back into the solver.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/maxkht/liarsdice/internal/solver"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	faceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	strongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)

// Renderer writes human-readable tables and decisions.
type Renderer struct {
	out     io.Writer
	styled  bool
	decimal int
}

// NewRenderer creates a renderer for the given writer. Styling is disabled
// automatically when the terminal has no color support.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		styled:  termenv.ColorProfile() != termenv.Ascii,
		decimal: 4,
	}
}

// NewPlainRenderer creates a renderer with styling forced off, for tests and
// non-terminal output.
func NewPlainRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, decimal: 4}
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Table writes the probability grid with face columns and count rows.
func (r *Renderer) Table(t *solver.Table) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", r.render(headerStyle, "y \\ x"))
	for face := 2; face <= t.Config.FaceCount; face++ {
		fmt.Fprintf(w, "\t%s", r.render(faceStyle, fmt.Sprintf("%d*", face)))
	}
	fmt.Fprintln(w)

	for count := 1; count <= t.Rows(); count++ {
		fmt.Fprintf(w, "%s", r.render(headerStyle, fmt.Sprintf("%2d", count)))
		for face := 2; face <= t.Config.FaceCount; face++ {
			p := t.At(face, count)
			style := cellStyle
			if p > t.CallProbability {
				style = strongStyle
			}
			fmt.Fprintf(w, "\t%s", r.render(style, fmt.Sprintf("%.*f", r.decimal, p)))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// Decisions writes the recommended action per policy, plus the challenge
// probability the policies were measured against.
func (r *Renderer) Decisions(t *solver.Table, decisions []solver.Decision) {
	fmt.Fprintf(r.out, "%s %s\n",
		r.render(headerStyle, "P(bluff) ="),
		r.render(cellStyle, fmt.Sprintf("%.*f", r.decimal, t.CallProbability)))
	for _, d := range decisions {
		fmt.Fprintf(r.out, "%s optimal action: %s (%s)\n",
			r.render(headerStyle, d.Policy.String()),
			r.render(actionStyle, d.String()),
			fmt.Sprintf("%.*f", r.decimal, d.Probability))
	}
}

// Comparison writes a predicted-vs-simulated summary line pair.
func (r *Renderer) Comparison(predicted, simulated float64) {
	diff := predicted - simulated
	if diff < 0 {
		diff = -diff
	}
	fmt.Fprintf(r.out, "predicted: %s\n", r.render(cellStyle, fmt.Sprintf("%v", predicted)))
	fmt.Fprintf(r.out, "simulated: %s\n", r.render(cellStyle, fmt.Sprintf("%v", simulated)))
	fmt.Fprintf(r.out, "difference: %s\n", r.render(actionStyle, fmt.Sprintf("%.2f%%", 100*diff)))
}

// Hand writes the scenario header: previous bid and the caller's hand.
func (r *Renderer) Hand(prevFace, prevCount int, hand fmt.Stringer) {
	fmt.Fprintf(r.out, "%s %s  %s %s\n",
		r.render(headerStyle, "previous:"),
		r.render(actionStyle, fmt.Sprintf("bid(%d, %d)", prevFace, prevCount)),
		r.render(headerStyle, "hand:"),
		r.render(faceStyle, strings.ReplaceAll(hand.String(), ",", " ")))
}
