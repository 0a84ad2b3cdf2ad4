package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printStats(w io.Writer, input string, s buildStats) {
	fmt.Fprintln(w, styleTitle.Render(input))
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render("words"), styleNumber.Render(fmt.Sprint(s.Words)))
	fmt.Fprintf(w, "  %s %s %s %s\n", styleDim.Render("nodes"),
		styleNumber.Render(fmt.Sprint(s.NodesBefore)), iconArrow, styleNumber.Render(fmt.Sprint(s.NodesAfter)))
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render("edges"), styleNumber.Render(fmt.Sprint(s.EdgesAfter)))
	if s.NodesBefore > 0 {
		saved := 100 - s.NodesAfter*100/s.NodesBefore
		fmt.Fprintf(w, "  %s %s\n", styleDim.Render("saved"), styleSuccess.Render(fmt.Sprintf("%d%%", saved)))
	}
}

func printCheck(w io.Writer, word string, ok bool, index int) {
	if ok {
		fmt.Fprintf(w, "%s %s %s\n", styleSuccess.Render(iconSuccess), word, styleDim.Render(fmt.Sprintf("#%d", index)))
		return
	}
	fmt.Fprintf(w, "%s %s\n", styleError.Render(iconError), word)
}
