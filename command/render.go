// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvmat/matrix"
)

var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorSuccess = lipgloss.Color("#20B9B4")
	colorError   = lipgloss.Color("#E74C3C")
)

// styles are bound to the output writer's renderer, so a non-terminal writer
// receives plain text.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
	}
}

// printOK writes one status line.
func (d *Dispatcher) printOK(format string, args ...any) {
	fmt.Fprintln(d.out, d.style.success.Render(fmt.Sprintf(format, args...)))
}

// printFail writes one diagnostic line.
func (d *Dispatcher) printFail(format string, args ...any) {
	fmt.Fprintln(d.out, d.style.failure.Render(fmt.Sprintf(format, args...)))
}

// printMatrix writes m in the layout of matrix.Display with a styled header.
func (d *Dispatcher) printMatrix(m *matrix.Matrix) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.style.title.Render(matrix.Header(m)))
	fmt.Fprintln(d.out, d.style.muted.Render(matrix.DimLine(m)))
	for i := 0; i < m.Rows(); i++ {
		fmt.Fprintln(d.out, m.RowString(i))
	}
	fmt.Fprintln(d.out)
}
