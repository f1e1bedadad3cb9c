// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Faint(true).Width(22)
)

// Summary renders an end-of-run key/value block. Values render verbatim;
// empty-valued rows are skipped.
func Summary(w io.Writer, title string, rows [][2]string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(row[0]), row[1])
	}
}
