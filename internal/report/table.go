// Package report renders aligned text tables for command output.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"userpipe/internal/models"
)

// Table renders a header row and data rows as an aligned text table.
// Columns are padded to the widest cell by display width, so wide
// characters line up correctly.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))

	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow(&b, header, widths)
	writeSeparator(&b, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}

	return b.String()
}

// Preview renders the first few cleaned records as a table.
func Preview(users []models.CleanUser, limit int) string {
	if limit > len(users) {
		limit = len(users)
	}

	rows := make([][]string, 0, limit)
	for _, user := range users[:limit] {
		rows = append(rows, user.Row())
	}

	return Table(models.Header, rows)
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		b.WriteString("| ")
		b.WriteString(pad(cell, width))
		b.WriteString(" ")
	}

	b.WriteString("|\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for _, width := range widths {
		b.WriteString("| ")
		b.WriteString(strings.Repeat("-", width))
		b.WriteString(" ")
	}

	b.WriteString("|\n")
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}
