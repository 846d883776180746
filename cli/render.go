package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/kgalang/ledgerbook/output"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// table accumulates rows and renders them with runewidth-aware alignment,
// shrinking the widest column when the terminal is too narrow.
type table struct {
	headers []string
	aligns  []alignment
	rows    [][]string
}

func newTable(headers []string, aligns ...alignment) *table {
	if len(aligns) < len(headers) {
		padded := make([]alignment, len(headers))
		copy(padded, aligns)
		aligns = padded
	}
	return &table{headers: headers, aligns: aligns}
}

func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) writeTo(w io.Writer, styles *output.Styles) {
	const gap = 2

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	// Shrink the widest column until the table fits the terminal.
	total := gap * (len(widths) - 1)
	for _, cw := range widths {
		total += cw
	}
	if max := terminalWidth(); total > max {
		widest := 0
		for i, cw := range widths {
			if cw > widths[widest] {
				widest = i
			}
		}
		shrunk := widths[widest] - (total - max)
		if shrunk < runewidth.StringWidth(t.headers[widest]) {
			shrunk = runewidth.StringWidth(t.headers[widest])
		}
		widths[widest] = shrunk
	}

	headerCells := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerCells[i] = styles.Header(pad(h, widths[i], t.aligns[i]))
	}
	_, _ = fmt.Fprintln(w, strings.Join(headerCells, strings.Repeat(" ", gap)))

	rule := make([]string, len(widths))
	for i, cw := range widths {
		rule[i] = styles.Dim(strings.Repeat("─", cw))
	}
	_, _ = fmt.Fprintln(w, strings.Join(rule, strings.Repeat(" ", gap)))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if runewidth.StringWidth(cell) > widths[i] {
				cell = runewidth.Truncate(cell, widths[i], "…")
			}
			cells[i] = pad(cell, widths[i], t.aligns[i])
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, strings.Repeat(" ", gap)))
	}
}

func pad(s string, width int, a alignment) string {
	if a == alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// terminalWidth returns the current terminal width, or a sane default when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// formatAmount renders a decimal amount in the configured display currency.
// Formatting is display-only; all arithmetic stays in decimals.
func (g *Globals) formatAmount(d decimal.Decimal) string {
	currency := money.GetCurrency(g.Currency)
	if currency == nil {
		return d.StringFixed(2)
	}
	minor := d.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, g.Currency).Display()
}
