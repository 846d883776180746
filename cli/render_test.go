package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/output"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5, alignLeft))
	assert.Equal(t, "   ab", pad("ab", 5, alignRight))
	assert.Equal(t, "ab", pad("ab", 2, alignLeft))
}

func TestTableRendersAlignedColumns(t *testing.T) {
	tbl := newTable([]string{"Account", "Balance"}, alignLeft, alignRight)
	tbl.addRow("Cash [ASSET]", "1,000.00")
	tbl.addRow("Inventory [ASSET]", "400.00")

	var buf bytes.Buffer
	tbl.writeTo(&buf, output.NewStyles(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines)) // header, rule, two rows

	assert.Contains(t, lines[0], "Account")
	assert.Contains(t, lines[0], "Balance")
	assert.Contains(t, lines[1], "─")

	// Right-aligned amounts end at the same column.
	assert.True(t, strings.HasSuffix(lines[2], "1,000.00"))
	assert.True(t, strings.HasSuffix(lines[3], "  400.00"))
	assert.Equal(t, len(lines[2]), len(lines[3]))
}

func TestTablePadsShortRows(t *testing.T) {
	tbl := newTable([]string{"A", "B", "C"})
	tbl.addRow("only")

	var buf bytes.Buffer
	tbl.writeTo(&buf, output.NewStyles(&buf))
	assert.Contains(t, buf.String(), "only")
}

func TestFormatAmount(t *testing.T) {
	g := &Globals{Currency: "PHP"}
	assert.Equal(t, "₱1,234.50", g.formatAmount(decimal.NewFromFloat(1234.5)))

	g = &Globals{Currency: "USD"}
	assert.Equal(t, "$99.99", g.formatAmount(decimal.NewFromFloat(99.99)))
}

func TestFormatAmount_UnknownCurrencyFallsBack(t *testing.T) {
	g := &Globals{Currency: "XYZ"}
	assert.Equal(t, "42.00", g.formatAmount(decimal.NewFromInt(42)))
}
