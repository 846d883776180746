package book_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
)

func TestBuildBalanceSheet_Balanced(t *testing.T) {
	chart := book.DefaultChart()
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "invest", "Cash [ASSET]", "Owner's Capital [EQUITY]", "1000"),
		tx(t, "2024-01-02", "stock on credit", "Inventory [ASSET]", "Accounts Payable [LIABILITY]", "400"),
	})

	sheet := book.BuildBalanceSheet(tb.Summary())

	assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(1400)),
		"assets should total 1400, got %s", sheet.TotalAssets)
	assert.True(t, sheet.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(1400)),
		"liabilities & equity should total 1400, got %s", sheet.TotalLiabilitiesAndEquity)
	assert.True(t, sheet.Balanced)

	assert.Equal(t, book.AccountTypeAssets, sheet.Assets.Type)
	assert.Equal(t, book.AccountTypeLiabilities, sheet.Liabilities.Type)
	assert.Equal(t, book.AccountTypeEquities, sheet.Equities.Type)
}

func TestBuildBalanceSheet_UnbalancedIsAcceptedNotRejected(t *testing.T) {
	chart := book.DefaultChart()

	// Income is on neither side of the sheet, so a sale leaves assets ahead
	// of liabilities & equity. The sheet presents the data as-is.
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "cash sale", "Cash [ASSET]", "Sales Revenue [INCOME]", "500"),
	})

	sheet := book.BuildBalanceSheet(tb.Summary())

	assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(500)))
	assert.True(t, sheet.TotalLiabilitiesAndEquity.IsZero())
	assert.False(t, sheet.Balanced)
}

func TestBuildBalanceSheet_EveryChartAccountListed(t *testing.T) {
	chart := book.DefaultChart()
	sheet := book.BuildBalanceSheet(book.ComputeBalances(chart, nil).Summary())

	assert.Equal(t, len(chart.AccountsOfType(book.AccountTypeAssets)), len(sheet.Assets.Accounts))
	assert.Equal(t, len(chart.AccountsOfType(book.AccountTypeLiabilities)), len(sheet.Liabilities.Accounts))
	assert.Equal(t, len(chart.AccountsOfType(book.AccountTypeEquities)), len(sheet.Equities.Accounts))
	assert.True(t, sheet.Balanced)
}
