package book_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
)

func TestComputeBalances_SingleTransaction(t *testing.T) {
	chart := book.DefaultChart()
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "Initial investment", "Cash [ASSET]", "Owner's Capital [EQUITY]", "100.00"),
	})

	cash := tb.Balance("Cash [ASSET]")
	assert.True(t, cash.Net.Equal(decimal.NewFromInt(100)), "cash net should be 100, got %s", cash.Net)
	assert.Equal(t, book.Debit, cash.Side)
	assert.True(t, cash.Display.Equal(decimal.NewFromInt(100)))
	assert.False(t, cash.Abnormal())

	capital := tb.Balance("Owner's Capital [EQUITY]")
	assert.True(t, capital.Net.Equal(decimal.NewFromInt(-100)), "capital net should be -100, got %s", capital.Net)
	assert.Equal(t, book.Credit, capital.Side)
	assert.True(t, capital.Display.Equal(decimal.NewFromInt(100)))
	assert.False(t, capital.Abnormal())
}

func TestComputeBalances_NetsSumToZero(t *testing.T) {
	chart := book.DefaultChart()
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "Investment", "Cash [ASSET]", "Owner's Capital [EQUITY]", "5000"),
		tx(t, "2024-01-02", "Buy stock", "Inventory [ASSET]", "Accounts Payable [LIABILITY]", "1250.50"),
		tx(t, "2024-01-03", "Cash sale", "Cash [ASSET]", "Sales Revenue [INCOME]", "799.99"),
		tx(t, "2024-01-04", "Pay rent", "Rent Expense [EXPENSE]", "Cash [ASSET]", "300"),
	})

	var sum decimal.Decimal
	for _, account := range tb.ActiveAccounts() {
		sum = sum.Add(tb.Net(account))
	}
	assert.True(t, sum.IsZero(), "raw nets should sum to zero, got %s", sum)
}

func TestBalance_SignNormalization(t *testing.T) {
	chart := book.NewChart(map[string]book.AccountType{
		"Cash":    book.AccountTypeAssets,
		"Capital": book.AccountTypeEquities,
	})

	tests := []struct {
		name     string
		txns     []book.Transaction
		account  string
		side     book.Side
		display  string
		abnormal bool
	}{
		{
			name: "debit-normal positive shows debit",
			txns: []book.Transaction{
				tx(t, "2024-01-01", "invest", "Cash", "Capital", "100"),
			},
			account: "Cash",
			side:    book.Debit,
			display: "100",
		},
		{
			name: "credit-normal negative shows credit",
			txns: []book.Transaction{
				tx(t, "2024-01-01", "invest", "Cash", "Capital", "100"),
			},
			account: "Capital",
			side:    book.Credit,
			display: "100",
		},
		{
			name: "credit-normal positive still shows credit",
			txns: []book.Transaction{
				tx(t, "2024-01-01", "drawdown", "Capital", "Cash", "40"),
			},
			account:  "Capital",
			side:     book.Credit,
			display:  "40",
			abnormal: true,
		},
		{
			name: "debit-normal negative shows debit magnitude",
			txns: []book.Transaction{
				tx(t, "2024-01-01", "overdraw", "Capital", "Cash", "75"),
			},
			account:  "Cash",
			side:     book.Debit,
			display:  "75",
			abnormal: true,
		},
		{
			name:    "zero net shows debit zero",
			txns:    nil,
			account: "Cash",
			side:    book.Debit,
			display: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := book.ComputeBalances(chart, tt.txns)
			b := tb.Balance(tt.account)

			expected, err := decimal.NewFromString(tt.display)
			assert.NoError(t, err)

			assert.Equal(t, tt.side, b.Side)
			assert.True(t, b.Display.Equal(expected), "display should be %s, got %s", expected, b.Display)
			assert.Equal(t, tt.abnormal, b.Abnormal())
		})
	}
}

func TestByType_IncludesInactiveExcludesUnknown(t *testing.T) {
	chart := book.DefaultChart()
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "invest", "Cash [ASSET]", "Owner's Capital [EQUITY]", "100"),
		tx(t, "2024-01-02", "mystery", "Not An Account", "Cash [ASSET]", "10"),
	})

	grouped := tb.ByType()

	// Every chart account appears, activity or not.
	assets := grouped[book.AccountTypeAssets]
	assert.Equal(t, len(chart.AccountsOfType(book.AccountTypeAssets)), len(assets))

	// Groups are sorted by account name.
	for i := 1; i < len(assets); i++ {
		assert.True(t, assets[i-1].Account < assets[i].Account,
			"accounts should be sorted: %q before %q", assets[i-1].Account, assets[i].Account)
	}

	// The unknown account never shows up in a group.
	for _, group := range grouped {
		for _, b := range group {
			assert.NotEqual(t, "Not An Account", b.Account)
		}
	}

	// But its net is still tracked.
	assert.True(t, tb.Net("Not An Account").Equal(decimal.NewFromInt(10)))
	assert.Equal(t, book.AccountTypeUnknown, tb.Balance("Not An Account").Type)
}

func TestTotalFor_OrderInvariantNotIdempotent(t *testing.T) {
	chart := book.DefaultChart()
	txns := []book.Transaction{
		tx(t, "2024-01-01", "invest", "Cash [ASSET]", "Owner's Capital [EQUITY]", "1000"),
		tx(t, "2024-01-02", "stock", "Inventory [ASSET]", "Accounts Payable [LIABILITY]", "400"),
		tx(t, "2024-01-03", "sale", "Cash [ASSET]", "Sales Revenue [INCOME]", "250"),
	}
	reversed := []book.Transaction{txns[2], txns[1], txns[0]}

	total := book.ComputeBalances(chart, txns).TotalFor(book.AccountTypeAssets)
	reorderedTotal := book.ComputeBalances(chart, reversed).TotalFor(book.AccountTypeAssets)
	assert.True(t, total.Equal(reorderedTotal), "totals should not depend on transaction order")

	// Appending the same transaction twice doubles its contribution.
	doubled := book.ComputeBalances(chart, append(txns, txns...)).TotalFor(book.AccountTypeAssets)
	assert.True(t, doubled.Equal(total.Mul(decimal.NewFromInt(2))),
		"duplicated stream should double the total, got %s vs %s", doubled, total)
}

func TestTotalFor_ReportsMagnitudeOnly(t *testing.T) {
	chart := book.DefaultChart()
	tb := book.ComputeBalances(chart, []book.Transaction{
		tx(t, "2024-01-01", "invest", "Cash [ASSET]", "Owner's Capital [EQUITY]", "100"),
	})

	// Equities total is a credit-side 100; the sign is discarded.
	total := tb.TotalFor(book.AccountTypeEquities)
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "expected 100, got %s", total)
}

func TestSummary_FixedTypeOrder(t *testing.T) {
	chart := book.DefaultChart()
	summaries := book.ComputeBalances(chart, nil).Summary()

	assert.Equal(t, len(book.AccountTypes), len(summaries))
	for i, expected := range book.AccountTypes {
		assert.Equal(t, expected, summaries[i].Type)
		assert.True(t, summaries[i].Total.IsZero())
	}
}
