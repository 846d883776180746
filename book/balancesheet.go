package book

import "github.com/shopspring/decimal"

// BalanceSheet presents the trial balance as Assets on one side and
// Liabilities plus Equities on the other. It is a display aggregation: the
// Balanced flag reports whether the two sides agree, but unbalanced data is
// presented as-is, never rejected.
type BalanceSheet struct {
	Assets      TypeSummary `json:"assets"`
	Liabilities TypeSummary `json:"liabilities"`
	Equities    TypeSummary `json:"equities"`

	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`

	// Balanced reports whether total assets equal total liabilities plus
	// equity, i.e. whether the accounting equation holds for this data.
	Balanced bool `json:"balanced"`
}

// BuildBalanceSheet partitions a trial balance summary into the balance
// sheet sides. Income and Expenses summaries are ignored; the balance sheet
// only covers the permanent accounts.
func BuildBalanceSheet(summary []TypeSummary) *BalanceSheet {
	sheet := &BalanceSheet{}
	for _, s := range summary {
		switch s.Type {
		case AccountTypeAssets:
			sheet.Assets = s
		case AccountTypeLiabilities:
			sheet.Liabilities = s
		case AccountTypeEquities:
			sheet.Equities = s
		}
	}

	sheet.TotalAssets = sheet.Assets.Total
	sheet.TotalLiabilitiesAndEquity = sheet.Liabilities.Total.Add(sheet.Equities.Total)
	sheet.Balanced = sheet.TotalAssets.Equal(sheet.TotalLiabilitiesAndEquity)

	return sheet
}
