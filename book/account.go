package book

// Side represents one of the two sides of a double-entry transaction.
type Side int

const (
	SideUnknown Side = iota
	Debit
	Credit
)

// String returns the string representation of the side.
func (s Side) String() string {
	switch s {
	case Debit:
		return "Debit"
	case Credit:
		return "Credit"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler, so sides serialize as
// their names in JSON and YAML.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names map
// to SideUnknown.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Debit":
		*s = Debit
	case "Credit":
		*s = Credit
	default:
		*s = SideUnknown
	}
	return nil
}

// AccountType represents the category of an account.
type AccountType int

const (
	AccountTypeUnknown AccountType = iota
	AccountTypeAssets
	AccountTypeLiabilities
	AccountTypeEquities
	AccountTypeIncome
	AccountTypeExpenses
)

// AccountTypes lists all known account types in presentation order.
var AccountTypes = []AccountType{
	AccountTypeAssets,
	AccountTypeLiabilities,
	AccountTypeEquities,
	AccountTypeIncome,
	AccountTypeExpenses,
}

// String returns the string representation of the account type.
func (t AccountType) String() string {
	switch t {
	case AccountTypeAssets:
		return "Assets"
	case AccountTypeLiabilities:
		return "Liabilities"
	case AccountTypeEquities:
		return "Equities"
	case AccountTypeIncome:
		return "Income"
	case AccountTypeExpenses:
		return "Expenses"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler, so account types serialize
// as their names in JSON and YAML.
func (t AccountType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names map
// to AccountTypeUnknown.
func (t *AccountType) UnmarshalText(text []byte) error {
	*t = ParseAccountType(string(text))
	return nil
}

// ParseAccountType parses an account type from its string representation.
// Unrecognized names map to AccountTypeUnknown.
func ParseAccountType(s string) AccountType {
	switch s {
	case "Assets":
		return AccountTypeAssets
	case "Liabilities":
		return AccountTypeLiabilities
	case "Equities":
		return AccountTypeEquities
	case "Income":
		return AccountTypeIncome
	case "Expenses":
		return AccountTypeExpenses
	default:
		return AccountTypeUnknown
	}
}

// NormalBalance returns the side on which accounts of this type
// conventionally carry a positive balance. Assets and Expenses are
// debit-normal; Liabilities, Equities and Income are credit-normal.
func (t AccountType) NormalBalance() Side {
	switch t {
	case AccountTypeAssets, AccountTypeExpenses:
		return Debit
	case AccountTypeLiabilities, AccountTypeEquities, AccountTypeIncome:
		return Credit
	default:
		return SideUnknown
	}
}
