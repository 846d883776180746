package book

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Chart is the registry of known account names and their types. It is
// immutable after construction and passed explicitly into every component
// that needs account classification, so alternate charts can be substituted
// in tests or loaded from configuration.
type Chart struct {
	types map[string]AccountType
}

// NewChart creates a chart from an account name to type mapping.
// The mapping is copied; later mutation of the argument has no effect.
func NewChart(types map[string]AccountType) *Chart {
	c := &Chart{types: make(map[string]AccountType, len(types))}
	for name, t := range types {
		c.types[name] = t
	}
	return c
}

// DefaultChart returns the built-in chart of accounts.
func DefaultChart() *Chart {
	return NewChart(map[string]AccountType{
		"Cash [ASSET]":                AccountTypeAssets,
		"Accounts Receivable [ASSET]": AccountTypeAssets,
		"Inventory [ASSET]":           AccountTypeAssets,
		"Prepaid Expenses [ASSET]":    AccountTypeAssets,
		"Equipment [ASSET]":           AccountTypeAssets,

		"Accounts Payable [LIABILITY]": AccountTypeLiabilities,
		"Notes Payable [LIABILITY]":    AccountTypeLiabilities,

		"Owner's Capital [EQUITY]": AccountTypeEquities,

		"Sales Revenue [INCOME]":   AccountTypeIncome,
		"Service Revenue [INCOME]": AccountTypeIncome,

		"Cost of Goods Sold [EXPENSE]": AccountTypeExpenses,
		"Rent Expense [EXPENSE]":       AccountTypeExpenses,
		"Salaries Expense [EXPENSE]":   AccountTypeExpenses,
		"Utilities Expense [EXPENSE]":  AccountTypeExpenses,
	})
}

// LoadChart reads a chart of accounts from a YAML file. The file maps
// category names to lists of account names:
//
//	Assets:
//	  - Cash
//	  - Equipment
//	Liabilities:
//	  - Accounts Payable
func LoadChart(path string) (*Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}

	var byCategory map[string][]string
	if err := yaml.Unmarshal(raw, &byCategory); err != nil {
		return nil, fmt.Errorf("failed to parse chart file %s: %w", path, err)
	}

	types := make(map[string]AccountType)
	for category, accounts := range byCategory {
		t := ParseAccountType(category)
		if t == AccountTypeUnknown {
			return nil, fmt.Errorf("%s: unknown account category %q", path, category)
		}
		for _, name := range accounts {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if existing, ok := types[name]; ok && existing != t {
				return nil, fmt.Errorf("%s: account %q listed under both %s and %s", path, name, existing, t)
			}
			types[name] = t
		}
	}

	return NewChart(types), nil
}

// TypeOf returns the type of the named account, or AccountTypeUnknown for
// accounts not in the chart. Unknown is a sentinel, not an error; callers
// are expected to exclude unknown accounts rather than fail.
func (c *Chart) TypeOf(name string) AccountType {
	return c.types[name]
}

// NormalBalanceOf returns the normal balance side for the named account,
// or SideUnknown for accounts not in the chart.
func (c *Chart) NormalBalanceOf(name string) Side {
	return c.TypeOf(name).NormalBalance()
}

// Contains reports whether the named account is in the chart.
func (c *Chart) Contains(name string) bool {
	_, ok := c.types[name]
	return ok
}

// Accounts returns all account names in the chart, sorted.
func (c *Chart) Accounts() []string {
	names := maps.Keys(c.types)
	slices.Sort(names)
	return names
}

// AccountsOfType returns the names of all accounts of the given type, sorted.
func (c *Chart) AccountsOfType(t AccountType) []string {
	var names []string
	for name, at := range c.types {
		if at == t {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of accounts in the chart.
func (c *Chart) Len() int {
	return len(c.types)
}
