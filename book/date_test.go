package book_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kgalang/ledgerbook/book"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"01/02/2024", false},
		{"2024-1-1", false},
		{"", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := book.ParseDate(tt.input)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, d.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDateZero(t *testing.T) {
	var d book.Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestDateOrdering(t *testing.T) {
	a, err := book.ParseDate("2024-01-01")
	assert.NoError(t, err)
	b, err := book.ParseDate("2024-06-15")
	assert.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestDateText(t *testing.T) {
	d, err := book.ParseDate("2024-03-09")
	assert.NoError(t, err)

	text, err := d.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-09", string(text))

	var parsed book.Date
	assert.NoError(t, parsed.UnmarshalText(text))
	assert.True(t, parsed.Equal(d))

	var zero book.Date
	assert.NoError(t, zero.UnmarshalText(nil))
	assert.True(t, zero.IsZero())
}
