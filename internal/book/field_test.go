package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
)

func TestNewPhone_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Bare 10 digits", "0991234567", false},
		{"Dashed format", "099-123-4567", false},
		{"Parentheses and spaces", "(099) 123 45 67", false},
		{"Too short", "12345", true},
		{"Nine digits with letter", "123456789a", true},
		{"International 12 digits", "+380991234567", true},
		{"Eleven digits", "09912345678", true},
		{"Empty", "", true},
		{"Letters only", "phone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := book.NewPhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, book.ErrValidation)
				return
			}
			require.NoError(t, err)
			// The original string is preserved, never normalized.
			assert.Equal(t, tt.raw, p.Value())
		})
	}
}

func TestPhone_Equal_ExactString(t *testing.T) {
	// Both values carry the same ten digits but differ as strings; they are
	// deliberately NOT equal for find/edit/remove purposes.
	dashed, err := book.NewPhone("099-123-4567")
	require.NoError(t, err)
	bare, err := book.NewPhone("0991234567")
	require.NoError(t, err)

	assert.False(t, dashed.Equal(bare), "different formatting must not compare equal")
	assert.True(t, bare.Equal(bare))

	same, err := book.NewPhone("0991234567")
	require.NoError(t, err)
	assert.True(t, bare.Equal(same))
}

func TestNewBirthday_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Valid date", "15.06.1990", false},
		{"Leap day in leap year", "29.02.2024", false},
		{"Leap day in non-leap year", "29.02.2023", true},
		{"Day out of range", "31.04.2024", true},
		{"Unpadded day", "1.06.1990", true},
		{"Unpadded month", "15.6.1990", true},
		{"Two-digit year", "15.06.90", true},
		{"Wrong separators", "15/06/1990", true},
		{"ISO order", "1990.06.15", true},
		{"Trailing text", "15.06.1990x", true},
		{"Garbage", "not-a-date", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := book.NewBirthday(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, book.ErrValidation)
				return
			}
			require.NoError(t, err)
			// Round-trip: stored as a date, rendered back identically.
			assert.Equal(t, tt.raw, b.Format())
		})
	}
}

func TestBirthday_StoresCalendarDate(t *testing.T) {
	b, err := book.NewBirthday("29.02.2024")
	require.NoError(t, err)

	d := b.Date()
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 2, int(d.Month()))
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "29.02.2024", b.Format())
}
