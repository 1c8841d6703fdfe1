package book

import (
	"fmt"
	"time"
	"unicode"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Phone is a validated phone number. The original input string is kept as the
// canonical value: equality, lookup and removal all compare the stored string
// exactly, never the normalized digits. "123-456-7890" and "1234567890" are
// therefore two distinct phones even though they carry the same digits.
type Phone struct {
	value string
}

// NewPhone validates raw and wraps it. After stripping every non-digit
// character, exactly ten digits must remain; the unstripped original is
// stored unchanged.
func NewPhone(raw string) (Phone, error) {
	digits := 0
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits != config.PhoneDigits {
		return Phone{}, fmt.Errorf("%w: %s", ErrValidation, config.ErrPhoneDigits)
	}
	return Phone{value: raw}, nil
}

// Value returns the original stored string.
func (p Phone) Value() string {
	return p.value
}

// Equal reports whether both phones store the identical string.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a validated calendar date. It is constructed only from a
// strict, zero-padded DD.MM.YYYY string and stored as the parsed date rather
// than the input text.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw against DD.MM.YYYY. The fixed-width layout rejects
// unpadded fields, wrong separators and impossible calendar dates such as
// Feb 29 in a non-leap year.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %s", ErrValidation, config.ErrBirthdayFormat)
	}
	return Birthday{date: t}, nil
}

// Date returns the stored calendar date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// Format renders the date back to zero-padded DD.MM.YYYY.
func (b Birthday) Format() string {
	return b.date.Format(config.DateFormatBirthday)
}

func (b Birthday) String() string {
	return b.Format()
}
