package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Record holds one person's data: an immutable identifying name, an ordered
// phone sequence (duplicates permitted) and at most one birthday. All methods
// take the validated value types; constructing a Phone or Birthday from raw
// input is the caller's job, which keeps every operation all-or-nothing.
type Record struct {
	Name     string
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord creates a record with the given name, no phones and no birthday.
// The name is not validated here; empty-name handling is left to the caller.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone appends p to the phone sequence and returns the stored value.
// Duplicates are allowed.
func (r *Record) AddPhone(p Phone) Phone {
	r.Phones = append(r.Phones, p)
	return p
}

// RemovePhone removes the first phone equal to p and reports whether a
// removal occurred.
func (r *Record) RemovePhone(p Phone) bool {
	for i, existing := range r.Phones {
		if existing.Equal(p) {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the first phone equal to oldPhone with newPhone in
// place. It reports whether a replacement happened; when oldPhone is absent
// the sequence is left untouched and newPhone is never inserted.
func (r *Record) EditPhone(oldPhone, newPhone Phone) bool {
	for i, existing := range r.Phones {
		if existing.Equal(oldPhone) {
			r.Phones[i] = newPhone
			return true
		}
	}
	return false
}

// FindPhone returns the first phone equal to p, if any.
func (r *Record) FindPhone(p Phone) (Phone, bool) {
	for _, existing := range r.Phones {
		if existing.Equal(p) {
			return existing, true
		}
	}
	return Phone{}, false
}

// SetBirthday sets or overwrites the record's birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.Birthday = &b
}

// PhoneList joins the stored phones for display.
func (r *Record) PhoneList() string {
	values := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		values[i] = p.Value()
	}
	return strings.Join(values, config.PhoneSeparator)
}

// String renders a human-readable one-line summary of the record.
func (r *Record) String() string {
	bday := config.BirthdayPlaceholder
	if r.Birthday != nil {
		bday = r.Birthday.Format()
	}
	return fmt.Sprintf(config.FormatRecord, r.Name, r.PhoneList(), bday)
}
