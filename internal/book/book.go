package book

import (
	"errors"
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Book is the contact directory: a mapping from name to Record with insertion
// order preserved for iteration. It exclusively owns its records; state lives
// for the process lifetime only and is never persisted automatically.
//
// The Book is not safe for concurrent use. One command is processed fully
// before the next is read, so no locking is required.
type Book struct {
	records map[string]*Record
	order   []string
}

// Greeting is one upcoming-birthday result: the contact's name and the
// congratulation date, already shifted off weekends and formatted DD.MM.YYYY.
type Greeting struct {
	Name               string
	CongratulationDate string
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts r keyed by its name. An existing record with the same
// name is silently replaced wholesale, keeping its original position; there
// is no merge. A nil record is rejected.
func (b *Book) AddRecord(r *Record) error {
	if r == nil {
		return errors.New(config.ErrNilRecord)
	}
	if _, exists := b.records[r.Name]; !exists {
		b.order = append(b.order, r.Name)
	}
	b.records[r.Name] = r
	return nil
}

// Find returns the record for name, or nil. Lookup is exact-string; there is
// no fuzzy or case-insensitive matching.
func (b *Book) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record for name and reports whether a removal occurred.
func (b *Book) Delete(name string) bool {
	if _, exists := b.records[name]; !exists {
		return false
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored records.
func (b *Book) Len() int {
	return len(b.records)
}

// Records returns the stored records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns a greeting for every contact whose birthday falls
// within the next week relative to ref (inclusive of today and of exactly
// seven days out). Birthdays landing on a Saturday or Sunday are shifted
// forward to the following Monday. Results follow insertion order.
//
// A Feb 29 birthday is normalized by time.Date to Mar 1 in non-leap years.
func (b *Book) UpcomingBirthdays(ref time.Time) []Greeting {
	today := midnightUTC(ref)

	var upcoming []Greeting
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}

		bday := rec.Birthday.Date()
		next := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year()+1, bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
		}

		deltaDays := int(next.Sub(today) / (24 * time.Hour))
		if deltaDays < 0 || deltaDays > config.UpcomingWindowDays {
			continue
		}

		congrats := next
		switch next.Weekday() {
		case time.Saturday:
			congrats = next.AddDate(0, 0, config.ShiftSaturday)
		case time.Sunday:
			congrats = next.AddDate(0, 0, config.ShiftSunday)
		}

		upcoming = append(upcoming, Greeting{
			Name:               rec.Name,
			CongratulationDate: congrats.Format(config.DateFormatBirthday),
		})
	}
	return upcoming
}

// midnightUTC truncates t to its calendar date. UTC keeps the day arithmetic
// exact across DST transitions in the caller's local zone.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
