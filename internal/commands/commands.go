// Package commands translates parsed argument lists into book operations.
// Handlers return a display string (possibly empty) and a recoverable error;
// the REPL converts errors into the fixed user-facing messages.
package commands

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/exchange"
)

// Translator resolves a translation key to a localized user-facing string.
// The REPL injects its localizer here so the handler logic stays free of UI
// concerns.
type Translator func(key string) string

// Handler bundles the book with its collaborators. A zero Translate falls
// back to the English strings from config.
type Handler struct {
	Book      *book.Book
	Clock     book.Clock
	Translate Translator
}

var changePattern = regexp.MustCompile(config.PhoneChangePattern)

// ValidChangePhone applies the secondary format rule of the change command:
// the value must be digits only and match either a national number with a
// leading 0 or the 380 international prefix followed by nine digits.
func ValidChangePhone(phone string) bool {
	if phone == "" {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return changePattern.MatchString(phone)
}

func (h *Handler) msg(key, fallback string) string {
	if h.Translate == nil {
		return fallback
	}
	return h.Translate(key)
}

// Add creates the named contact if needed and appends the phone.
// Usage: add <name> <phone>
func (h *Handler) Add(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: %s", book.ErrValidation, config.ErrMissingArgument)
	}
	name, rawPhone := args[0], args[1]

	phone, err := book.NewPhone(rawPhone)
	if err != nil {
		return "", err
	}

	rec := h.Book.Find(name)
	msg := h.msg(config.TKeyContactUpdated, config.FallbackContactUpdated)
	if rec == nil {
		rec = book.NewRecord(name)
		if err := h.Book.AddRecord(rec); err != nil {
			return "", err
		}
		msg = h.msg(config.TKeyContactAdded, config.FallbackContactAdded)
	}
	rec.AddPhone(phone)
	return msg, nil
}

// Change replaces an existing phone on a contact.
// Usage: change <name> <old_phone> <new_phone>
func (h *Handler) Change(args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("%w: %s", book.ErrValidation, config.ErrMissingArgument)
	}
	name, rawOld, rawNew := args[0], args[1], args[2]

	if !ValidChangePhone(rawNew) {
		return h.msg(config.TKeyInvalidPhone, config.FallbackInvalidPhone), nil
	}

	rec := h.Book.Find(name)
	if rec == nil {
		return "", book.ErrNotFound
	}

	// Validate both values before touching the phone sequence.
	oldPhone, err := book.NewPhone(rawOld)
	if err != nil {
		return "", err
	}
	newPhone, err := book.NewPhone(rawNew)
	if err != nil {
		return "", err
	}
	rec.EditPhone(oldPhone, newPhone)
	return "", nil
}

// Phone lists a contact's phones joined by "; ".
// Usage: phone <name>
func (h *Handler) Phone(args []string) (string, error) {
	if len(args) < 1 {
		return "", book.ErrArgument
	}
	rec := h.Book.Find(args[0])
	if rec == nil {
		return "", book.ErrNotFound
	}
	if len(rec.Phones) == 0 {
		return h.msg(config.TKeyNoPhones, config.FallbackNoPhones), nil
	}
	return rec.PhoneList(), nil
}

// All renders every record, one per line, in insertion order.
func (h *Handler) All() (string, error) {
	records := h.Book.Records()
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n"), nil
}

// AddBirthday sets or overwrites a contact's birthday.
// Usage: add-birthday <name> <DD.MM.YYYY>
func (h *Handler) AddBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: %s", book.ErrValidation, config.ErrMissingArgument)
	}
	rec := h.Book.Find(args[0])
	if rec == nil {
		return "", book.ErrNotFound
	}
	bday, err := book.NewBirthday(args[1])
	if err != nil {
		return "", err
	}
	rec.SetBirthday(bday)
	return "", nil
}

// ShowBirthday prints a contact's birthday.
// Usage: show-birthday <name>
func (h *Handler) ShowBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", book.ErrArgument
	}
	rec := h.Book.Find(args[0])
	if rec == nil {
		return "", book.ErrNotFound
	}
	if rec.Birthday == nil {
		return "", fmt.Errorf("%w: %s", book.ErrNotFound, config.ErrBirthdayUnset)
	}
	return rec.Birthday.Format(), nil
}

// Birthdays lists the upcoming congratulation dates for the next week,
// one "name: DD.MM.YYYY" line per contact, using "now" as the reference.
func (h *Handler) Birthdays() (string, error) {
	greetings := h.Book.UpcomingBirthdays(h.Clock.Now())
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf(config.FormatGreeting, g.Name, g.CongratulationDate)
	}
	return strings.Join(lines, "\n"), nil
}

// Export writes the whole book to a vCard file.
// Usage: export <path>
func (h *Handler) Export(args []string) (string, error) {
	if len(args) < 1 {
		return "", book.ErrArgument
	}
	if _, err := exchange.ExportFile(args[0], h.Book); err != nil {
		return "", err
	}
	return h.msg(config.TKeyExported, config.FallbackExported), nil
}

// Import merges the records of a vCard file into the book. Existing records
// with a matching name are replaced wholesale.
// Usage: import <path>
func (h *Handler) Import(args []string) (string, error) {
	if len(args) < 1 {
		return "", book.ErrArgument
	}
	if _, err := exchange.ImportFile(args[0], h.Book); err != nil {
		return "", err
	}
	return h.msg(config.TKeyImported, config.FallbackImported), nil
}
