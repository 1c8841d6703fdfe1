// Package exchange converts the contact book to and from the interchange
// formats: vCard files for explicit import/export and an iCalendar birthday
// feed for the HTTP server.
package exchange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Encode writes one vCard 4.0 card per record: FN for the name, one TEL per
// stored phone (original formatting preserved) and BDAY when a birthday is
// set.
func Encode(w io.Writer, b *book.Book) error {
	enc := vcard.NewEncoder(w)
	for _, rec := range b.Records() {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name)
		for _, p := range rec.Phones {
			card.Add(config.VCardTEL, &vcard.Field{Value: p.Value()})
		}
		if rec.Birthday != nil {
			card.SetValue(config.VCardBDAY, rec.Birthday.Date().Format(config.DateFormatVCardBDAY))
		}
		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

// Decode reads a vCard stream back into records. Malformed cards, invalid
// phones and unparseable birthdays are skipped with a log entry to maximize
// data recovery, matching the tolerant import behavior users expect from
// address book tools.
func Decode(r io.Reader) ([]*book.Record, error) {
	log := slog.With(config.LogKeyComponent, config.CompExchange)
	dec := vcard.NewDecoder(r)

	var records []*book.Record
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		fn := card.Get(config.VCardFN)
		if fn == nil || fn.Value == "" {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, errors.New(config.ErrVCardParse))
			continue
		}

		rec := book.NewRecord(fn.Value)
		for _, tel := range card[config.VCardTEL] {
			phone, err := book.NewPhone(tel.Value)
			if err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, fn.Value,
					config.LogKeyValue, tel.Value,
				)
				continue
			}
			rec.AddPhone(phone)
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if t, err := time.Parse(config.DateFormatVCardBDAY, bday.Value); err == nil {
				if parsed, err := book.NewBirthday(t.Format(config.DateFormatBirthday)); err == nil {
					rec.SetBirthday(parsed)
				}
			} else {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, fn.Value,
					config.LogKeyValue, bday.Value,
				)
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// ExportFile writes the whole book to path and returns the record count.
func ExportFile(path string, b *book.Book) (int, error) {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermExport)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, b); err != nil {
		return 0, err
	}

	count := b.Len()
	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyFile, path,
		config.LogKeyCount, count,
	)
	return count, nil
}

// ImportFile merges the records of a vCard file into b. Records with a name
// already present replace the stored record wholesale, the same semantics as
// AddRecord.
func ImportFile(path string, b *book.Book) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Decode(f)
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		if err := b.AddRecord(rec); err != nil {
			return 0, err
		}
	}

	slog.Info(config.MsgImportMerged,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyFile, path,
		config.LogKeyCount, len(records),
	)
	return len(records), nil
}
