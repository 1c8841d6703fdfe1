package exchange

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Feed renders the book's birthdays as an iCalendar object for the HTTP
// server.
type Feed struct {
	Clock book.Clock

	// FormatSummary allows the caller to inject a localized event summary.
	FormatSummary func(name string) string
}

// Generate builds the full ICS document. Events are emitted for the previous,
// current and next year so calendar clients can scroll without an immediate
// re-sync, and never before the contact's birth year.
func (f *Feed) Generate(b *book.Book) ([]byte, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompExchange)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: Suggest a refresh interval.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Birthdays are local calendar dates; only the DTSTAMP is UTC.
	now := f.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ total, withBday int }{0, 0}

	for _, rec := range b.Records() {
		stats.total++
		if rec.Birthday == nil {
			continue
		}
		stats.withBday++

		// Deterministic UID generation for stability across refreshes.
		input := fmt.Sprintf(config.FormatHashInput,
			rec.Name, rec.Birthday.Format(), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		for _, e := range f.createEvents(rec.Name, rec.Birthday.Date(), now, uidBase) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		// A valid empty VCALENDAR keeps feed clients from flagging the
		// feed as broken.
		f.logSuccess(stats)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	f.logSuccess(stats)
	log.Debug(config.MsgFeedRefreshed, config.LogKeyDuration, time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// createEvents generates one full-day event per target year, skipping years
// before the contact was born.
func (f *Feed) createEvents(name string, birthDate time.Time, now time.Time, uidBase string) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackSummary, name)
		if f.FormatSummary != nil {
			summary = f.FormatSummary(name)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to Mar 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

func (f *Feed) logSuccess(stats struct{ total, withBday int }) {
	slog.Info(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompExchange,
		slog.Int(config.LogKeyTotal, stats.total),
		slog.Int(config.LogKeyFound, stats.withBday),
	)
}
