package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tazhate/familytools/internal/domain"
)

const (
	ProductID = "-//FamilyTools//Birthdays//EN"

	birthdayFormat = "2006.01.02"
	propCalName    = "X-WR-CALNAME"
	summaryPrefix  = "🎂 "
)

// Writer renders congratulations as an iCalendar document.
type Writer struct {
	name string
	now  func() time.Time
}

func NewWriter(calendarName string, now func() time.Time) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{name: calendarName, now: now}
}

// Write encodes one all-day event per congratulation.
func (w *Writer) Write(out io.Writer, congrats []domain.Congratulation) error {
	if len(congrats) == 0 {
		return errors.New("nothing to export")
	}

	events := make([]Event, 0, len(congrats))
	for _, c := range congrats {
		date, err := time.Parse(birthdayFormat, c.CongratulationDate)
		if err != nil {
			return fmt.Errorf("congratulation date for %s: %w", c.Name, err)
		}
		events = append(events, Event{
			Summary:     summaryPrefix + c.Name,
			Description: fmt.Sprintf("Congratulate %s", c.Name),
			Date:        date,
		})
	}

	cal := w.toICS(events)
	if err := ical.NewEncoder(out).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func (w *Writer) toICS(events []Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	if w.name != "" {
		cal.Props.SetText(propCalName, w.name)
	}

	stamp := w.now().UTC()
	for _, e := range events {
		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, uuid.NewString())
		vevent.Props.SetText(ical.PropSummary, e.Summary)
		if e.Description != "" {
			vevent.Props.SetText(ical.PropDescription, e.Description)
		}
		vevent.Props.SetDate(ical.PropDateTimeStart, e.Date)
		vevent.Props.SetDate(ical.PropDateTimeEnd, e.Date.AddDate(0, 0, 1))
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

		cal.Children = append(cal.Children, vevent.Component)
	}
	return cal
}

// ReadUsers turns the VEVENTs of an iCalendar stream into users: the summary
// is the name and the start date is the birthday. Events without a summary or
// start date are skipped.
func ReadUsers(r io.Reader) ([]domain.User, error) {
	dec := ical.NewDecoder(r)

	var users []domain.User
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, ev := range cal.Events() {
			e, ok := parseEvent(ev.Component)
			if !ok {
				continue
			}
			users = append(users, domain.User{
				Name:     strings.TrimPrefix(e.Summary, summaryPrefix),
				Birthday: e.Date.Format(birthdayFormat),
			})
		}
	}
	return users, nil
}

func parseEvent(comp *ical.Component) (Event, bool) {
	var e Event

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		e.Summary = strings.TrimSpace(prop.Value)
	}

	prop := comp.Props.Get(ical.PropDateTimeStart)
	if prop == nil || e.Summary == "" {
		return e, false
	}
	t, err := prop.DateTime(time.UTC)
	if err != nil {
		return e, false
	}
	e.Date = t

	return e, true
}
