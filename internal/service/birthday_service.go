package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tazhate/familytools/internal/clock"
	"github.com/tazhate/familytools/internal/domain"
)

const (
	BirthdayFormat = "2006.01.02"
	DaysInWeek     = 7

	birthdayLayout = "2006.1.2" // also takes "1990.6.3"
)

type BirthdayService struct {
	clock  clock.Clock
	logger *log.Logger
}

type BirthdayOption func(*BirthdayService)

// WithLogger sets where skipped records are reported.
func WithLogger(l *log.Logger) BirthdayOption {
	return func(s *BirthdayService) {
		s.logger = l
	}
}

func NewBirthdayService(c clock.Clock, opts ...BirthdayOption) *BirthdayService {
	s := &BirthdayService{
		clock:  c,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upcoming returns users to congratulate within the next week, in input order.
// A birthday on Saturday or Sunday is congratulated on the following Monday,
// and the window applies to that shifted date. Records with a malformed
// birthday are reported in Skipped and do not stop the batch.
func (s *BirthdayService) Upcoming(users []domain.User) *domain.BirthdayReport {
	today := clock.Today(s.clock)
	report := &domain.BirthdayReport{Congratulations: []domain.Congratulation{}}

	for i, u := range users {
		s.collect(report, i, u, today)
	}
	return report
}

// UpcomingFromRaw is Upcoming for decoded documents of unknown shape.
// Entries that are not mappings, or whose name or birthday is not a string,
// are ignored.
func (s *BirthdayService) UpcomingFromRaw(v any) (*domain.BirthdayReport, error) {
	items, ok := v.([]any)
	if !ok {
		return &domain.BirthdayReport{Congratulations: []domain.Congratulation{}},
			domain.NewError("upcoming birthdays", domain.ErrType, errExpected("a list of users", v))
	}

	today := clock.Today(s.clock)
	report := &domain.BirthdayReport{Congratulations: []domain.Congratulation{}}

	for i, item := range items {
		u, ok := userFromRaw(item)
		if !ok {
			continue
		}
		s.collect(report, i, u, today)
	}
	return report, nil
}

func (s *BirthdayService) collect(report *domain.BirthdayReport, index int, u domain.User, today time.Time) {
	date, err := congratulationDate(u.Birthday, today)
	if err != nil {
		s.logger.Printf("Skipping user %q: %v", u.Name, err)
		report.Skipped = append(report.Skipped, domain.SkippedUser{Index: index, Name: u.Name, Err: err})
		return
	}

	days := clock.DaysBetween(today, date)
	if days < 0 || days > DaysInWeek {
		return
	}

	report.Congratulations = append(report.Congratulations, domain.Congratulation{
		Name:               u.Name,
		CongratulationDate: date.Format(BirthdayFormat),
	})
}

// congratulationDate moves the birthday into today's year and off the weekend.
func congratulationDate(birthday string, today time.Time) (time.Time, error) {
	bd, err := time.Parse(birthdayLayout, birthday)
	if err != nil {
		return time.Time{}, domain.NewError("upcoming birthdays", domain.ErrParse, err)
	}

	date := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, today.Location())
	if date.Day() != bd.Day() {
		return time.Time{}, domain.NewError("upcoming birthdays", domain.ErrParse,
			fmt.Errorf("%s does not exist in %d", bd.Format("01.02"), today.Year()))
	}

	return shiftWeekend(date), nil
}

func shiftWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

// UsersFromRaw extracts well-formed user records from a decoded document,
// ignoring entries UpcomingFromRaw would ignore.
func UsersFromRaw(v any) ([]domain.User, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, domain.NewError("read users", domain.ErrType, errExpected("a list of users", v))
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		if u, ok := userFromRaw(item); ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func userFromRaw(item any) (domain.User, bool) {
	var name, birthday any
	switch m := item.(type) {
	case map[string]any:
		name, birthday = m["name"], m["birthday"]
	case map[any]any:
		name, birthday = m["name"], m["birthday"]
	default:
		return domain.User{}, false
	}

	n, ok := name.(string)
	if !ok {
		return domain.User{}, false
	}
	b, ok := birthday.(string)
	if !ok {
		return domain.User{}, false
	}
	return domain.User{Name: n, Birthday: b}, true
}

// NextOccurrence returns the next date, today included, on which the user's
// birthday falls. Feb 29 birthdays resolve to the next leap year.
func (s *BirthdayService) NextOccurrence(u domain.User) (time.Time, error) {
	bd, err := time.Parse(birthdayLayout, u.Birthday)
	if err != nil {
		return time.Time{}, domain.NewError("next birthday", domain.ErrParse, err)
	}

	spec := fmt.Sprintf("0 0 %d %d *", bd.Day(), int(bd.Month()))
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(spec)
	if err != nil {
		return time.Time{}, domain.NewError("next birthday", domain.ErrParse, fmt.Errorf("parse schedule: %w", err))
	}

	today := clock.Today(s.clock)
	next := sched.Next(today.Add(-time.Second))
	if next.IsZero() {
		return time.Time{}, domain.NewError("next birthday", domain.ErrRange, fmt.Errorf("no occurrence of %s", spec))
	}
	return next, nil
}

// Format renders a report for display.
func (s *BirthdayService) Format(report *domain.BirthdayReport) string {
	if len(report.Congratulations) == 0 {
		return "No upcoming birthdays"
	}

	today := clock.Today(s.clock)

	var sb strings.Builder
	for _, c := range report.Congratulations {
		sb.WriteString(fmt.Sprintf("🎂 %s — %s", c.Name, c.CongratulationDate))

		date, err := time.ParseInLocation(BirthdayFormat, c.CongratulationDate, today.Location())
		if err != nil {
			sb.WriteString("\n")
			continue
		}

		switch days := clock.DaysBetween(today, date); days {
		case 0:
			sb.WriteString(" (today)")
		case 1:
			sb.WriteString(" (tomorrow)")
		default:
			sb.WriteString(fmt.Sprintf(" (in %d days)", days))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
