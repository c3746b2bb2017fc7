package service

import (
	"time"

	"github.com/tazhate/familytools/internal/clock"
	"github.com/tazhate/familytools/internal/domain"
)

// DateFormat is the canonical YYYY-MM-DD layout. Parsing also accepts
// months and days without a leading zero.
const (
	DateFormat = "2006-01-02"
	dateLayout = "2006-1-2"
)

type DateService struct {
	clock clock.Clock
}

func NewDateService(c clock.Clock) *DateService {
	return &DateService{clock: c}
}

// DaysFromToday returns today minus the given YYYY-MM-DD date in days:
// positive for past dates, negative for future ones, zero for today.
func (s *DateService) DaysFromToday(date string) (int, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, domain.NewError("days from today", domain.ErrParse, err)
	}

	return clock.DaysBetween(d, clock.Today(s.clock)), nil
}

// DaysFromTodayAny is DaysFromToday for values of unknown type.
func (s *DateService) DaysFromTodayAny(v any) (int, error) {
	date, ok := v.(string)
	if !ok {
		return 0, domain.NewError("days from today", domain.ErrType, errExpected("a YYYY-MM-DD string", v))
	}
	return s.DaysFromToday(date)
}
