package calendar

import "time"

// Event is an all-day calendar entry.
type Event struct {
	Summary     string // Title
	Description string
	Date        time.Time // day of the event, time of day is ignored
}
