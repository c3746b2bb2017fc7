package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tazhate/familytools/internal/domain"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC) }
	w := NewWriter("Birthdays", now)

	var buf bytes.Buffer
	err := w.Write(&buf, []domain.Congratulation{
		{Name: "Alice", CongratulationDate: "2025.06.12"},
		{Name: "Bob", CongratulationDate: "2025.06.16"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "BEGIN:VCALENDAR")
	require.Contains(t, out, "PRODID:"+ProductID)
	require.Contains(t, out, "X-WR-CALNAME:Birthdays")
	require.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	require.Contains(t, out, "DTSTART;VALUE=DATE:20250616")
	require.Contains(t, out, "DTEND;VALUE=DATE:20250617")
	require.Contains(t, out, "DTSTAMP:20250612T090000Z")
	require.Contains(t, out, "SUMMARY:🎂 Bob")
	require.Contains(t, out, "DESCRIPTION:Congratulate Bob")
	require.Equal(t, 2, strings.Count(out, "\nUID:"))

	users, err := ReadUsers(&buf)
	require.NoError(t, err)
	require.Equal(t, []domain.User{
		{Name: "Alice", Birthday: "2025.06.12"},
		{Name: "Bob", Birthday: "2025.06.16"},
	}, users)
}

func TestWriter_WriteRejects(t *testing.T) {
	t.Parallel()

	w := NewWriter("", nil)

	var buf bytes.Buffer
	require.Error(t, w.Write(&buf, nil))
	require.Error(t, w.Write(&buf, []domain.Congratulation{{Name: "X", CongratulationDate: "12.06.2025"}}))
}

func TestReadUsers(t *testing.T) {
	t.Parallel()

	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Example//Contacts//EN",
		"BEGIN:VEVENT",
		"UID:1@example",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Taras",
		"DTSTART;VALUE=DATE:19900309",
		"RRULE:FREQ=YEARLY",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:2@example",
		"DTSTAMP:20250101T000000Z",
		"DTSTART;VALUE=DATE:19850101",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:3@example",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Lesya",
		"DTSTART;VALUE=DATE:18710225",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	users, err := ReadUsers(strings.NewReader(ics))
	require.NoError(t, err)
	require.Equal(t, []domain.User{
		{Name: "Taras", Birthday: "1990.03.09"},
		{Name: "Lesya", Birthday: "1871.02.25"},
	}, users)

	_, err = ReadUsers(strings.NewReader("BEGIN:VCALENDAR\r\nnot a property\r\n"))
	require.Error(t, err)
}
