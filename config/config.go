package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Timezone     *time.Location // "today" is taken in this zone, time.Local by default
	TicketSeed   *uint64        // nil means a random seed per run
	CalendarName string
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are used when the variable is not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	tz := time.Local
	if tzName := os.Getenv("TIMEZONE"); tzName != "" {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
		}
		tz = loc
	}

	var seed *uint64
	if s := os.Getenv("TICKET_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TICKET_SEED must be a non-negative number: %w", err)
		}
		seed = &v
	}

	calendarName := os.Getenv("BIRTHDAY_CALENDAR_NAME")
	if calendarName == "" {
		calendarName = "Birthdays"
	}

	return &Config{
		Timezone:     tz,
		TicketSeed:   seed,
		CalendarName: calendarName,
	}, nil
}
