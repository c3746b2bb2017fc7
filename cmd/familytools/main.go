package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	_ "time/tzdata"

	"github.com/tazhate/familytools/config"
	"github.com/tazhate/familytools/internal/calendar"
	"github.com/tazhate/familytools/internal/clock"
	"github.com/tazhate/familytools/internal/service"
	"github.com/tazhate/familytools/internal/storage"
)

const usage = `usage: familytools <command> [arguments]

commands:
  days DATE                    days between DATE (YYYY-MM-DD) and today
  ticket MIN MAX QUANTITY      sorted unique lottery numbers from [MIN, MAX)
  phone NUMBER...              normalize phone numbers to +380XXXXXXXXX
  birthdays [-ics OUT] FILE    users to congratulate during the next week
  next FILE                    days until every user's next birthday

FILE is a .yaml, .json or .ics list of users with name and birthday (YYYY.MM.DD).
`

var errUsage = errors.New("invalid usage")

type app struct {
	cfg       *config.Config
	clock     clock.Clock
	out       io.Writer
	dates     *service.DateService
	tickets   *service.TicketService
	phones    *service.PhoneService
	birthdays *service.BirthdayService
	calendar  *calendar.Writer
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a := newApp(cfg, clock.NewSystem(cfg.Timezone), os.Stdout)
	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

func newApp(cfg *config.Config, c clock.Clock, out io.Writer) *app {
	var ticketOpts []service.TicketOption
	if cfg.TicketSeed != nil {
		ticketOpts = append(ticketOpts, service.WithSeed(*cfg.TicketSeed))
	}

	return &app{
		cfg:       cfg,
		clock:     c,
		out:       out,
		dates:     service.NewDateService(c),
		tickets:   service.NewTicketService(ticketOpts...),
		phones:    service.NewPhoneService(),
		birthdays: service.NewBirthdayService(c),
		calendar:  calendar.NewWriter(cfg.CalendarName, c.Now),
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "days":
		return a.days(args)
	case "ticket":
		return a.ticket(args)
	case "phone":
		return a.phone(args)
	case "birthdays":
		return a.upcoming(args)
	case "next":
		return a.next(args)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) days(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: days takes exactly one date", errUsage)
	}

	n, err := a.dates.DaysFromToday(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, n)
	return nil
}

func (a *app) ticket(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: ticket takes MIN MAX QUANTITY", errUsage)
	}

	req, err := service.ParseTicketArgs(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	ticket, err := a.tickets.Generate(req.Min, req.Max, req.Quantity)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, ticket)
	return nil
}

func (a *app) phone(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: phone takes at least one number", errUsage)
	}

	for _, p := range a.phones.NormalizeAll(args) {
		fmt.Fprintln(a.out, p)
	}
	return nil
}

func (a *app) upcoming(args []string) error {
	fs := flag.NewFlagSet("birthdays", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flagICS := fs.String("ics", "", "write congratulations to this iCalendar file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: birthdays takes exactly one file", errUsage)
	}

	doc, err := storage.LoadUsers(fs.Arg(0))
	if err != nil {
		return err
	}
	report, err := a.birthdays.UpcomingFromRaw(doc)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, a.birthdays.Format(report))
	if len(report.Skipped) > 0 {
		log.Printf("Skipped %d user(s) with malformed birthdays", len(report.Skipped))
	}

	if *flagICS == "" || len(report.Congratulations) == 0 {
		return nil
	}

	f, err := os.Create(*flagICS)
	if err != nil {
		return fmt.Errorf("create calendar file: %w", err)
	}
	defer f.Close()

	if err := a.calendar.Write(f, report.Congratulations); err != nil {
		return err
	}
	return f.Close()
}

func (a *app) next(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: next takes exactly one file", errUsage)
	}

	doc, err := storage.LoadUsers(args[0])
	if err != nil {
		return err
	}
	users, err := service.UsersFromRaw(doc)
	if err != nil {
		return err
	}

	today := clock.Today(a.clock)
	for _, u := range users {
		next, err := a.birthdays.NextOccurrence(u)
		if err != nil {
			log.Printf("Skipping user %q: %v", u.Name, err)
			continue
		}
		days := clock.DaysBetween(today, next)
		fmt.Fprintf(a.out, "%s %s %d\n", u.Name, next.Format(service.BirthdayFormat), days)
	}
	return nil
}
