// Package app wires the booking core together and drives it from
// command-line flags: sample data generation, booking and customer search,
// and single-booking reports.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"boxoffice/internal/domain"
	"boxoffice/internal/report"
	"boxoffice/internal/repository"
	appvalidator "boxoffice/internal/validator"
)

// windowLayout is the DD/MM/YYYY form dates are entered in on the command
// line.
const windowLayout = "02/01/2006"

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	out       io.Writer

	customerRepo domain.CustomerRepository
	showRepo     domain.ShowRepository
	bookingRepo  domain.BookingRepository
	counter      counter
}

type counter interface {
	Counts(ctx context.Context) (domain.RowCounts, error)
}

type config struct {
	dbPath string
	seed   uint64

	generate struct {
		enabled   bool
		customers int
		shows     int
		bookings  int
		start     string
		end       string
	}

	search struct {
		customers  bool
		bookingID  int
		customerID int
		showID     int
		name       string
		date       string
		category   string
	}

	reportID int
}

func Run() error {
	var cfg config

	flag.StringVar(&cfg.dbPath, "db", "system.db", "SQLite database path")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Random seed for data generation")

	flag.BoolVar(&cfg.generate.enabled, "generate", false, "Generate sample data")
	flag.IntVar(&cfg.generate.customers, "customers", 100, "Number of customers to generate")
	flag.IntVar(&cfg.generate.shows, "shows", 20, "Number of shows to generate")
	flag.IntVar(&cfg.generate.bookings, "bookings", 200, "Number of bookings to generate")
	flag.StringVar(&cfg.generate.start, "start", "01/01/2023", "Window start (DD/MM/YYYY)")
	flag.StringVar(&cfg.generate.end, "end", "31/12/2023", "Window end (DD/MM/YYYY)")

	flag.BoolVar(&cfg.search.customers, "search-customers", false, "Search customers instead of bookings")
	flag.IntVar(&cfg.search.bookingID, "booking-id", 0, "Filter by booking ID")
	flag.IntVar(&cfg.search.customerID, "customer-id", 0, "Filter by customer ID")
	flag.IntVar(&cfg.search.showID, "show-id", 0, "Filter by show ID")
	flag.StringVar(&cfg.search.name, "name", "", "Filter by customer name fragment")
	flag.StringVar(&cfg.search.date, "date", "", "Filter by booking date (DD/MM/YYYY)")
	flag.StringVar(&cfg.search.category, "category", "", "Filter by customer category")

	flag.IntVar(&cfg.reportID, "report", 0, "Booking ID to build a report for")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := repository.Open(cfg.dbPath)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.dbPath, "error", err)
		return err
	}
	defer store.Close()

	app := &application{
		config:       cfg,
		logger:       logger,
		validator:    appvalidator.NewValidator(),
		out:          os.Stdout,
		customerRepo: repository.NewSQLiteCustomerRepository(store),
		showRepo:     repository.NewSQLiteShowRepository(store),
		bookingRepo:  repository.NewSQLiteBookingRepository(store),
		counter:      store,
	}

	ctx := context.Background()

	switch {
	case cfg.generate.enabled:
		err = app.runGenerate(ctx)
	case cfg.reportID > 0:
		err = app.runReport(ctx, cfg.reportID)
	default:
		err = app.runSearch(ctx)
	}

	if err != nil {
		logger.Error("operation failed", "error", err)
	}

	return err
}

func (app *application) assembler() *report.Assembler {
	return report.NewAssembler(app.bookingRepo)
}

func parseWindowDate(value string) (time.Time, error) {
	t, err := time.Parse(windowLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY: %w", value, err)
	}

	return t, nil
}
