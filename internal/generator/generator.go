// Package generator seeds the store with internally consistent sample data:
// customers, shows, bookings, and seats that honor the cross-entity domain
// invariants by construction.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"boxoffice/internal/domain"
	"boxoffice/internal/pricing"
)

var rowIncrement = decimal.NewFromFloat(0.5)

// Params configures one generation run. Start and End bound every generated
// show and booking date, at calendar-date granularity.
type Params struct {
	Customers int       `validate:"gte=0"`
	Shows     int       `validate:"gte=0"`
	Bookings  int       `validate:"gte=0"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required"`
}

// Counter reports per-table row counts for the run summary.
type Counter interface {
	Counts(ctx context.Context) (domain.RowCounts, error)
}

type Generator struct {
	customers domain.CustomerRepository
	shows     domain.ShowRepository
	bookings  domain.BookingRepository
	counter   Counter
	validate  *validator.Validate
	rng       *rand.Rand
	faker     *gofakeit.Faker
	logger    *slog.Logger
}

func New(
	customers domain.CustomerRepository,
	shows domain.ShowRepository,
	bookings domain.BookingRepository,
	counter Counter,
	validate *validator.Validate,
	seed uint64,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		customers: customers,
		shows:     shows,
		bookings:  bookings,
		counter:   counter,
		validate:  validate,
		rng:       rand.New(rand.NewPCG(seed, seed)),
		faker:     gofakeit.New(seed),
		logger:    logger,
	}
}

// Run validates the params and seeds the store in three batches: customers,
// shows, then bookings with their seats. Each batch is transactional; a
// failure mid-batch leaves no partial rows behind. Returns the per-table row
// counts after the run.
func (g *Generator) Run(ctx context.Context, params Params) (domain.RowCounts, error) {
	if err := g.validate.Struct(params); err != nil {
		return domain.RowCounts{}, fmt.Errorf("invalid generation params: %w", err)
	}
	if params.Start.After(params.End) {
		return domain.RowCounts{}, fmt.Errorf("start %s is after end %s: %w",
			params.Start.Format("02/01/2006"), params.End.Format("02/01/2006"), domain.ErrDegenerateWindow)
	}

	if err := g.generateCustomers(ctx, params); err != nil {
		return domain.RowCounts{}, err
	}
	if err := g.generateShows(ctx, params); err != nil {
		return domain.RowCounts{}, err
	}
	if err := g.generateBookings(ctx, params); err != nil {
		return domain.RowCounts{}, err
	}

	counts, err := g.counter.Counts(ctx)
	if err != nil {
		return domain.RowCounts{}, fmt.Errorf("read summary counts: %w", err)
	}

	return counts, nil
}

// generateCustomers seeds the customers table unless it is already
// populated, in which case the existing rows are reused.
func (g *Generator) generateCustomers(ctx context.Context, params Params) error {
	if params.Customers == 0 {
		return nil
	}

	existing, err := g.customers.Count(ctx)
	if err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if existing > 0 {
		g.logger.Info("reusing existing customers", "count", existing)
		return nil
	}

	customers := make([]domain.Customer, params.Customers)
	for i := range customers {
		customers[i] = domain.Customer{
			Name:     g.faker.Name(),
			Phone:    g.faker.Numerify("07### ######"),
			Category: domain.Categories[g.rng.IntN(len(domain.Categories))],
		}
	}

	if err := g.customers.CreateBatch(ctx, customers); err != nil {
		return fmt.Errorf("create customers: %w", err)
	}

	g.logger.Info("generated customers", "count", len(customers))

	return nil
}

func (g *Generator) generateShows(ctx context.Context, params Params) error {
	if params.Shows == 0 {
		return nil
	}

	existing, err := g.shows.Count(ctx)
	if err != nil {
		return fmt.Errorf("count shows: %w", err)
	}
	if existing > 0 {
		g.logger.Info("reusing existing shows", "count", existing)
		return nil
	}

	shows := make([]domain.Show, params.Shows)
	for i := range shows {
		prefix := showPrefixes[g.rng.IntN(len(showPrefixes))]
		noun := showNouns[g.rng.IntN(len(showNouns))]

		shows[i] = domain.Show{
			Title: fmt.Sprintf("%s %s with %s", prefix, noun, g.faker.Name()),
			Date:  g.randomDate(params.Start, params.End),
			Venue: venues[g.rng.IntN(len(venues))],
		}
	}

	if err := g.shows.CreateBatch(ctx, shows); err != nil {
		return fmt.Errorf("create shows: %w", err)
	}

	g.logger.Info("generated shows", "count", len(shows))

	return nil
}

// generateBookings builds the requested bookings against random existing
// customers and shows, drawing each booking date from [Start, min(End,
// show date)] so that no booking postdates its show. Seats for every booking
// are created in the same batch transaction.
func (g *Generator) generateBookings(ctx context.Context, params Params) error {
	if params.Bookings == 0 {
		return nil
	}

	customers, err := g.customers.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	if len(customers) == 0 {
		return fmt.Errorf("no customers to generate bookings for")
	}

	shows, err := g.shows.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load shows: %w", err)
	}
	if len(shows) == 0 {
		return fmt.Errorf("no shows to generate bookings for")
	}

	bookings := make([]domain.GeneratedBooking, params.Bookings)
	seatTotal := 0
	windowStart := dateOnly(params.Start)

	for i := range bookings {
		customer := customers[g.rng.IntN(len(customers))]
		show := shows[g.rng.IntN(len(shows))]

		if show.Date.Before(windowStart) {
			return fmt.Errorf("show %d dated %s before window start: %w",
				show.ID, show.Date.Format("02/01/2006"), domain.ErrDegenerateWindow)
		}

		upper := params.End
		if show.Date.Before(upper) {
			upper = show.Date
		}

		seats := g.randomSeatBlock(customer.Category)
		seatTotal += len(seats)

		bookings[i] = domain.GeneratedBooking{
			Booking: domain.Booking{
				CustomerID: customer.ID,
				ShowID:     show.ID,
				Date:       g.randomDate(params.Start, upper),
				TotalPrice: pricing.PriceFor(customer.Category),
			},
			Seats: seats,
		}
	}

	if err := g.bookings.CreateBatch(ctx, bookings); err != nil {
		return fmt.Errorf("create bookings: %w", err)
	}

	g.logger.Info("generated bookings", "count", len(bookings), "seats", seatTotal)

	return nil
}

// randomSeatBlock allocates 1-4 consecutive seats in one random row. Blocks
// from different bookings may overlap; synthetic data does not enforce seat
// exclusivity across bookings.
func (g *Generator) randomSeatBlock(category domain.Category) []domain.Seat {
	count := g.rng.IntN(4) + 1
	rowIdx := g.rng.IntN(len(seatRows))
	first := g.rng.IntN(seatsPerRow-count+1) + 1

	price := pricing.PriceFor(category).Add(rowIncrement.Mul(decimal.NewFromInt(int64(rowIdx))))

	seats := make([]domain.Seat, count)
	for i := range seats {
		seats[i] = domain.Seat{
			Label:  seatRows[rowIdx] + strconv.Itoa(first+i),
			Price:  price,
			Status: domain.SeatStatusBooked,
		}
	}

	return seats
}

// randomDate draws a uniform calendar date in [start, end], discarding any
// time of day.
func (g *Generator) randomDate(start, end time.Time) time.Time {
	start = dateOnly(start)
	end = dateOnly(end)

	days := int(end.Sub(start).Hours() / 24)

	return start.AddDate(0, 0, g.rng.IntN(days+1))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
