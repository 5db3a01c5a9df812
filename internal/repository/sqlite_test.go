package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"boxoffice/internal/domain"
)

type StoreTestSuite struct {
	suite.Suite
	store     *Store
	customers *SQLiteCustomerRepository
	shows     *SQLiteShowRepository
	bookings  *SQLiteBookingRepository
	ctx       context.Context
}

func (s *StoreTestSuite) SetupTest() {
	store, err := Open(":memory:")
	s.Require().NoError(err)

	s.store = store
	s.customers = NewSQLiteCustomerRepository(store)
	s.shows = NewSQLiteShowRepository(store)
	s.bookings = NewSQLiteBookingRepository(store)
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	s.store.Close()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

// seedBooking inserts one customer, one show, and one booking with the given
// seats, returning the booking's assigned id.
func (s *StoreTestSuite) seedBooking(
	customer domain.Customer,
	show domain.Show,
	bookingDate time.Time,
	totalPrice decimal.Decimal,
	seatLabels ...string,
) int {
	s.Require().NoError(s.customers.CreateBatch(s.ctx, []domain.Customer{customer}))
	s.Require().NoError(s.shows.CreateBatch(s.ctx, []domain.Show{show}))

	all, err := s.customers.GetAll(s.ctx)
	s.Require().NoError(err)
	customerID := all[len(all)-1].ID

	allShows, err := s.shows.GetAll(s.ctx)
	s.Require().NoError(err)
	showID := allShows[len(allShows)-1].ID

	seats := make([]domain.Seat, len(seatLabels))
	for i, label := range seatLabels {
		seats[i] = domain.Seat{Label: label, Price: totalPrice, Status: domain.SeatStatusBooked}
	}

	err = s.bookings.CreateBatch(s.ctx, []domain.GeneratedBooking{{
		Booking: domain.Booking{
			CustomerID: customerID,
			ShowID:     showID,
			Date:       bookingDate,
			TotalPrice: totalPrice,
		},
		Seats: seats,
	}})
	s.Require().NoError(err)

	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{CustomerID: customerID})
	s.Require().NoError(err)
	s.Require().NotEmpty(rows)

	return rows[0].BookingID
}

func (s *StoreTestSuite) TestSearchReturnsEmptySliceWhenNothingMatches() {
	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{BookingID: 12345})

	s.NoError(err)
	s.Empty(rows)
}

func (s *StoreTestSuite) TestGetDetailNotFound() {
	detail, err := s.bookings.GetDetail(s.ctx, 12345)

	s.ErrorIs(err, domain.ErrRecordNotFound)
	s.Nil(detail)
}

func (s *StoreTestSuite) TestGetDetailJoinsCustomerShowAndSeats() {
	bookingID := s.seedBooking(
		domain.Customer{Name: "Eleanor Rigby", Phone: "07111 222333", Category: domain.CategoryVIP},
		domain.Show{Title: "The Opera with James Holt", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Venue: "Royal Albert Hall"},
		time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC),
		decimal.Zero,
		"C5", "C6",
	)

	detail, err := s.bookings.GetDetail(s.ctx, bookingID)
	s.Require().NoError(err)

	s.Equal("Eleanor Rigby", detail.CustomerName)
	s.Equal(domain.CategoryVIP, detail.Category)
	s.Equal("The Opera with James Holt", detail.ShowTitle)
	s.Equal("Royal Albert Hall", detail.Venue)
	s.Equal("0.00", detail.TotalPrice.StringFixed(2))

	s.Require().Len(detail.Seats, 2)
	s.Equal("C5", detail.Seats[0].Label)
	s.Equal("C6", detail.Seats[1].Label)
	s.Equal(domain.SeatStatusBooked, detail.Seats[0].Status)
}

func (s *StoreTestSuite) TestSearchMatchesNameFragmentCaseInsensitively() {
	s.seedBooking(
		domain.Customer{Name: "Eleanor Rigby", Phone: "07111 222333", Category: domain.CategoryAdult},
		domain.Show{Title: "The Concert", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Venue: "O2 Arena"},
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"A1",
	)
	s.seedBooking(
		domain.Customer{Name: "John Smith", Phone: "07444 555666", Category: domain.CategoryAdult},
		domain.Show{Title: "The Ballet", Date: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), Venue: "Theatre Royal"},
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"B1",
	)

	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{NameFragment: "RIGBY"})
	s.Require().NoError(err)

	s.Require().Len(rows, 1)
	s.Equal("Eleanor Rigby", rows[0].CustomerName)
}

func (s *StoreTestSuite) TestCustomerSearchTreatsWildcardsAsLiterals() {
	s.Require().NoError(s.customers.CreateBatch(s.ctx, []domain.Customer{
		{Name: "100% Events Ltd", Phone: "07000 000001", Category: domain.CategoryAdult},
		{Name: "100 Events Ltd", Phone: "07000 000002", Category: domain.CategoryAdult},
	}))

	customers, err := s.customers.Search(s.ctx, domain.BookingFilter{NameFragment: "100%"})
	s.Require().NoError(err)

	s.Require().Len(customers, 1)
	s.Equal("100% Events Ltd", customers[0].Name)
}

func (s *StoreTestSuite) TestSearchOrdersByBookingDateDescending() {
	s.seedBooking(
		domain.Customer{Name: "Early Bird", Phone: "07000 000001", Category: domain.CategoryAdult},
		domain.Show{Title: "Show One", Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Venue: "O2 Arena"},
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"A1",
	)
	s.seedBooking(
		domain.Customer{Name: "Late Comer", Phone: "07000 000002", Category: domain.CategoryAdult},
		domain.Show{Title: "Show Two", Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Venue: "O2 Arena"},
		time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"A2",
	)

	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("Late Comer", rows[0].CustomerName)
	s.Equal("Early Bird", rows[1].CustomerName)
}

func (s *StoreTestSuite) TestSearchByExactBookingDate() {
	s.seedBooking(
		domain.Customer{Name: "Eleanor Rigby", Phone: "07111 222333", Category: domain.CategoryAdult},
		domain.Show{Title: "The Concert", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Venue: "O2 Arena"},
		time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"A1",
	)

	date := time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC)
	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{Date: &date})
	s.Require().NoError(err)
	s.Len(rows, 1)

	other := time.Date(2023, 5, 21, 0, 0, 0, 0, time.UTC)
	rows, err = s.bookings.Search(s.ctx, domain.BookingFilter{Date: &other})
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *StoreTestSuite) TestSearchReportsSeatCount() {
	s.seedBooking(
		domain.Customer{Name: "Big Party", Phone: "07999 888777", Category: domain.CategoryAdult},
		domain.Show{Title: "The Musical", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Venue: "London Palladium"},
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10),
		"D3", "D4", "D5",
	)

	rows, err := s.bookings.Search(s.ctx, domain.BookingFilter{Category: domain.CategoryAdult})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Equal(3, rows[0].SeatCount)
}

func (s *StoreTestSuite) TestCustomerSearchByCategory() {
	s.Require().NoError(s.customers.CreateBatch(s.ctx, []domain.Customer{
		{Name: "Alice Adult", Phone: "07000 000001", Category: domain.CategoryAdult},
		{Name: "Charlie Child", Phone: "07000 000002", Category: domain.CategoryChild},
		{Name: "Sam Senior", Phone: "07000 000003", Category: domain.CategorySenior},
	}))

	customers, err := s.customers.Search(s.ctx, domain.BookingFilter{Category: domain.CategoryChild})
	s.Require().NoError(err)

	s.Require().Len(customers, 1)
	s.Equal("Charlie Child", customers[0].Name)
}

func (s *StoreTestSuite) TestBookingBatchRollsBackAsOne() {
	s.Require().NoError(s.customers.CreateBatch(s.ctx, []domain.Customer{
		{Name: "Only Customer", Phone: "07000 000001", Category: domain.CategoryAdult},
	}))
	s.Require().NoError(s.shows.CreateBatch(s.ctx, []domain.Show{
		{Title: "Only Show", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Venue: "O2 Arena"},
	}))

	batch := []domain.GeneratedBooking{
		{
			Booking: domain.Booking{CustomerID: 1, ShowID: 1, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), TotalPrice: decimal.NewFromInt(10)},
			Seats:   []domain.Seat{{Label: "A1", Price: decimal.NewFromInt(10), Status: domain.SeatStatusBooked}},
		},
		{
			// References a customer that does not exist; the whole batch
			// must roll back.
			Booking: domain.Booking{CustomerID: 999, ShowID: 1, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), TotalPrice: decimal.NewFromInt(10)},
		},
	}

	err := s.bookings.CreateBatch(s.ctx, batch)
	s.Error(err)

	counts, err := s.store.Counts(s.ctx)
	s.Require().NoError(err)
	s.Zero(counts.Bookings)
	s.Zero(counts.Seats)
}

func (s *StoreTestSuite) TestCountsOnEmptyStore() {
	counts, err := s.store.Counts(s.ctx)

	s.NoError(err)
	s.Equal(domain.RowCounts{}, counts)
}
