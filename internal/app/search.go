package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"boxoffice/internal/domain"
	"boxoffice/internal/report"
)

const noResults = "No results found."

func (app *application) runSearch(ctx context.Context) error {
	filter, err := app.buildFilter()
	if err != nil {
		return err
	}

	if app.config.search.customers {
		return app.searchCustomers(ctx, filter)
	}

	return app.searchBookings(ctx, filter)
}

func (app *application) buildFilter() (domain.BookingFilter, error) {
	cfg := app.config.search

	filter := domain.BookingFilter{
		BookingID:    cfg.bookingID,
		CustomerID:   cfg.customerID,
		ShowID:       cfg.showID,
		NameFragment: cfg.name,
		Category:     domain.Category(cfg.category),
	}

	if cfg.date != "" {
		date, err := parseWindowDate(cfg.date)
		if err != nil {
			return domain.BookingFilter{}, err
		}
		filter.Date = &date
	}

	if err := app.validator.Struct(filter); err != nil {
		return domain.BookingFilter{}, fmt.Errorf("invalid search criteria: %w", err)
	}

	return filter, nil
}

func (app *application) searchBookings(ctx context.Context, filter domain.BookingFilter) error {
	rows, err := app.bookingRepo.Search(ctx, filter)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(app.out, noResults)
		return nil
	}

	tw := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Booking ID\tCustomer\tCategory\tShow\tBooking Date\tSeats\tTotal Price")

	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			row.BookingID,
			row.CustomerName,
			row.Category,
			row.ShowTitle,
			report.FormatDate(row.BookingDate),
			row.SeatCount,
			report.FormatPrice(row.TotalPrice),
		)
	}

	return tw.Flush()
}

func (app *application) searchCustomers(ctx context.Context, filter domain.BookingFilter) error {
	customers, err := app.customerRepo.Search(ctx, filter)
	if err != nil {
		return err
	}

	if len(customers) == 0 {
		fmt.Fprintln(app.out, noResults)
		return nil
	}

	tw := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Customer ID\tName\tPhone\tCategory")

	for _, c := range customers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Category)
	}

	return tw.Flush()
}
