package app

import (
	"context"
	"fmt"

	"boxoffice/internal/generator"
)

func (app *application) runGenerate(ctx context.Context) error {
	start, err := parseWindowDate(app.config.generate.start)
	if err != nil {
		return err
	}

	end, err := parseWindowDate(app.config.generate.end)
	if err != nil {
		return err
	}

	gen := generator.New(
		app.customerRepo,
		app.showRepo,
		app.bookingRepo,
		app.counter,
		app.validator,
		app.config.seed,
		app.logger,
	)

	counts, err := gen.Run(ctx, generator.Params{
		Customers: app.config.generate.customers,
		Shows:     app.config.generate.shows,
		Bookings:  app.config.generate.bookings,
		Start:     start,
		End:       end,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out, "Database Summary:")
	fmt.Fprintf(app.out, "- Customers: %d\n", counts.Customers)
	fmt.Fprintf(app.out, "- Shows: %d\n", counts.Shows)
	fmt.Fprintf(app.out, "- Bookings: %d\n", counts.Bookings)
	fmt.Fprintf(app.out, "- Seats: %d\n", counts.Seats)

	return nil
}
