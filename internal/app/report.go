package app

import (
	"context"
	"errors"
	"fmt"

	"boxoffice/internal/domain"
)

func (app *application) runReport(ctx context.Context, bookingID int) error {
	rep, err := app.assembler().Build(ctx, bookingID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		// A missing booking is a normal outcome, not a failure.
		fmt.Fprintf(app.out, "Booking %d not found.\n", bookingID)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprint(app.out, rep.Render())

	return nil
}
