package domain

import (
	"fmt"
	"strings"
)

// Report is the structured form of a single-booking report, ready for a
// presentation layer to render or print.
type Report struct {
	BookingID        int
	BookingDate      string
	CustomerName     string
	CustomerID       int
	PriceExplanation string
	ShowTitle        string
	Venue            string
	ShowDate         string
	Seats            []string
	TotalPrice       string
}

// Render produces the fixed-layout text form of the report.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("=== Booking Report ===\n")
	fmt.Fprintf(&b, "Booking ID: %d\n", r.BookingID)
	fmt.Fprintf(&b, "Booking Date: %s\n", r.BookingDate)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Customer: %s (ID: %d)\n", r.CustomerName, r.CustomerID)
	fmt.Fprintf(&b, "Price Category: %s\n", r.PriceExplanation)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Show: %s\n", r.ShowTitle)
	fmt.Fprintf(&b, "Venue: %s\n", r.Venue)
	fmt.Fprintf(&b, "Show Date: %s\n", r.ShowDate)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Seats: %s\n", strings.Join(r.Seats, ", "))
	fmt.Fprintf(&b, "Seat Count: %d\n", len(r.Seats))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Price: %s\n", r.TotalPrice)

	return b.String()
}
