package domain

// RowCounts is the per-table summary returned after a generation run.
type RowCounts struct {
	Customers int
	Shows     int
	Bookings  int
	Seats     int
}
