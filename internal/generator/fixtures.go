package generator

// Fixed vocabularies for synthesized shows and seat allocation.
var (
	venues = []string{
		"Royal Albert Hall",
		"O2 Arena",
		"Wembley Stadium",
		"Barbican Centre",
		"Royal Opera House",
		"SSE Arena",
		"Theatre Royal",
		"London Palladium",
		"Shakespeare's Globe",
	}

	showPrefixes = []string{"The", "A Night of", "Royal", "Classic", "Modern", "Live"}

	showNouns = []string{
		"Concert",
		"Ballet",
		"Opera",
		"Play",
		"Musical",
		"Symphony",
		"Performance",
	}

	// seatRows deliberately skips "I" to avoid confusion with "1" on
	// printed tickets.
	seatRows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "J", "K"}
)

const seatsPerRow = 20
