package repository

import (
	"sort"
	"strings"
	"time"

	"boxoffice/internal/domain"
)

// Predicate priorities fix the order clauses are compiled in, so identical
// filters always produce identical query text and parameter order.
const (
	prioBookingID = iota
	prioCustomerID
	prioName
	prioDate
	prioCategory
	prioShow
)

type predicate struct {
	priority int
	clause   string
	args     []any
}

// queryBuilder accumulates typed predicates and compiles them onto a base
// statement. Absent criteria never reach the builder, so they contribute no
// clause at all.
type queryBuilder struct {
	predicates []predicate
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{}
}

func (b *queryBuilder) add(priority int, clause string, args ...any) {
	b.predicates = append(b.predicates, predicate{priority: priority, clause: clause, args: args})
}

func (b *queryBuilder) ByBookingID(id int) {
	b.add(prioBookingID, "b.bookings_id = ?", id)
}

func (b *queryBuilder) ByCustomerID(id int) {
	b.add(prioCustomerID, "c.customers_id = ?", id)
}

// likeEscaper neutralizes LIKE metacharacters so a fragment always matches
// as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ByNameFragment matches the fragment case-insensitively as a literal
// substring of the customer's full name.
func (b *queryBuilder) ByNameFragment(fragment string) {
	b.add(prioName, `LOWER(c.name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'`, likeEscaper.Replace(fragment))
}

// ByDate matches bookings on the calendar date, ignoring any time of day
// stored alongside it.
func (b *queryBuilder) ByDate(date time.Time) {
	b.add(prioDate, "DATE(b.booking_date) = ?", date.Format(dateLayout))
}

func (b *queryBuilder) ByCategory(category domain.Category) {
	b.add(prioCategory, "c.type = ?", string(category))
}

func (b *queryBuilder) ByShow(id int) {
	b.add(prioShow, "b.show_id = ?", id)
}

// compile appends the accumulated predicates to base in priority order,
// followed by suffix (typically an ORDER BY clause, or empty).
func (b *queryBuilder) compile(base, suffix string) (string, []any) {
	sort.SliceStable(b.predicates, func(i, j int) bool {
		return b.predicates[i].priority < b.predicates[j].priority
	})

	var sb strings.Builder
	sb.WriteString(base)

	var args []any
	for _, p := range b.predicates {
		sb.WriteString("\n  AND ")
		sb.WriteString(p.clause)
		args = append(args, p.args...)
	}

	if suffix != "" {
		sb.WriteString("\n")
		sb.WriteString(suffix)
	}

	return sb.String(), args
}

// bookingPredicates maps the sparse filter onto the builder. The booking
// search accepts every criterion.
func bookingPredicates(filter domain.BookingFilter) *queryBuilder {
	qb := newQueryBuilder()

	if filter.BookingID > 0 {
		qb.ByBookingID(filter.BookingID)
	}
	if filter.CustomerID > 0 {
		qb.ByCustomerID(filter.CustomerID)
	}
	if filter.NameFragment != "" {
		qb.ByNameFragment(filter.NameFragment)
	}
	if filter.Date != nil {
		qb.ByDate(*filter.Date)
	}
	if filter.Category != "" {
		qb.ByCategory(filter.Category)
	}
	if filter.ShowID > 0 {
		qb.ByShow(filter.ShowID)
	}

	return qb
}

// customerPredicates maps only the customer-relevant criteria; booking and
// show criteria have no meaning against the customers table alone.
func customerPredicates(filter domain.BookingFilter) *queryBuilder {
	qb := newQueryBuilder()

	if filter.CustomerID > 0 {
		qb.ByCustomerID(filter.CustomerID)
	}
	if filter.NameFragment != "" {
		qb.ByNameFragment(filter.NameFragment)
	}
	if filter.Category != "" {
		qb.ByCategory(filter.Category)
	}

	return qb
}
