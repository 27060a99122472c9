// Package hall models a single cinema auditorium for one day of operation:
// an ordered set of seats plus the reservation, cancellation, insertion,
// and listing operations the box-office desk works with.
package hall

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/cinema-desk/internal/domain/pricing"
	"github.com/xenking/cinema-desk/internal/domain/seat"
)

// Hall is an auditorium owning its seats exclusively. The seat slice is kept
// sorted by (row, number) at all times; the insertion contract in AddSeat
// depends on that ordering.
type Hall struct {
	seats []*seat.Seat
	now   func() time.Time
}

// New creates a hall with a full rectangular grid of unreserved seats,
// numbered 1..seatsPerRow within each of rows 1..rows.
func New(rows, seatsPerRow int) (*Hall, error) {
	if rows <= 0 {
		return nil, ErrInvalidRows
	}
	if seatsPerRow <= 0 {
		return nil, ErrInvalidSeatsPerRow
	}

	seats := make([]*seat.Seat, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			s, err := seat.New(number, row)
			if err != nil {
				return nil, err
			}
			seats = append(seats, s)
		}
	}

	return &Hall{seats: seats, now: time.Now}, nil
}

// RowCount returns the number of distinct rows currently present. Derived
// from the live seat set rather than the construction parameters, so it
// reflects seats added after construction.
func (h *Hall) RowCount() int {
	rows := make(map[int]struct{}, len(h.seats))
	for _, s := range h.seats {
		rows[s.Row()] = struct{}{}
	}
	return len(rows)
}

// SeatsPerRowCount returns the number of distinct seat numbers currently
// present across all rows.
func (h *Hall) SeatsPerRowCount() int {
	numbers := make(map[int]struct{}, len(h.seats))
	for _, s := range h.seats {
		numbers[s.Number()] = struct{}{}
	}
	return len(numbers)
}

// FindSeat scans for the seat with the given number and row. Absence is a
// normal outcome, not an error.
func (h *Hall) FindSeat(number, row int) (*seat.Seat, bool) {
	for _, s := range h.seats {
		if s.Number() == number && s.Row() == row {
			return s, true
		}
	}
	return nil, false
}

// Seats returns the seats in hall order. The slice is a copy; the seats are
// the hall's own.
func (h *Hall) Seats() []*seat.Seat {
	out := make([]*seat.Seat, len(h.seats))
	copy(out, h.seats)
	return out
}

// Confirmation describes a completed reservation.
type Confirmation struct {
	TicketID uuid.UUID
	Number   int
	Row      int
	Price    decimal.Decimal
}

func (c *Confirmation) String() string {
	return fmt.Sprintf("Seat %d in row %d has been reserved. Price: %s",
		c.Number, c.Row, c.Price.StringFixed(2))
}

// Reserve books the seat for a customer of the given age at the given base
// rate: 20% off on Wednesdays, then 30% off for customers over 65. The seat
// is mutated only after every check has passed.
func (h *Hall) Reserve(number, row, age int, day pricing.Weekday, base decimal.Decimal) (*Confirmation, error) {
	s, ok := h.FindSeat(number, row)
	if !ok {
		return nil, &SeatNotFoundError{Number: number, Row: row}
	}
	if s.Reserved() {
		return nil, &AlreadyReservedError{Number: number, Row: row}
	}

	price := pricing.Quote(base, day, age)
	s.SetPrice(price)
	s.SetReserved(true)

	return &Confirmation{
		TicketID: uuid.New(),
		Number:   number,
		Row:      row,
		Price:    price,
	}, nil
}

// ReserveToday reserves at the default base price for whatever weekday it is
// right now. The weekday is resolved on every call, not once at start-up.
func (h *Hall) ReserveToday(number, row, age int) (*Confirmation, error) {
	return h.Reserve(number, row, age, pricing.WeekdayOf(h.now()), pricing.DefaultBasePrice)
}

// Cancellation describes a released reservation.
type Cancellation struct {
	Number int
	Row    int
}

func (c *Cancellation) String() string {
	return fmt.Sprintf("Reservation for seat %d in row %d has been cancelled.", c.Number, c.Row)
}

// Cancel releases a reserved seat, resetting its price to zero.
func (h *Hall) Cancel(number, row int) (*Cancellation, error) {
	s, ok := h.FindSeat(number, row)
	if !ok {
		return nil, &SeatNotFoundError{Number: number, Row: row}
	}
	if !s.Reserved() {
		return nil, &NotReservedError{Number: number, Row: row}
	}

	s.SetReserved(false)
	s.SetPrice(decimal.Zero)

	return &Cancellation{Number: number, Row: row}, nil
}

// Addition describes a seat inserted into the hall.
type Addition struct {
	Number int
	Row    int
}

func (a *Addition) String() string {
	return fmt.Sprintf("Seat %d in row %d has been added.", a.Number, a.Row)
}

// AddSeat inserts a seat at its (row, number)-ordered position. Only existing
// rows may be extended, and the seat number must be the immediate successor
// of the hall's final seat — the final seat of the whole hall, not of the
// target row.
func (h *Hall) AddSeat(s *seat.Seat) (*Addition, error) {
	if _, exists := h.FindSeat(s.Number(), s.Row()); exists {
		return nil, &DuplicateSeatError{Number: s.Number(), Row: s.Row()}
	}

	if len(h.seats) > 0 {
		last := h.seats[len(h.seats)-1]
		if s.Row() > last.Row() {
			return nil, &RowOutOfRangeError{
				Row:      s.Row(),
				FirstRow: h.seats[0].Row(),
				LastRow:  last.Row(),
			}
		}
		if s.Number() != last.Number()+1 {
			return nil, &NonSequentialNumberError{
				Number: s.Number(),
				Next:   last.Number() + 1,
			}
		}
	}

	pos := sort.Search(len(h.seats), func(i int) bool {
		other := h.seats[i]
		if s.Row() != other.Row() {
			return s.Row() < other.Row()
		}
		return s.Number() < other.Number()
	})

	h.seats = append(h.seats, nil)
	copy(h.seats[pos+1:], h.seats[pos:])
	h.seats[pos] = s

	return &Addition{Number: s.Number(), Row: s.Row()}, nil
}

// ListSeats renders one line per seat in hall order. Reserved seats show the
// price fixed at reservation time; available seats show the base rate with
// only the weekday discount applied.
func (h *Hall) ListSeats(day pricing.Weekday, base decimal.Decimal) string {
	displayBase := pricing.DisplayBase(base, day)

	var b strings.Builder
	for i, s := range h.seats {
		if i > 0 {
			b.WriteByte('\n')
		}
		status := "Available"
		price := displayBase
		if s.Reserved() {
			status = "Reserved"
			price = s.Price()
		}
		fmt.Fprintf(&b, "Seat %d, row %d: %s, Price: %s", s.Number(), s.Row(), status, price.StringFixed(2))
	}
	return b.String()
}

// ListSeatsToday lists at the default base price for the current weekday,
// resolved per call.
func (h *Hall) ListSeatsToday() string {
	return h.ListSeats(pricing.WeekdayOf(h.now()), pricing.DefaultBasePrice)
}
