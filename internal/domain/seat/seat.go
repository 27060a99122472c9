package seat

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for seat construction.
var (
	ErrInvalidNumber = errors.New("seat number must be a positive integer")
	ErrInvalidRow    = errors.New("seat row must be a positive integer")
)

// Seat is a single bookable unit identified by (row, number). The identity
// fields never change after construction; reservation state and price are
// managed by the owning hall.
type Seat struct {
	number   int
	row      int
	reserved bool
	price    decimal.Decimal
}

// New creates an unreserved, zero-priced seat. Both number and row must be
// strictly positive.
func New(number, row int) (*Seat, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if row <= 0 {
		return nil, ErrInvalidRow
	}
	return &Seat{number: number, row: row, price: decimal.Zero}, nil
}

// Number returns the seat number within its row.
func (s *Seat) Number() int { return s.number }

// Row returns the row the seat belongs to.
func (s *Seat) Row() int { return s.row }

// Reserved reports whether the seat is currently reserved.
func (s *Seat) Reserved() bool { return s.reserved }

// Price returns the price fixed at reservation time, or zero for a free seat.
func (s *Seat) Price() decimal.Decimal { return s.price }

// SetReserved flips the reservation flag. Whether the flip is allowed is the
// hall's decision, not the seat's.
func (s *Seat) SetReserved(reserved bool) { s.reserved = reserved }

// SetPrice sets the seat's price unconditionally.
func (s *Seat) SetPrice(price decimal.Decimal) { s.price = price }
