package hall

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for hall construction.
var (
	ErrInvalidRows        = errors.New("row count must be a positive integer")
	ErrInvalidSeatsPerRow = errors.New("seats per row must be a positive integer")
)

// SeatNotFoundError indicates a referenced seat does not exist in the hall.
type SeatNotFoundError struct {
	Number int
	Row    int
}

func (e *SeatNotFoundError) Error() string {
	return fmt.Sprintf("seat %d in row %d does not exist", e.Number, e.Row)
}

// AlreadyReservedError indicates a reservation attempt on an occupied seat.
type AlreadyReservedError struct {
	Number int
	Row    int
}

func (e *AlreadyReservedError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already reserved", e.Number, e.Row)
}

// NotReservedError indicates a cancellation attempt on a free seat.
type NotReservedError struct {
	Number int
	Row    int
}

func (e *NotReservedError) Error() string {
	return fmt.Sprintf("seat %d in row %d is not reserved", e.Number, e.Row)
}

// DuplicateSeatError indicates an insertion of a seat whose (number, row)
// identity already exists in the hall.
type DuplicateSeatError struct {
	Number int
	Row    int
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already registered in the hall", e.Number, e.Row)
}

// RowOutOfRangeError indicates an insertion targeting a row beyond the last
// row in the hall. New rows cannot be created by insertion.
type RowOutOfRangeError struct {
	Row      int
	FirstRow int
	LastRow  int
}

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row %d is beyond the last row in the hall; seats can only be added to rows %d through %d",
		e.Row, e.FirstRow, e.LastRow)
}

// NonSequentialNumberError indicates an insertion whose seat number is not
// the immediate successor of the hall's final seat.
type NonSequentialNumberError struct {
	Number int
	Next   int
}

func (e *NonSequentialNumberError) Error() string {
	return fmt.Sprintf("seat number %d is out of order; the next available seat number is %d",
		e.Number, e.Next)
}
