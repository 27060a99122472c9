// Package console implements the interactive box-office desk: a prompt loop
// over an input/output pair that lets a member of staff reserve seats one at
// a time for the current day.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/cinema-desk/internal/domain/hall"
	"github.com/xenking/cinema-desk/internal/domain/pricing"
)

// maxAge bounds the accepted customer age.
const maxAge = 110

// Summary reports what happened during a desk session.
type Summary struct {
	Reservations int
	Rejections   int
}

// Desk drives the reservation loop for a single hall. Input is read line by
// line; all user-facing text goes to the writer, never to the log.
type Desk struct {
	hall *hall.Hall
	base decimal.Decimal
	in   *bufio.Scanner
	out  io.Writer
	now  func() time.Time
}

// NewDesk creates a desk serving the given hall at the given base ticket price.
func NewDesk(h *hall.Hall, base decimal.Decimal, in io.Reader, out io.Writer) *Desk {
	return &Desk{
		hall: h,
		base: base,
		in:   bufio.NewScanner(in),
		out:  out,
		now:  time.Now,
	}
}

// Run shows the seat listing, loops reserving seats until the operator
// declines or input ends, then shows the listing again. Input validation
// happens before the hall is touched; a rejected attempt re-prompts without
// mutating any seat. The weekday is resolved anew on every attempt.
func (d *Desk) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	fmt.Fprintln(d.out, d.hall.ListSeats(d.today(), d.base))

	for ctx.Err() == nil {
		again, err := d.reserveOne(&sum)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return sum, err
		}
		if !again {
			break
		}
	}

	fmt.Fprintln(d.out, d.hall.ListSeats(d.today(), d.base))

	return sum, nil
}

// parseError marks operator input that is not a number. Unlike a read
// failure, it keeps the session alive.
type parseError struct {
	input string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%q is not a whole number", e.input)
}

// reserveOne runs a single pass of the loop. It reports whether the operator
// wants another pass; io.EOF means the input ended.
func (d *Desk) reserveOne(sum *Summary) (bool, error) {
	row, err := d.promptInt("Enter the row number for the reservation: ")
	if err != nil {
		return d.inputFailed(sum, err)
	}
	number, err := d.promptInt("Enter the seat number in that row: ")
	if err != nil {
		return d.inputFailed(sum, err)
	}
	age, err := d.promptInt("Enter the customer's age: ")
	if err != nil {
		return d.inputFailed(sum, err)
	}

	if err := d.validate(number, row, age); err != nil {
		return d.rejected(sum, err)
	}

	conf, err := d.hall.Reserve(number, row, age, d.today(), d.base)
	if err != nil {
		return d.rejected(sum, err)
	}

	sum.Reservations++
	fmt.Fprintln(d.out, conf)

	answer, err := d.promptLine("Reserve another seat? (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// validate checks the operator's input against the hall's current bounds
// before any hall operation runs.
func (d *Desk) validate(number, row, age int) error {
	if max := d.hall.SeatsPerRowCount(); number < 1 || number > max {
		return errors.Errorf("seat number must be between 1 and %d", max)
	}
	if max := d.hall.RowCount(); row < 1 || row > max {
		return errors.Errorf("row number must be between 1 and %d", max)
	}
	if age < 0 || age > maxAge {
		return errors.Errorf("age must be between 0 and %d", maxAge)
	}
	return nil
}

// rejected prints the error and keeps the loop going, matching the desk's
// retry-on-error behaviour.
func (d *Desk) rejected(sum *Summary, err error) (bool, error) {
	sum.Rejections++
	fmt.Fprintf(d.out, "Error: %v\n", err)
	return true, nil
}

// inputFailed routes prompt errors: malformed numbers re-prompt, while EOF
// and read failures end the session.
func (d *Desk) inputFailed(sum *Summary, err error) (bool, error) {
	var pe *parseError
	if errors.As(err, &pe) {
		return d.rejected(sum, err)
	}
	return false, err
}

func (d *Desk) promptLine(prompt string) (string, error) {
	fmt.Fprint(d.out, prompt)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return d.in.Text(), nil
}

func (d *Desk) promptInt(prompt string) (int, error) {
	line, err := d.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &parseError{input: trimmed}
	}
	return n, nil
}

func (d *Desk) today() pricing.Weekday {
	return pricing.WeekdayOf(d.now())
}
