// Package pricing holds the box-office discount policy: a flat weekday
// discount on Wednesdays and a senior discount for customers over 65,
// composed multiplicatively in that fixed order.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Weekday numbers days Monday=0 through Sunday=6.
type Weekday int

// Days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// SeniorAge is the age above which the senior discount applies.
const SeniorAge = 65

var (
	// DefaultBasePrice is the standard ticket price before discounts.
	DefaultBasePrice = decimal.NewFromInt(10)

	wednesdayFactor = decimal.RequireFromString("0.8")
	seniorFactor    = decimal.RequireFromString("0.7")
)

// WeekdayOf converts a time to the Monday-based weekday scheme.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday is Sunday-based.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Quote returns the ticket price for the given base rate, day, and customer
// age: 20% off on Wednesdays, then a further 30% off above SeniorAge.
func Quote(base decimal.Decimal, day Weekday, age int) decimal.Decimal {
	price := base
	if day == Wednesday {
		price = price.Mul(wednesdayFactor)
	}
	if age > SeniorAge {
		price = price.Mul(seniorFactor)
	}
	return price
}

// DisplayBase returns the rate shown for unreserved seats: the base price
// with only the weekday discount applied. Age discounts are granted per
// reservation, not advertised on the listing.
func DisplayBase(base decimal.Decimal, day Weekday) decimal.Decimal {
	if day == Wednesday {
		return base.Mul(wednesdayFactor)
	}
	return base
}
