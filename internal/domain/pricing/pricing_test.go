package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	base := decimal.NewFromInt(10)

	tests := []struct {
		name string
		day  Weekday
		age  int
		want string
	}{
		{name: "no discounts", day: Friday, age: 40, want: "10"},
		{name: "wednesday only", day: Wednesday, age: 40, want: "8"},
		{name: "wednesday at senior boundary", day: Wednesday, age: 65, want: "8"},
		{name: "senior only", day: Tuesday, age: 80, want: "7"},
		{name: "senior just above boundary", day: Thursday, age: 66, want: "7"},
		{name: "wednesday and senior compose", day: Wednesday, age: 80, want: "5.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(base, tt.day, tt.age)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"expected %s, got %s", tt.want, got)
		})
	}
}

func TestDisplayBase(t *testing.T) {
	base := decimal.NewFromInt(10)

	assert.True(t, decimal.NewFromInt(8).Equal(DisplayBase(base, Wednesday)))
	assert.True(t, base.Equal(DisplayBase(base, Monday)))
	assert.True(t, base.Equal(DisplayBase(base, Sunday)))
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want Weekday
	}{
		{date: time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC), want: Monday},
		{date: time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC), want: Wednesday},
		{date: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC), want: Saturday},
		{date: time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC), want: Sunday},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayOf(tt.date), "date %s", tt.date)
	}
}
