package booking

import (
	"fmt"
	"math"
	"time"
)

// StayPeriod is a half-open [checkIn, checkOut) interval.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Duration() time.Duration {
	return p.checkOut.Sub(p.checkIn)
}

// Nights counts billable nights, rounding partial nights up.
func (p StayPeriod) Nights() int {
	return int(math.Ceil(p.Duration().Hours() / 24))
}

func (p StayPeriod) Hours() int {
	return int(math.Ceil(p.Duration().Hours()))
}

func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.RFC3339), p.checkOut.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

type GuestCount struct {
	value int
}

func NewGuestCount(value, capacity int) (GuestCount, error) {
	if value <= 0 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	if capacity > 0 && value > capacity {
		return GuestCount{}, ErrGuestsExceedCapacity
	}
	return GuestCount{value: value}, nil
}

func (g GuestCount) Value() int {
	return g.value
}
