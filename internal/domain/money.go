package domain

import "fmt"

// Cents is an amount of money in minor units. Money never travels as float64.
type Cents int64

// Dollars builds an amount from whole and fractional parts, e.g. Dollars(999, 99).
func Dollars(whole, cents int64) Cents {
	if whole < 0 {
		return Cents(whole*100 - cents)
	}
	return Cents(whole*100 + cents)
}

// Times multiplies the amount by a quantity.
func (c Cents) Times(qty int) Cents {
	return c * Cents(qty)
}

// Split returns the sign and the absolute whole and fractional parts.
func (c Cents) Split() (neg bool, whole, cents int64) {
	v := int64(c)
	if v < 0 {
		neg = true
		v = -v
	}
	return neg, v / 100, v % 100
}

// String renders the amount with exactly two decimals and no grouping ("49999.50").
func (c Cents) String() string {
	neg, whole, cents := c.Split()
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, whole, cents)
}
