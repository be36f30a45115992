package domain

// NameRecord is a single name to be emitted as a line of text.
type NameRecord struct {
	Name string
}

// Person is a record emitted as part of a structured document.
// Field order here is the field order of the serialized document.
type Person struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Department string `json:"department"`
}

// SaleLine is one product row of a sales table.
type SaleLine struct {
	Product  string
	Quantity int
	Price    Cents
}

// Revenue is quantity times unit price.
func (s SaleLine) Revenue() Cents {
	return s.Price.Times(s.Quantity)
}

// Order is one customer order row.
type Order struct {
	ID       int
	Customer string
	Amount   Cents
}

// AverageAge returns the arithmetic mean of the ages, or 0 for an empty slice.
func AverageAge(people []Person) float64 {
	if len(people) == 0 {
		return 0
	}
	total := 0
	for _, p := range people {
		total += p.Age
	}
	return float64(total) / float64(len(people))
}

// TotalRevenue sums the revenue of every line.
func TotalRevenue(lines []SaleLine) Cents {
	var total Cents
	for _, l := range lines {
		total += l.Revenue()
	}
	return total
}

// TotalAmount sums the amount of every order.
func TotalAmount(orders []Order) Cents {
	var total Cents
	for _, o := range orders {
		total += o.Amount
	}
	return total
}
