package domain

// The fixtures below are the literal record sets the emitters run on.
// Each call returns a fresh slice so callers can never alias each other.

// DefaultNames is the four-name set written by the names emitter.
func DefaultNames() []NameRecord {
	return []NameRecord{
		{Name: "Alice"},
		{Name: "Bob"},
		{Name: "Charlie"},
		{Name: "Diana"},
	}
}

// DefaultPeople is the three-person set written by the people emitter.
func DefaultPeople() []Person {
	return []Person{
		{Name: "Alice", Age: 25, Department: "Engineering"},
		{Name: "Bob", Age: 30, Department: "Sales"},
		{Name: "Charlie", Age: 35, Department: "Marketing"},
	}
}

// ElectronicsSales is the product set behind the sales emitter.
func ElectronicsSales() []SaleLine {
	return []SaleLine{
		{Product: "Laptop", Quantity: 50, Price: Dollars(999, 99)},
		{Product: "Mouse", Quantity: 200, Price: Dollars(29, 99)},
		{Product: "Keyboard", Quantity: 150, Price: Dollars(79, 99)},
	}
}

// WidgetSales is the product set behind the sales report emitter.
func WidgetSales() []SaleLine {
	return []SaleLine{
		{Product: "Widget", Quantity: 100, Price: Dollars(10, 0)},
		{Product: "Gadget", Quantity: 150, Price: Dollars(20, 0)},
		{Product: "Doohickey", Quantity: 200, Price: Dollars(15, 0)},
	}
}

// DefaultOrders is the order set behind the orders emitter.
func DefaultOrders() []Order {
	return []Order{
		{ID: 1, Customer: "Alice", Amount: Dollars(150, 0)},
		{ID: 2, Customer: "Bob", Amount: Dollars(200, 50)},
		{ID: 3, Customer: "Charlie", Amount: Dollars(99, 99)},
	}
}
