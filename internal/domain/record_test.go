package domain

import "testing"

func TestAverageAge(t *testing.T) {
	cases := []struct {
		name   string
		people []Person
		want   float64
	}{
		{"fixture", DefaultPeople(), 30},
		{"empty", nil, 0},
		{"single", []Person{{Name: "Eve", Age: 41}}, 41},
		{"fractional", []Person{{Age: 20}, {Age: 21}}, 20.5},
	}
	for _, c := range cases {
		if got := AverageAge(c.people); got != c.want {
			t.Errorf("%s: AverageAge = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTotals(t *testing.T) {
	if got := TotalRevenue(ElectronicsSales()); got != Dollars(67996, 0) {
		t.Fatalf("electronics revenue = %s, want 67996.00", got)
	}
	if got := TotalRevenue(WidgetSales()); got != Dollars(7000, 0) {
		t.Fatalf("widget revenue = %s, want 7000.00", got)
	}
	if got := TotalAmount(DefaultOrders()); got != Dollars(450, 49) {
		t.Fatalf("orders total = %s, want 450.49", got)
	}
	if got := TotalRevenue(nil); got != 0 {
		t.Fatalf("empty revenue = %s, want 0.00", got)
	}
}

func TestSaleLineRevenue(t *testing.T) {
	l := SaleLine{Product: "Laptop", Quantity: 50, Price: Dollars(999, 99)}
	if got := l.Revenue().String(); got != "49999.50" {
		t.Fatalf("revenue = %q, want 49999.50", got)
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{Dollars(10, 0), "10.00"},
		{Dollars(200, 50), "200.50"},
		{Dollars(-3, 7), "-3.07"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Cents(%d).String() = %q, want %q", int64(c.in), got, c.want)
		}
	}
}

func TestFixturesAreFresh(t *testing.T) {
	a := DefaultNames()
	a[0].Name = "mutated"
	if DefaultNames()[0].Name != "Alice" {
		t.Fatalf("expected fixture to be unaffected by caller mutation")
	}
	if n := len(DefaultNames()); n != 4 {
		t.Fatalf("expected 4 names, got %d", n)
	}
	if n := len(DefaultPeople()); n != 3 {
		t.Fatalf("expected 3 people, got %d", n)
	}
}

func TestValidPhone(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{DefaultPhone, true},
		{"5551234567", true},
		{"(555) 123-4567", true},
		{"555-1234", false},
		{"", false},
		{"phone: none", false},
	}
	for _, c := range cases {
		if got := ValidPhone(c.input); got != c.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestCentsSplit(t *testing.T) {
	neg, whole, cents := Dollars(-3, 7).Split()
	if !neg || whole != 3 || cents != 7 {
		t.Fatalf("Split() = %v, %d, %d", neg, whole, cents)
	}
	neg, whole, cents = Dollars(67996, 0).Split()
	if neg || whole != 67996 || cents != 0 {
		t.Fatalf("Split() = %v, %d, %d", neg, whole, cents)
	}
}
