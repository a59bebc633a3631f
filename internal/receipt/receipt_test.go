package receipt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{4.5, "4.50"},
		{3, "3.00"},
		{12.345, "12.35"},
		{-1.2, "-1.20"},
		{0.1 + 0.2, "0.30"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"item", ItemRow("Milk", 3, 0.5), "Milk          Price:   3.00  Discount:  0.50"},
		{"discounted item", DiscountedItemRow("Milk", 3, 0.5), "Milk          After:   2.50  (Orig:  3.00, Disc: 0.50)"},
		{"undiscounted item", UndiscountedItemRow("Bread", 2), "Bread         Price:   2.00 (No discount)"},
		{"line", LineRow(3, "Soap", 15, 5), "3x Soap        Line:  15.00 (Unit:  5.00)"},
		{"discounted line", DiscountedLineRow(3, "Soap", 5, 1), "3x Soap        After:  12.00 (Orig/unit:  5.00, Disc/unit: 1.00)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got  %q\nwant %q", tt.got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	preferred := true
	out := String(Sheet{
		Title:     "DiscountBill",
		Clerk:     "Ann",
		Preferred: &preferred,
		Rows:      []string{"first", "second"},
		Summary:   []Field{{Label: "Total", Value: "4.50"}},
	})

	want := strings.Join([]string{
		"----- Receipt (DiscountBill) -----",
		"Clerk: Ann",
		"Preferred customer: YES",
		"first",
		"second",
		"Total: 4.50",
		"----------------------------------",
		"",
		"",
	}, "\n")
	if out != want {
		t.Errorf("String() =\n%s\nwant\n%s", out, want)
	}
}

func TestStringOmitsPreferredWhenUnset(t *testing.T) {
	out := String(Sheet{Title: "GroceryBill", Clerk: "Ann"})
	if strings.Contains(out, "Preferred customer") {
		t.Errorf("unexpected preferred line in %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	s := Sheet{Title: "GroceryBill", Clerk: "Ann"}
	if err := Render(&buf, s); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != String(s) {
		t.Errorf("Render wrote %q, want %q", buf.String(), String(s))
	}

	if err := Render(failingWriter{}, s); err == nil {
		t.Error("expected error from failing writer")
	}
}
