// Package receipt renders bills as plain-text receipts.
//
// A Sheet carries everything a receipt shows; the calculator package builds
// one per bill variant and this package lays it out. Money is always shown
// with exactly two decimals.
package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Field is one labelled summary value printed below the entries.
type Field struct {
	Label string
	Value string
}

// Sheet is the content of a single receipt.
type Sheet struct {
	// Title names the bill kind, e.g. "GroceryBill".
	Title string
	Clerk string
	// Preferred is printed only when non-nil.
	Preferred *bool
	// Rows are the formatted entry lines in insertion order.
	Rows    []string
	Summary []Field
}

// Money formats v with two decimals.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent formats v with two decimals and a trailing percent sign.
func Percent(v float64) string {
	return Money(v) + "%"
}

// Count formats an integer statistic.
func Count(n int) string {
	return fmt.Sprintf("%d", n)
}

// ItemRow is a flat-bill entry as printed on a plain receipt.
func ItemRow(name string, price, discount float64) string {
	return fmt.Sprintf("%-12s  Price: %6s  Discount: %5s", name, Money(price), Money(discount))
}

// DiscountedItemRow is a flat-bill entry after the preferred discount.
func DiscountedItemRow(name string, price, discount float64) string {
	return fmt.Sprintf("%-12s  After: %6s  (Orig: %5s, Disc: %4s)",
		name, Money(price-discount), Money(price), Money(discount))
}

// UndiscountedItemRow is a flat-bill entry on a discount receipt that got no discount.
func UndiscountedItemRow(name string, price float64) string {
	return fmt.Sprintf("%-12s  Price: %6s (No discount)", name, Money(price))
}

// LineRow is a quantity-bill line at full price.
func LineRow(quantity int, name string, lineTotal, unitPrice float64) string {
	return fmt.Sprintf("%dx %-10s  Line: %6s (Unit: %5s)", quantity, name, Money(lineTotal), Money(unitPrice))
}

// DiscountedLineRow is a quantity-bill line after the preferred discount.
func DiscountedLineRow(quantity int, name string, unitPrice, unitDiscount float64) string {
	after := (unitPrice - unitDiscount) * float64(quantity)
	return fmt.Sprintf("%dx %-10s  After: %6s (Orig/unit: %5s, Disc/unit: %4s)",
		quantity, name, Money(after), Money(unitPrice), Money(unitDiscount))
}

// String renders the sheet.
func String(s Sheet) string {
	var b strings.Builder
	header := fmt.Sprintf("----- Receipt (%s) -----", s.Title)
	b.WriteString(header)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Clerk: %s\n", s.Clerk)
	if s.Preferred != nil {
		fmt.Fprintf(&b, "Preferred customer: %s\n", yesNo(*s.Preferred))
	}
	for _, row := range s.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	for _, f := range s.Summary {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")
	return b.String()
}

// Render writes the sheet to w.
func Render(w io.Writer, s Sheet) error {
	if _, err := io.WriteString(w, String(s)); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
