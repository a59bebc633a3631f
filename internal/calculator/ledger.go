// Package calculator computes bill totals and discount statistics.
//
// Every bill variant is backed by the same ledger: an ordered list of
// (item, quantity) entries, a Pricing that decides whether discounts apply,
// and a Counting that decides how discounted entries are counted. Flat bills
// store each item with quantity 1.
package calculator

import "github.com/mmynk/grocerybill/internal/models"

// Pricing selects how entries are priced.
type Pricing int

const (
	// FlatPricing charges the full price and reports no discounts.
	FlatPricing Pricing = iota
	// PreferredPricing subtracts each entry's discount.
	PreferredPricing
)

// PricingFor maps the preferred-customer flag to a Pricing.
func PricingFor(preferred bool) Pricing {
	if preferred {
		return PreferredPricing
	}
	return FlatPricing
}

func (p Pricing) String() string {
	if p == PreferredPricing {
		return "preferred"
	}
	return "flat"
}

// Counting selects how discounted entries contribute to the discount count.
type Counting int

const (
	// PerEntry counts each discounted entry once.
	PerEntry Counting = iota
	// PerUnit counts every unit on a discounted line.
	PerUnit
)

type entry struct {
	item     *models.Item
	quantity int
}

func (e entry) lineTotal() float64 {
	return e.item.Price() * float64(e.quantity)
}

func (e entry) lineDiscountTotal() float64 {
	return e.item.Discount() * float64(e.quantity)
}

// ledger holds a bill's entries. Nothing is cached: every query walks the
// current entries.
type ledger struct {
	clerk    models.Employee
	entries  []entry
	pricing  Pricing
	counting Counting
}

func newLedger(clerk models.Employee, pricing Pricing, counting Counting) ledger {
	return ledger{clerk: clerk, pricing: pricing, counting: counting}
}

func (l *ledger) add(item *models.Item, quantity int) error {
	if item == nil {
		return models.ErrMissingItem
	}
	l.entries = append(l.entries, entry{item: item, quantity: quantity})
	return nil
}

func (l *ledger) preferred() bool {
	return l.pricing == PreferredPricing
}

// baseTotal is the undiscounted total.
func (l *ledger) baseTotal() float64 {
	var sum float64
	for _, e := range l.entries {
		sum += e.lineTotal()
	}
	return sum
}

// total subtracts discounts entry by entry so rounding follows the
// per-entry accumulation rather than a single final subtraction.
func (l *ledger) total() float64 {
	if !l.preferred() {
		return l.baseTotal()
	}
	var sum float64
	for _, e := range l.entries {
		sum += e.lineTotal() - e.lineDiscountTotal()
	}
	return sum
}

func (l *ledger) discountCount() int {
	if !l.preferred() {
		return 0
	}
	var count int
	for _, e := range l.entries {
		if e.item.Discount() <= 0 {
			continue
		}
		if l.counting == PerUnit {
			count += e.quantity
		} else {
			count++
		}
	}
	return count
}

func (l *ledger) discountAmount() float64 {
	if !l.preferred() {
		return 0
	}
	var sum float64
	for _, e := range l.entries {
		sum += e.lineDiscountTotal()
	}
	return sum
}

func (l *ledger) discountPercent() float64 {
	if !l.preferred() {
		return 0
	}
	before := l.baseTotal()
	if before == 0 {
		return 0
	}
	return (l.discountAmount() / before) * 100
}
