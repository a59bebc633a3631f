package calculator

import (
	"io"

	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/internal/receipt"
)

// Biller is implemented by every bill variant.
type Biller interface {
	Clerk() models.Employee
	Total() float64
	Receipt() string
	PrintReceipt(w io.Writer) error
}

// DiscountStats is implemented by the preferred-customer variants.
type DiscountStats interface {
	Preferred() bool
	BaseTotal() float64
	DiscountCount() int
	DiscountAmount() float64
	DiscountPercent() float64
}

var (
	_ Biller        = (*Bill)(nil)
	_ Biller        = (*DiscountBill)(nil)
	_ Biller        = (*BillV2)(nil)
	_ Biller        = (*DiscountBillV2)(nil)
	_ DiscountStats = (*DiscountBill)(nil)
	_ DiscountStats = (*DiscountBillV2)(nil)
)

// Bill holds single-unit items.
type Bill struct {
	ledger
}

// NewBill creates an empty flat bill for clerk.
func NewBill(clerk models.Employee) *Bill {
	return &Bill{ledger: newLedger(clerk, FlatPricing, PerEntry)}
}

// Add appends item. Duplicates are kept.
func (b *Bill) Add(item *models.Item) error {
	return b.add(item, 1)
}

// Clerk returns the employee the bill is attributed to.
func (b *Bill) Clerk() models.Employee { return b.clerk }

// Items returns the bill's items in insertion order.
func (b *Bill) Items() []*models.Item {
	items := make([]*models.Item, len(b.entries))
	for i, e := range b.entries {
		items[i] = e.item
	}
	return items
}

// Total returns the sum of the items' prices.
func (b *Bill) Total() float64 { return b.total() }

// Receipt renders the bill.
func (b *Bill) Receipt() string { return receipt.String(b.sheet()) }

// PrintReceipt writes the rendered bill to w.
func (b *Bill) PrintReceipt(w io.Writer) error { return receipt.Render(w, b.sheet()) }

func (b *Bill) sheet() receipt.Sheet {
	rows := make([]string, len(b.entries))
	for i, e := range b.entries {
		rows[i] = receipt.ItemRow(e.item.Name(), e.item.Price(), e.item.Discount())
	}
	return receipt.Sheet{
		Title:   "GroceryBill",
		Clerk:   b.clerk.Name(),
		Rows:    rows,
		Summary: []receipt.Field{{Label: "Total", Value: receipt.Money(b.Total())}},
	}
}

// DiscountBill is a flat bill that applies item discounts for preferred
// customers.
type DiscountBill struct {
	Bill
}

// NewDiscountBill creates an empty flat discount bill.
func NewDiscountBill(clerk models.Employee, preferred bool) *DiscountBill {
	return &DiscountBill{Bill{ledger: newLedger(clerk, PricingFor(preferred), PerEntry)}}
}

// Preferred reports whether discounts apply.
func (b *DiscountBill) Preferred() bool { return b.preferred() }

// BaseTotal returns the total before discounts.
func (b *DiscountBill) BaseTotal() float64 { return b.baseTotal() }

// DiscountCount returns the number of discounted items, each counted once.
func (b *DiscountBill) DiscountCount() int { return b.discountCount() }

// DiscountAmount returns the sum of the applied discounts.
func (b *DiscountBill) DiscountAmount() float64 { return b.discountAmount() }

// DiscountPercent returns the discount amount as a percentage of BaseTotal.
// It is 0 when BaseTotal is exactly 0.
func (b *DiscountBill) DiscountPercent() float64 { return b.discountPercent() }

// Receipt renders the bill with discount details.
func (b *DiscountBill) Receipt() string { return receipt.String(b.sheet()) }

// PrintReceipt writes the rendered bill to w.
func (b *DiscountBill) PrintReceipt(w io.Writer) error { return receipt.Render(w, b.sheet()) }

func (b *DiscountBill) sheet() receipt.Sheet {
	preferred := b.preferred()
	rows := make([]string, len(b.entries))
	for i, e := range b.entries {
		if preferred && e.item.Discount() > 0 {
			rows[i] = receipt.DiscountedItemRow(e.item.Name(), e.item.Price(), e.item.Discount())
		} else {
			rows[i] = receipt.UndiscountedItemRow(e.item.Name(), e.item.Price())
		}
	}
	return receipt.Sheet{
		Title:     "DiscountBill",
		Clerk:     b.clerk.Name(),
		Preferred: &preferred,
		Rows:      rows,
		Summary:   discountSummary(b),
	}
}

// BillV2 holds lines with quantities.
type BillV2 struct {
	ledger
}

// NewBillV2 creates an empty quantity bill for clerk.
func NewBillV2(clerk models.Employee) *BillV2 {
	return &BillV2{ledger: newLedger(clerk, FlatPricing, PerUnit)}
}

// Add copies line into the bill. Later changes to line do not affect the
// bill. A line without an item is rejected with models.ErrMissingItem.
func (b *BillV2) Add(line models.BillLine) error {
	return b.add(line.Item(), line.Quantity())
}

// Clerk returns the employee the bill is attributed to.
func (b *BillV2) Clerk() models.Employee { return b.clerk }

// Lines returns copies of the bill's lines in insertion order.
func (b *BillV2) Lines() []models.BillLine {
	lines := make([]models.BillLine, len(b.entries))
	for i, e := range b.entries {
		lines[i] = models.NewBillLine(e.item, e.quantity)
	}
	return lines
}

// Total returns the sum of the line totals.
func (b *BillV2) Total() float64 { return b.total() }

// Receipt renders the bill.
func (b *BillV2) Receipt() string { return receipt.String(b.sheet()) }

// PrintReceipt writes the rendered bill to w.
func (b *BillV2) PrintReceipt(w io.Writer) error { return receipt.Render(w, b.sheet()) }

func (b *BillV2) sheet() receipt.Sheet {
	rows := make([]string, len(b.entries))
	for i, e := range b.entries {
		rows[i] = receipt.LineRow(e.quantity, e.item.Name(), e.lineTotal(), e.item.Price())
	}
	return receipt.Sheet{
		Title:   "GroceryBillV2",
		Clerk:   b.clerk.Name(),
		Rows:    rows,
		Summary: []receipt.Field{{Label: "Total", Value: receipt.Money(b.Total())}},
	}
}

// DiscountBillV2 is a quantity bill that applies unit discounts for
// preferred customers.
type DiscountBillV2 struct {
	BillV2
}

// NewDiscountBillV2 creates an empty quantity discount bill.
func NewDiscountBillV2(clerk models.Employee, preferred bool) *DiscountBillV2 {
	return &DiscountBillV2{BillV2{ledger: newLedger(clerk, PricingFor(preferred), PerUnit)}}
}

// Preferred reports whether discounts apply.
func (b *DiscountBillV2) Preferred() bool { return b.preferred() }

// BaseTotal returns the total before discounts.
func (b *DiscountBillV2) BaseTotal() float64 { return b.baseTotal() }

// DiscountCount returns the number of discounted units across all lines.
func (b *DiscountBillV2) DiscountCount() int { return b.discountCount() }

// DiscountAmount returns the sum of the quantity-weighted discounts.
func (b *DiscountBillV2) DiscountAmount() float64 { return b.discountAmount() }

// DiscountPercent returns the discount amount as a percentage of BaseTotal.
// It is 0 when BaseTotal is exactly 0.
func (b *DiscountBillV2) DiscountPercent() float64 { return b.discountPercent() }

// Receipt renders the bill with discount details.
func (b *DiscountBillV2) Receipt() string { return receipt.String(b.sheet()) }

// PrintReceipt writes the rendered bill to w.
func (b *DiscountBillV2) PrintReceipt(w io.Writer) error { return receipt.Render(w, b.sheet()) }

func (b *DiscountBillV2) sheet() receipt.Sheet {
	preferred := b.preferred()
	rows := make([]string, len(b.entries))
	for i, e := range b.entries {
		if preferred && e.item.Discount() > 0 {
			rows[i] = receipt.DiscountedLineRow(e.quantity, e.item.Name(), e.item.Price(), e.item.Discount())
		} else {
			rows[i] = receipt.LineRow(e.quantity, e.item.Name(), e.lineTotal(), e.item.Price())
		}
	}
	return receipt.Sheet{
		Title:     "DiscountBillV2",
		Clerk:     b.clerk.Name(),
		Preferred: &preferred,
		Rows:      rows,
		Summary:   discountSummary(b),
	}
}

type discountBiller interface {
	Total() float64
	DiscountStats
}

func discountSummary(b discountBiller) []receipt.Field {
	return []receipt.Field{
		{Label: "Total", Value: receipt.Money(b.Total())},
		{Label: "Discount count", Value: receipt.Count(b.DiscountCount())},
		{Label: "Discount amount", Value: receipt.Money(b.DiscountAmount())},
		{Label: "Discount percent", Value: receipt.Percent(b.DiscountPercent())},
	}
}
