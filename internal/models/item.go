package models

import "errors"

// ErrMissingItem is returned when a bill line is used before its item is set.
var ErrMissingItem = errors.New("bill line has no item")

// Item is a priced good. Price and Discount are per unit.
type Item struct {
	name     string
	price    float64
	discount float64
}

// NewItem creates an Item. Values are taken as given.
func NewItem(name string, price, discount float64) *Item {
	return &Item{name: name, price: price, discount: discount}
}

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Price returns the undiscounted unit price.
func (i *Item) Price() float64 { return i.price }

// Discount returns the unit discount granted to preferred customers.
func (i *Item) Discount() float64 { return i.discount }

// BillLine pairs an Item with a quantity.
//
// The zero value is an empty line; SetItem must be called before the line
// totals can be computed.
type BillLine struct {
	item     *Item
	quantity int
}

// NewBillLine creates a populated line.
func NewBillLine(item *Item, quantity int) BillLine {
	return BillLine{item: item, quantity: quantity}
}

// SetItem replaces the line's item.
func (l *BillLine) SetItem(item *Item) { l.item = item }

// SetQuantity replaces the line's quantity. Zero and negative values are kept.
func (l *BillLine) SetQuantity(quantity int) { l.quantity = quantity }

// Item returns the line's item, or nil if none has been set.
func (l BillLine) Item() *Item { return l.item }

// Quantity returns the line's quantity.
func (l BillLine) Quantity() int { return l.quantity }

// LineTotal returns price × quantity.
func (l BillLine) LineTotal() (float64, error) {
	if l.item == nil {
		return 0, ErrMissingItem
	}
	return l.item.price * float64(l.quantity), nil
}

// LineDiscountTotal returns discount × quantity.
func (l BillLine) LineDiscountTotal() (float64, error) {
	if l.item == nil {
		return 0, ErrMissingItem
	}
	return l.item.discount * float64(l.quantity), nil
}
