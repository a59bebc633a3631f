package models

// BillModel names how a bill holds its entries.
type BillModel string

const (
	// ModelFlat bills hold single items, one unit each.
	ModelFlat BillModel = "flat"
	// ModelQuantity bills hold lines with an explicit quantity.
	ModelQuantity BillModel = "quantity"
)

// Valid reports whether m is a known model.
func (m BillModel) Valid() bool {
	return m == ModelFlat || m == ModelQuantity
}

// BillRecord is the persisted form of a bill.
type BillRecord struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// ClerkID references the clerk who opened the bill.
	ClerkID string

	// ClerkName is the clerk's name, printed on the receipt.
	ClerkName string

	// Model selects flat or quantity billing.
	Model BillModel

	// Discount is true for the discount variants.
	Discount bool

	// Preferred enables discount pricing. Only meaningful when Discount is set.
	Preferred bool

	// Entries are kept in insertion order.
	Entries []EntryRecord

	// EntryCount is the number of stored entries. Listings fill it without
	// loading Entries.
	EntryCount int

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64
}

// EntryRecord is one persisted bill entry.
type EntryRecord struct {
	// Position is the zero-based insertion index within the bill.
	Position int
	Name     string
	Price    float64
	Discount float64
	// Quantity is always 1 for flat bills.
	Quantity int
}
