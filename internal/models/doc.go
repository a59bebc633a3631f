// Package models defines the core domain models for grocerybill.
//
// # Billing values
//
// The calculator works on three small values:
//   - Employee: the clerk a bill is attributed to
//   - Item: a priced good with a per-unit discount
//   - BillLine: an Item together with a quantity
//
// Items and Employees are immutable once constructed and may be shared
// freely between bills and lines. No validation is performed here: a
// negative price or a discount larger than the price flows straight into
// the totals.
//
// # Persisted records
//
// Clerk, BillRecord and EntryRecord are the shapes the storage layer reads
// and writes. A BillRecord is turned back into a calculator bill by
// calculator.FromRecord, so totals are always recomputed from entries and
// never stored.
package models
