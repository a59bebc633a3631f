// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/grocerybill/internal/models"
)

var (
	// ErrBillNotFound is returned when no bill has the requested ID.
	ErrBillNotFound = errors.New("bill not found")
	// ErrClerkNotFound is returned when no clerk has the requested ID.
	ErrClerkNotFound = errors.New("clerk not found")
)

// Store defines the interface for bill and clerk storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateBill persists a new bill together with any entries it already has.
	// The bill.ID and bill.CreatedAt fields are populated by the store.
	CreateBill(ctx context.Context, bill *models.BillRecord) error

	// GetBill retrieves a bill by its ID with entries in insertion order.
	// Returns ErrBillNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.BillRecord, error)

	// AppendEntry adds an entry after the bill's current last entry and sets
	// entry.Position.
	AppendEntry(ctx context.Context, billID string, entry *models.EntryRecord) error

	// ListBillsByClerk returns the clerk's bills, newest first, without entries.
	ListBillsByClerk(ctx context.Context, clerkID string) ([]*models.BillRecord, error)

	// CreateClerk inserts a new clerk account.
	CreateClerk(ctx context.Context, clerk *models.Clerk) error

	// GetClerkByName returns nil and no error if the clerk does not exist.
	GetClerkByName(ctx context.Context, name string) (*models.Clerk, error)

	// GetClerkByID returns ErrClerkNotFound if the clerk does not exist.
	GetClerkByID(ctx context.Context, id string) (*models.Clerk, error)

	// Close releases any resources held by the store.
	Close() error
}
