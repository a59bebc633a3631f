// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBill persists a new bill and its initial entries.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.BillRecord) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, clerk_id, clerk_name, model, discount, preferred, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		bill.ID, nullString(bill.ClerkID), bill.ClerkName, string(bill.Model), bill.Discount, bill.Preferred, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for i := range bill.Entries {
		entry := &bill.Entries[i]
		entry.Position = i
		if err := insertEntry(ctx, tx, bill.ID, entry); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	bill.EntryCount = len(bill.Entries)

	return nil
}

// GetBill retrieves a bill by ID, including its entries in insertion order.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.BillRecord, error) {
	bill := &models.BillRecord{}
	var clerkID sql.NullString
	var model string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, clerk_id, clerk_name, model, discount, preferred, created_at FROM bills WHERE id = ?",
		billID,
	).Scan(&bill.ID, &clerkID, &bill.ClerkName, &model, &bill.Discount, &bill.Preferred, &bill.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrBillNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	bill.ClerkID = clerkID.String
	bill.Model = models.BillModel(model)

	rows, err := s.db.QueryContext(ctx,
		"SELECT position, name, price, discount, quantity FROM bill_entries WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.EntryRecord
		if err := rows.Scan(&e.Position, &e.Name, &e.Price, &e.Discount, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		bill.Entries = append(bill.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	bill.EntryCount = len(bill.Entries)

	return bill, nil
}

// AppendEntry adds an entry at the end of the bill.
func (s *SQLiteStore) AppendEntry(ctx context.Context, billID string, entry *models.EntryRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM bills WHERE id = ?", billID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", storage.ErrBillNotFound, billID)
	}
	if err != nil {
		return fmt.Errorf("failed to check bill: %w", err)
	}

	var next int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM bill_entries WHERE bill_id = ?",
		billID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get next position: %w", err)
	}

	entry.Position = next
	if err := insertEntry(ctx, tx, billID, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListBillsByClerk returns the clerk's bills, newest first. Entries are not
// loaded; EntryCount is.
func (s *SQLiteStore) ListBillsByClerk(ctx context.Context, clerkID string) ([]*models.BillRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, clerk_name, model, discount, preferred, created_at,
			(SELECT COUNT(*) FROM bill_entries WHERE bill_id = bills.id)
		FROM bills WHERE clerk_id = ? ORDER BY created_at DESC, rowid DESC`,
		clerkID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*models.BillRecord
	for rows.Next() {
		bill := &models.BillRecord{ClerkID: clerkID}
		var model string
		if err := rows.Scan(&bill.ID, &bill.ClerkName, &model, &bill.Discount, &bill.Preferred, &bill.CreatedAt, &bill.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bill.Model = models.BillModel(model)
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, billID string, entry *models.EntryRecord) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO bill_entries (bill_id, position, name, price, discount, quantity) VALUES (?, ?, ?, ?, ?, ?)",
		billID, entry.Position, entry.Name, entry.Price, entry.Discount, entry.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
