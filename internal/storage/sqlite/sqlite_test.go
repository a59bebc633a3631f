package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "grocerybill-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	clerk := models.NewClerk("ann", "hash")
	if err := store.CreateClerk(ctx, clerk); err != nil {
		t.Fatalf("CreateClerk failed: %v", err)
	}

	t.Run("CreateBill generates ID and timestamp", func(t *testing.T) {
		bill := &models.BillRecord{
			ClerkID:   clerk.ID,
			ClerkName: clerk.Name,
			Model:     models.ModelFlat,
			Discount:  true,
			Preferred: true,
		}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetBill retrieves complete bill", func(t *testing.T) {
		original := &models.BillRecord{
			ClerkID:   clerk.ID,
			ClerkName: clerk.Name,
			Model:     models.ModelQuantity,
			Discount:  true,
			Preferred: false,
			Entries: []models.EntryRecord{
				{Name: "Soap", Price: 5.00, Discount: 1.00, Quantity: 3},
				{Name: "Salt", Price: 1.50, Discount: 0, Quantity: 2},
			},
		}
		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if retrieved.ClerkID != clerk.ID || retrieved.ClerkName != "ann" {
			t.Errorf("clerk mismatch: got %s/%s", retrieved.ClerkID, retrieved.ClerkName)
		}
		if retrieved.Model != models.ModelQuantity {
			t.Errorf("Model mismatch: got %s", retrieved.Model)
		}
		if !retrieved.Discount || retrieved.Preferred {
			t.Errorf("flags mismatch: discount=%v preferred=%v", retrieved.Discount, retrieved.Preferred)
		}
		if len(retrieved.Entries) != 2 {
			t.Fatalf("Entries count mismatch: got %d, want 2", len(retrieved.Entries))
		}
		for i, e := range retrieved.Entries {
			want := original.Entries[i]
			if e != want {
				t.Errorf("entry %d = %+v, want %+v", i, e, want)
			}
		}
	})

	t.Run("GetBill returns ErrBillNotFound", func(t *testing.T) {
		_, err := store.GetBill(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrBillNotFound) {
			t.Errorf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("AppendEntry keeps insertion order and duplicates", func(t *testing.T) {
		bill := &models.BillRecord{ClerkID: clerk.ID, ClerkName: clerk.Name, Model: models.ModelFlat}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		names := []string{"Milk", "Bread", "Milk"}
		for i, name := range names {
			entry := &models.EntryRecord{Name: name, Price: 1, Quantity: 1}
			if err := store.AppendEntry(ctx, bill.ID, entry); err != nil {
				t.Fatalf("AppendEntry failed: %v", err)
			}
			if entry.Position != i {
				t.Errorf("Position = %d, want %d", entry.Position, i)
			}
		}

		retrieved, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if len(retrieved.Entries) != len(names) {
			t.Fatalf("got %d entries, want %d", len(retrieved.Entries), len(names))
		}
		for i, name := range names {
			if retrieved.Entries[i].Name != name {
				t.Errorf("entry %d = %s, want %s", i, retrieved.Entries[i].Name, name)
			}
		}
	})

	t.Run("AppendEntry to missing bill", func(t *testing.T) {
		err := store.AppendEntry(ctx, "missing", &models.EntryRecord{Name: "X", Quantity: 1})
		if !errors.Is(err, storage.ErrBillNotFound) {
			t.Errorf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("ListBillsByClerk returns only the clerk's bills", func(t *testing.T) {
		other := models.NewClerk("bob", "hash")
		if err := store.CreateClerk(ctx, other); err != nil {
			t.Fatalf("CreateClerk failed: %v", err)
		}
		if err := store.CreateBill(ctx, &models.BillRecord{ClerkID: other.ID, ClerkName: other.Name, Model: models.ModelFlat}); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		bills, err := store.ListBillsByClerk(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListBillsByClerk failed: %v", err)
		}
		if len(bills) != 1 {
			t.Fatalf("got %d bills, want 1", len(bills))
		}
		if bills[0].ClerkName != "bob" {
			t.Errorf("ClerkName = %s, want bob", bills[0].ClerkName)
		}
		if bills[0].EntryCount != 0 {
			t.Errorf("EntryCount = %d, want 0", bills[0].EntryCount)
		}
		if err := store.AppendEntry(ctx, bills[0].ID, &models.EntryRecord{Name: "Tea", Price: 4, Quantity: 1}); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
		bills, err = store.ListBillsByClerk(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListBillsByClerk failed: %v", err)
		}
		if bills[0].EntryCount != 1 {
			t.Errorf("EntryCount after append = %d, want 1", bills[0].EntryCount)
		}

		annBills, err := store.ListBillsByClerk(ctx, clerk.ID)
		if err != nil {
			t.Fatalf("ListBillsByClerk failed: %v", err)
		}
		if len(annBills) != 3 {
			t.Errorf("got %d bills for ann, want 3", len(annBills))
		}
	})

	t.Run("Bill without clerk account", func(t *testing.T) {
		bill := &models.BillRecord{ClerkName: "walk-in", Model: models.ModelFlat}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		retrieved, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if retrieved.ClerkID != "" {
			t.Errorf("ClerkID = %q, want empty", retrieved.ClerkID)
		}
	})
}

func TestClerks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	clerk := models.NewClerk("ann", "hash")
	if err := store.CreateClerk(ctx, clerk); err != nil {
		t.Fatalf("CreateClerk failed: %v", err)
	}

	byName, err := store.GetClerkByName(ctx, "ann")
	if err != nil {
		t.Fatalf("GetClerkByName failed: %v", err)
	}
	if byName == nil || byName.ID != clerk.ID || byName.PasswordHash != "hash" {
		t.Errorf("GetClerkByName = %+v, want %+v", byName, clerk)
	}

	missing, err := store.GetClerkByName(ctx, "nobody")
	if err != nil || missing != nil {
		t.Errorf("GetClerkByName(nobody) = %v, %v; want nil, nil", missing, err)
	}

	byID, err := store.GetClerkByID(ctx, clerk.ID)
	if err != nil {
		t.Fatalf("GetClerkByID failed: %v", err)
	}
	if byID.Name != "ann" {
		t.Errorf("GetClerkByID name = %s, want ann", byID.Name)
	}

	if _, err := store.GetClerkByID(ctx, "missing"); !errors.Is(err, storage.ErrClerkNotFound) {
		t.Errorf("expected ErrClerkNotFound, got %v", err)
	}

	if err := store.CreateClerk(ctx, models.NewClerk("ann", "other")); err == nil {
		t.Error("expected duplicate clerk name to fail")
	}
}
