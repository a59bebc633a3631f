package calculator

import (
	"testing"

	"github.com/mmynk/grocerybill/internal/models"
)

func TestFromRecord(t *testing.T) {
	entries := []models.EntryRecord{
		{Position: 0, Name: "Soap", Price: 5.00, Discount: 1.00, Quantity: 3},
		{Position: 1, Name: "Salt", Price: 1.50, Discount: 0.00, Quantity: 2},
	}
	flatEntries := []models.EntryRecord{
		{Position: 0, Name: "Milk", Price: 3.00, Discount: 0.50, Quantity: 1},
		{Position: 1, Name: "Bread", Price: 2.00, Discount: 0.00, Quantity: 1},
	}

	tests := []struct {
		name    string
		record  models.BillRecord
		want    Summary
		wantErr bool
	}{
		{
			name:   "flat bill",
			record: models.BillRecord{ClerkName: "Ann", Model: models.ModelFlat, Entries: flatEntries},
			want:   Summary{Total: 5.00, BaseTotal: 5.00},
		},
		{
			name:   "flat preferred discount bill",
			record: models.BillRecord{ClerkName: "Ann", Model: models.ModelFlat, Discount: true, Preferred: true, Entries: flatEntries},
			want: Summary{
				Total: 4.50, BaseTotal: 5.00, Discounted: true, Preferred: true,
				DiscountCount: 1, DiscountAmount: 0.50, DiscountPercent: 10.00,
			},
		},
		{
			name:   "quantity bill",
			record: models.BillRecord{ClerkName: "Ann", Model: models.ModelQuantity, Entries: entries},
			want:   Summary{Total: 18.00, BaseTotal: 18.00},
		},
		{
			name:   "quantity regular discount bill",
			record: models.BillRecord{ClerkName: "Ann", Model: models.ModelQuantity, Discount: true, Entries: entries},
			want:   Summary{Total: 18.00, BaseTotal: 18.00, Discounted: true},
		},
		{
			name:   "quantity preferred discount bill",
			record: models.BillRecord{ClerkName: "Ann", Model: models.ModelQuantity, Discount: true, Preferred: true, Entries: entries},
			want: Summary{
				Total: 15.00, BaseTotal: 18.00, Discounted: true, Preferred: true,
				DiscountCount: 3, DiscountAmount: 3.00, DiscountPercent: 3.0 / 18.0 * 100,
			},
		},
		{
			name:    "unknown model",
			record:  models.BillRecord{ClerkName: "Ann", Model: "weekly"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, err := FromRecord(&tt.record)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if bill.Clerk().Name() != "Ann" {
				t.Errorf("clerk = %q, want Ann", bill.Clerk().Name())
			}

			got := Summarize(bill)
			if !approx(got.Total, tt.want.Total) || !approx(got.BaseTotal, tt.want.BaseTotal) {
				t.Errorf("totals = %v/%v, want %v/%v", got.Total, got.BaseTotal, tt.want.Total, tt.want.BaseTotal)
			}
			if got.Discounted != tt.want.Discounted || got.Preferred != tt.want.Preferred {
				t.Errorf("flags = %v/%v, want %v/%v", got.Discounted, got.Preferred, tt.want.Discounted, tt.want.Preferred)
			}
			if got.DiscountCount != tt.want.DiscountCount {
				t.Errorf("DiscountCount = %d, want %d", got.DiscountCount, tt.want.DiscountCount)
			}
			if !approx(got.DiscountAmount, tt.want.DiscountAmount) {
				t.Errorf("DiscountAmount = %v, want %v", got.DiscountAmount, tt.want.DiscountAmount)
			}
			if !approx(got.DiscountPercent, tt.want.DiscountPercent) {
				t.Errorf("DiscountPercent = %v, want %v", got.DiscountPercent, tt.want.DiscountPercent)
			}
		})
	}
}

func TestFromRecordKeepsOrder(t *testing.T) {
	rec := &models.BillRecord{
		ClerkName: "Ann",
		Model:     models.ModelQuantity,
		Entries: []models.EntryRecord{
			{Position: 0, Name: "First", Price: 1, Quantity: 1},
			{Position: 1, Name: "Second", Price: 2, Quantity: 1},
			{Position: 2, Name: "First", Price: 1, Quantity: 4},
		},
	}
	bill, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}
	lines := bill.(*BillV2).Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []string{"First", "Second", "First"} {
		if lines[i].Item().Name() != want {
			t.Errorf("line %d = %q, want %q", i, lines[i].Item().Name(), want)
		}
	}
}

func TestPricingFor(t *testing.T) {
	if PricingFor(true) != PreferredPricing || PricingFor(false) != FlatPricing {
		t.Error("PricingFor mapped flag incorrectly")
	}
	if PreferredPricing.String() != "preferred" || FlatPricing.String() != "flat" {
		t.Error("unexpected Pricing names")
	}
}
