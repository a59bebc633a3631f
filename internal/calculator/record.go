package calculator

import (
	"fmt"

	"github.com/mmynk/grocerybill/internal/models"
)

// Summary is the queryable state of a bill at a point in time.
type Summary struct {
	Total     float64
	BaseTotal float64
	// Discounted is false for variants without discount statistics.
	Discounted      bool
	Preferred       bool
	DiscountCount   int
	DiscountAmount  float64
	DiscountPercent float64
}

// Summarize reads the totals and, when available, the discount statistics of b.
func Summarize(b Biller) Summary {
	s := Summary{Total: b.Total(), BaseTotal: b.Total()}
	if d, ok := b.(DiscountStats); ok {
		s.Discounted = true
		s.Preferred = d.Preferred()
		s.BaseTotal = d.BaseTotal()
		s.DiscountCount = d.DiscountCount()
		s.DiscountAmount = d.DiscountAmount()
		s.DiscountPercent = d.DiscountPercent()
	}
	return s
}

// FromRecord rebuilds the bill variant described by rec, replaying its
// entries in order.
func FromRecord(rec *models.BillRecord) (Biller, error) {
	clerk := models.NewEmployee(rec.ClerkName)

	switch rec.Model {
	case models.ModelFlat:
		var bill *Bill
		var biller Biller
		if rec.Discount {
			d := NewDiscountBill(clerk, rec.Preferred)
			bill, biller = &d.Bill, d
		} else {
			bill = NewBill(clerk)
			biller = bill
		}
		for _, e := range rec.Entries {
			if err := bill.Add(models.NewItem(e.Name, e.Price, e.Discount)); err != nil {
				return nil, fmt.Errorf("failed to replay entry %d: %w", e.Position, err)
			}
		}
		return biller, nil

	case models.ModelQuantity:
		var bill *BillV2
		var biller Biller
		if rec.Discount {
			d := NewDiscountBillV2(clerk, rec.Preferred)
			bill, biller = &d.BillV2, d
		} else {
			bill = NewBillV2(clerk)
			biller = bill
		}
		for _, e := range rec.Entries {
			line := models.NewBillLine(models.NewItem(e.Name, e.Price, e.Discount), e.Quantity)
			if err := bill.Add(line); err != nil {
				return nil, fmt.Errorf("failed to replay entry %d: %w", e.Position, err)
			}
		}
		return biller, nil

	default:
		return nil, fmt.Errorf("unknown bill model %q", rec.Model)
	}
}
