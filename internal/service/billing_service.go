package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/grocerybill/internal/calculator"
	"github.com/mmynk/grocerybill/internal/metrics"
	"github.com/mmynk/grocerybill/internal/middleware"
	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/internal/storage"
)

// BillingService opens bills, records entries and reports totals.
//
// Bills are rebuilt from storage on every call, so no calculator value is
// shared between requests.
type BillingService struct {
	store    storage.Store
	metrics  *metrics.Billing
	validate *validator.Validate
}

// NewBillingService creates a BillingService with the given storage backend.
func NewBillingService(store storage.Store, m *metrics.Billing) *BillingService {
	return &BillingService{store: store, metrics: m, validate: newValidator()}
}

// CreateBill opens an empty bill attributed to the calling clerk.
func (s *BillingService) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	clerkID := middleware.GetClerkID(ctx)
	if clerkID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	bill := &models.BillRecord{
		ClerkID:   clerkID,
		ClerkName: middleware.GetClerkName(ctx),
		Model:     models.BillModel(req.Msg.Model),
		Discount:  req.Msg.Discount,
		Preferred: req.Msg.Discount && req.Msg.Preferred,
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.BillsCreated.WithLabelValues(string(bill.Model), calculator.PricingFor(bill.Preferred).String()).Inc()
	slog.Info("Bill created", "bill_id", bill.ID, "model", bill.Model, "discount", bill.Discount, "preferred", bill.Preferred)

	return connect.NewResponse(&CreateBillResponse{Bill: billToMessage(bill)}), nil
}

// AddEntry appends an item (flat bills) or a line (quantity bills).
func (s *BillingService) AddEntry(ctx context.Context, req *connect.Request[AddEntryRequest]) (*connect.Response[AddEntryResponse], error) {
	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	bill, err := s.loadOwnedBill(ctx, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	quantity, err := entryQuantity(bill.Model, req.Msg.Quantity)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	entry := &models.EntryRecord{
		Name:     req.Msg.Name,
		Price:    req.Msg.Price,
		Discount: req.Msg.Discount,
		Quantity: quantity,
	}
	if err := s.store.AppendEntry(ctx, bill.ID, entry); err != nil {
		slog.Error("AddEntry failed", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	bill.Entries = append(bill.Entries, *entry)
	bill.EntryCount = len(bill.Entries)
	s.metrics.EntriesAdded.WithLabelValues(string(bill.Model)).Inc()

	slog.Debug("Entry added",
		"bill_id", bill.ID,
		"position", entry.Position,
		"name", entry.Name,
		"price", entry.Price,
		"discount", entry.Discount,
		"quantity", entry.Quantity,
	)

	summary, err := summarize(bill)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&AddEntryResponse{Summary: summary}), nil
}

// GetSummary returns the bill's total and discount statistics.
func (s *BillingService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	bill, err := s.loadOwnedBill(ctx, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	summary, err := summarize(bill)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&GetSummaryResponse{Summary: summary}), nil
}

// GetReceipt renders the bill's receipt.
func (s *BillingService) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	bill, err := s.loadOwnedBill(ctx, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	biller, err := calculator.FromRecord(bill)
	if err != nil {
		slog.Error("GetReceipt failed to rebuild bill", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	text := biller.Receipt()
	s.metrics.ReceiptsRendered.WithLabelValues(string(bill.Model)).Inc()
	s.metrics.BillTotal.Observe(biller.Total())

	return connect.NewResponse(&GetReceiptResponse{
		Receipt: text,
		Summary: summaryToMessage(bill.ID, calculator.Summarize(biller)),
	}), nil
}

// ListBills returns the calling clerk's bills, newest first.
func (s *BillingService) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	clerkID := middleware.GetClerkID(ctx)
	if clerkID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	records, err := s.store.ListBillsByClerk(ctx, clerkID)
	if err != nil {
		slog.Error("ListBills failed", "clerk_id", clerkID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	bills := make([]Bill, len(records))
	for i, r := range records {
		bills[i] = billToMessage(r)
	}
	return connect.NewResponse(&ListBillsResponse{Bills: bills}), nil
}

// loadOwnedBill fetches a bill and checks that the caller opened it.
func (s *BillingService) loadOwnedBill(ctx context.Context, billID string) (*models.BillRecord, error) {
	clerkID := middleware.GetClerkID(ctx)
	if clerkID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	bill, err := s.store.GetBill(ctx, billID)
	if errors.Is(err, storage.ErrBillNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("Failed to load bill", "bill_id", billID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if bill.ClerkID != clerkID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("bill %s belongs to another clerk", billID))
	}
	return bill, nil
}

// entryQuantity resolves the stored quantity for an entry on a bill of the given model.
func entryQuantity(model models.BillModel, requested int) (int, error) {
	switch model {
	case models.ModelFlat:
		if requested > 1 {
			return 0, fmt.Errorf("flat bills take one unit per entry, got quantity %d", requested)
		}
		return 1, nil
	case models.ModelQuantity:
		if requested < 1 {
			return 0, fmt.Errorf("quantity must be at least 1, got %d", requested)
		}
		return requested, nil
	default:
		return 0, fmt.Errorf("unknown bill model %q", model)
	}
}

func summarize(bill *models.BillRecord) (Summary, error) {
	biller, err := calculator.FromRecord(bill)
	if err != nil {
		slog.Error("Failed to rebuild bill", "bill_id", bill.ID, "error", err)
		return Summary{}, connect.NewError(connect.CodeInternal, err)
	}
	return summaryToMessage(bill.ID, calculator.Summarize(biller)), nil
}

func summaryToMessage(billID string, s calculator.Summary) Summary {
	return Summary{
		BillID:          billID,
		Total:           s.Total,
		BaseTotal:       s.BaseTotal,
		Discounted:      s.Discounted,
		Preferred:       s.Preferred,
		DiscountCount:   s.DiscountCount,
		DiscountAmount:  s.DiscountAmount,
		DiscountPercent: s.DiscountPercent,
	}
}

func billToMessage(b *models.BillRecord) Bill {
	return Bill{
		ID:         b.ID,
		ClerkName:  b.ClerkName,
		Model:      string(b.Model),
		Discount:   b.Discount,
		Preferred:  b.Preferred,
		EntryCount: b.EntryCount,
		CreatedAt:  b.CreatedAt,
	}
}
