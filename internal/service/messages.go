package service

// Clerk is the public view of a clerk account.
type Clerk struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// RegisterRequest creates a clerk account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse returns the new clerk and a session token.
type RegisterResponse struct {
	Clerk Clerk  `json:"clerk"`
	Token string `json:"token"`
}

// LoginRequest exchanges clerk credentials for a session token.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the clerk and a session token.
type LoginResponse struct {
	Clerk Clerk  `json:"clerk"`
	Token string `json:"token"`
}

// Bill describes a stored bill without its entries.
type Bill struct {
	ID         string `json:"id"`
	ClerkName  string `json:"clerk_name"`
	Model      string `json:"model"`
	Discount   bool   `json:"discount"`
	Preferred  bool   `json:"preferred"`
	EntryCount int    `json:"entry_count"`
	CreatedAt  int64  `json:"created_at"`
}

// Summary carries a bill's totals and, for discount bills, its statistics.
type Summary struct {
	BillID          string  `json:"bill_id"`
	Total           float64 `json:"total"`
	BaseTotal       float64 `json:"base_total"`
	Discounted      bool    `json:"discounted"`
	Preferred       bool    `json:"preferred"`
	DiscountCount   int     `json:"discount_count"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
}

// CreateBillRequest opens a bill. Preferred is ignored unless Discount is set.
type CreateBillRequest struct {
	// Model is "flat" or "quantity".
	Model     string `json:"model" validate:"required,oneof=flat quantity"`
	Discount  bool   `json:"discount"`
	Preferred bool   `json:"preferred"`
}

// CreateBillResponse returns the opened bill.
type CreateBillResponse struct {
	Bill Bill `json:"bill"`
}

// AddEntryRequest appends an item to a flat bill or a line to a quantity bill.
type AddEntryRequest struct {
	BillID   string  `json:"bill_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Discount float64 `json:"discount" validate:"gte=0,ltefield=Price"`
	// Quantity may be left at 0 for flat bills, which means one unit.
	Quantity int `json:"quantity" validate:"gte=0"`
}

// AddEntryResponse returns the bill's summary after the entry was added.
type AddEntryResponse struct {
	Summary Summary `json:"summary"`
}

// GetSummaryRequest names the bill to summarize.
type GetSummaryRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

// GetSummaryResponse carries the bill's current totals.
type GetSummaryResponse struct {
	Summary Summary `json:"summary"`
}

// GetReceiptRequest names the bill to render.
type GetReceiptRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

// GetReceiptResponse carries the rendered receipt and the totals it shows.
type GetReceiptResponse struct {
	Receipt string  `json:"receipt"`
	Summary Summary `json:"summary"`
}

// ListBillsRequest lists the calling clerk's bills.
type ListBillsRequest struct{}

// ListBillsResponse holds bills newest first, without entries.
type ListBillsResponse struct {
	Bills []Bill `json:"bills"`
}
