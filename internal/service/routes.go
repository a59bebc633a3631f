package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
)

const (
	// AuthServiceName is the fully-qualified name of the clerk auth service.
	AuthServiceName = "grocerybill.v1.AuthService"
	// BillingServiceName is the fully-qualified name of the billing service.
	BillingServiceName = "grocerybill.v1.BillingService"
)

const (
	AuthServiceRegisterProcedure      = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure         = "/" + AuthServiceName + "/Login"
	BillingServiceCreateBillProcedure = "/" + BillingServiceName + "/CreateBill"
	BillingServiceAddEntryProcedure   = "/" + BillingServiceName + "/AddEntry"
	BillingServiceGetSummaryProcedure = "/" + BillingServiceName + "/GetSummary"
	BillingServiceGetReceiptProcedure = "/" + BillingServiceName + "/GetReceipt"
	BillingServiceListBillsProcedure  = "/" + BillingServiceName + "/ListBills"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// NewAuthServiceHandler builds an HTTP handler for the auth service and
// returns the path to mount it on.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	return "/" + AuthServiceName + "/", mux
}

// NewBillingServiceHandler builds an HTTP handler for the billing service and
// returns the path to mount it on.
func NewBillingServiceHandler(svc *BillingService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(BillingServiceCreateBillProcedure, connect.NewUnaryHandler(BillingServiceCreateBillProcedure, svc.CreateBill, opts...))
	mux.Handle(BillingServiceAddEntryProcedure, connect.NewUnaryHandler(BillingServiceAddEntryProcedure, svc.AddEntry, opts...))
	mux.Handle(BillingServiceGetSummaryProcedure, connect.NewUnaryHandler(BillingServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(BillingServiceGetReceiptProcedure, connect.NewUnaryHandler(BillingServiceGetReceiptProcedure, svc.GetReceipt, opts...))
	mux.Handle(BillingServiceListBillsProcedure, connect.NewUnaryHandler(BillingServiceListBillsProcedure, svc.ListBills, opts...))
	return "/" + BillingServiceName + "/", mux
}

// AuthClient calls the auth service.
type AuthClient struct {
	register *connect.Client[RegisterRequest, RegisterResponse]
	login    *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthClient creates a client for the auth service at baseURL.
func NewAuthClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthClient{
		register: connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:    connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// BillingClient calls the billing service.
type BillingClient struct {
	createBill *connect.Client[CreateBillRequest, CreateBillResponse]
	addEntry   *connect.Client[AddEntryRequest, AddEntryResponse]
	getSummary *connect.Client[GetSummaryRequest, GetSummaryResponse]
	getReceipt *connect.Client[GetReceiptRequest, GetReceiptResponse]
	listBills  *connect.Client[ListBillsRequest, ListBillsResponse]
}

// NewBillingClient creates a client for the billing service at baseURL.
func NewBillingClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillingClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &BillingClient{
		createBill: connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+BillingServiceCreateBillProcedure, opts...),
		addEntry:   connect.NewClient[AddEntryRequest, AddEntryResponse](httpClient, baseURL+BillingServiceAddEntryProcedure, opts...),
		getSummary: connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+BillingServiceGetSummaryProcedure, opts...),
		getReceipt: connect.NewClient[GetReceiptRequest, GetReceiptResponse](httpClient, baseURL+BillingServiceGetReceiptProcedure, opts...),
		listBills:  connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+BillingServiceListBillsProcedure, opts...),
	}
}

func (c *BillingClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *BillingClient) AddEntry(ctx context.Context, req *connect.Request[AddEntryRequest]) (*connect.Response[AddEntryResponse], error) {
	return c.addEntry.CallUnary(ctx, req)
}

func (c *BillingClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *BillingClient) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	return c.getReceipt.CallUnary(ctx, req)
}

func (c *BillingClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// newValidator returns the request validator shared by the services.
func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// invalidArgument converts a validation failure into a Connect error naming
// the offending fields.
func invalidArgument(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid request: %s", strings.Join(fields, ", ")))
	}
	return connect.NewError(connect.CodeInvalidArgument, err)
}
