package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/grocerybill/internal/auth"
	"github.com/mmynk/grocerybill/internal/metrics"
	"github.com/mmynk/grocerybill/internal/models"
)

type ping struct{}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	clerk := models.NewClerk("alice", "hash")
	token, err := jwtManager.Generate(clerk)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var gotID, gotName string
	next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		gotID = GetClerkID(ctx)
		gotName = GetClerkName(ctx)
		return connect.NewResponse(&ping{}), nil
	}
	handler := RequireAuth(jwtManager)(next)

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{name: "valid token", header: "Bearer " + token},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "garbage token", header: "Bearer not-a-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotName = "", ""
			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := handler(context.Background(), req)
			if tt.wantErr {
				if connect.CodeOf(err) != connect.CodeUnauthenticated {
					t.Fatalf("code = %v, want unauthenticated", connect.CodeOf(err))
				}
				if gotID != "" {
					t.Error("next handler should not run")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotID != clerk.ID || gotName != "alice" {
				t.Errorf("clerk = (%q, %q), want (%q, alice)", gotID, gotName, clerk.ID)
			}
		})
	}
}

func TestGetClerkEmptyContext(t *testing.T) {
	if id := GetClerkID(context.Background()); id != "" {
		t.Errorf("GetClerkID = %q, want empty", id)
	}
	if name := GetClerkName(context.Background()); name != "" {
		t.Errorf("GetClerkName = %q, want empty", name)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.NewBilling("test", prometheus.NewRegistry())

	ok := MetricsInterceptor(m)(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&ping{}), nil
	})
	failing := MetricsInterceptor(m)(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no bill"))
	})

	ctx := context.Background()
	_, _ = ok(ctx, connect.NewRequest(&ping{}))
	_, _ = ok(ctx, connect.NewRequest(&ping{}))
	_, _ = failing(ctx, connect.NewRequest(&ping{}))

	procedure := connect.NewRequest(&ping{}).Spec().Procedure
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(procedure, "ok")); got != 2 {
		t.Errorf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(procedure, "not_found")); got != 1 {
		t.Errorf("not_found count = %v, want 1", got)
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithClerk(context.Background(), "clerk-1", "ann")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "success",
			want: []string{"level=INFO", `msg="RPC ok"`, "clerk_id=clerk-1", "clerk_name=ann"},
		},
		{
			name: "client error",
			err:  connect.NewError(connect.CodeNotFound, errors.New("no bill")),
			want: []string{"level=WARN", "code=not_found", "clerk_name=ann"},
		},
		{
			name: "internal error",
			err:  errors.New("disk full"),
			want: []string{"level=ERROR", "code=unknown", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			handler := LoggingInterceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&ping{}), nil
			})

			_, err := handler(ctx, connect.NewRequest(&ping{}))
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log line %q missing %q", out, w)
				}
			}
		})
	}
}
