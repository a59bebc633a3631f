// Package metrics exposes Prometheus collectors for billing activity.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Billing groups the collectors updated by the billing service.
type Billing struct {
	BillsCreated     *prometheus.CounterVec
	EntriesAdded     *prometheus.CounterVec
	ReceiptsRendered *prometheus.CounterVec
	BillTotal        prometheus.Histogram
	RPCRequests      *prometheus.CounterVec
}

// NewBilling registers and returns the billing collectors. A nil registerer
// uses the default one.
func NewBilling(namespace string, reg prometheus.Registerer) *Billing {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Billing{
		BillsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_created_total",
			Help:      "Bills opened, by billing model and pricing.",
		}, []string{"model", "pricing"}),
		EntriesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_added_total",
			Help:      "Items or lines added to bills, by billing model.",
		}, []string{"model"}),
		ReceiptsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_rendered_total",
			Help:      "Receipts rendered, by billing model.",
		}, []string{"model"}),
		BillTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bill_total",
			Help:      "Bill totals at receipt time.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
	}
	register(reg, &m.BillsCreated)
	register(reg, &m.EntriesAdded)
	register(reg, &m.ReceiptsRendered)
	register(reg, &m.BillTotal)
	register(reg, &m.RPCRequests)
	return m
}

// register adopts an already registered collector with the same descriptor,
// so constructing Billing twice against one registry is allowed.
func register[C prometheus.Collector](reg prometheus.Registerer, c *C) {
	if err := reg.Register(*c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				*c = existing
			}
			return
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
}
