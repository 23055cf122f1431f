package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers once; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Summary renders every metric as "key=value" pairs in sorted key order, ints first
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
