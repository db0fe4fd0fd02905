// Package status holds lock-free simulation metrics shared between the tick
// goroutine and the HUD.
package status

import (
	"strconv"
	"sync/atomic"
)

// Registry groups metrics by value type.
// Writers cache pointers once; per-tick writes are plain atomic stores.
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Each visits every metric as formatted text, grouped by type and sorted by key within a group
func (r *Registry) Each(fn func(key, value string)) {
	r.Bools.Range(func(k string, v *atomic.Bool) { fn(k, strconv.FormatBool(v.Load())) })
	r.Ints.Range(func(k string, v *atomic.Int64) { fn(k, strconv.FormatInt(v.Load(), 10)) })
	r.Floats.Range(func(k string, v *AtomicFloat) { fn(k, strconv.FormatFloat(v.Get(), 'f', 3, 64)) })
	r.Strings.Range(func(k string, v *AtomicString) { fn(k, v.Load()) })
}
