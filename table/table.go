package table

import (
	"math"
	"sync"
)

const (
	// number of buckets in the logistic lookup table
	ExpTableSize = 1000
	// scores outside (-MaxExp, MaxExp) are treated as saturated
	MaxExp = 6.0
)

var (
	expOnce  sync.Once
	expTable []float32
)

// logistic values sampled over [-MaxExp, MaxExp), built once and never
// written afterwards so concurrent readers need no locking
func sigmoidTable() []float32 {
	expOnce.Do(func() {
		t := make([]float32, ExpTableSize)
		for i := range t {
			f := math.Exp((float64(i)/ExpTableSize*2 - 1) * MaxExp)
			t[i] = float32(f / (f + 1))
		}
		expTable = t
	})
	return expTable
}

// Sigmoid approximates the logistic function of f with the lookup
// table. The second return value is false when |f| >= MaxExp, in which
// case the caller should treat the gradient as zero.
func Sigmoid(f float32) (float32, bool) {
	if f <= -MaxExp || f >= MaxExp {
		return 0, false
	}
	idx := int((f + MaxExp) * (ExpTableSize / MaxExp / 2))
	if idx >= ExpTableSize {
		idx = ExpTableSize - 1
	}
	return sigmoidTable()[idx], true
}
