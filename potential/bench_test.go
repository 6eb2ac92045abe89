package potential_test

import (
	"testing"

	"github.com/katalvlaran/laplace/potential"
)

// benchField builds a 200×160 board with two column plates.
func benchField(b *testing.B, workers int) *potential.Field {
	f, err := potential.New(200, 160,
		potential.WithIterations(50),
		potential.WithWorkers(workers))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y <= 160; y++ {
		_ = f.SetFixedPoint(20, y, 10)
		_ = f.SetFixedPoint(180, y, 0)
	}

	return f
}

// BenchmarkCalculatePotential_Serial measures 50 sweeps on one goroutine.
// Complexity: O(iterations·W·H)
func BenchmarkCalculatePotential_Serial(b *testing.B) {
	f := benchField(b, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.CalculatePotential()
	}
}

// BenchmarkCalculatePotential_Workers4 measures the same load split four ways.
func BenchmarkCalculatePotential_Workers4(b *testing.B) {
	f := benchField(b, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.CalculatePotential()
	}
}

// BenchmarkGetPotential measures one interpolated query.
func BenchmarkGetPotential(b *testing.B) {
	f := benchField(b, 1)
	f.CalculatePotential()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += f.GetPotential(101.3, 77.7)
	}
	_ = sink
}
