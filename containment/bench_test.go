package containment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cyclosub/containment"
)

// benchmarkDecide measures two random graphs of the same order, so both
// directions are searched.
func benchmarkDecide(b *testing.B, n int, opts ...containment.Option) {
	rng := rand.New(rand.NewSource(1))
	ga := randomBinary(b, rng, n, 0.05)
	gb := randomBinary(b, rng, n, 0.05)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := containment.Decide(ga, gb, opts...); err != nil {
			b.Fatalf("Decide: %v", err)
		}
	}
}

// BenchmarkDecide_64 runs sequentially at n=64.
func BenchmarkDecide_64(b *testing.B) { benchmarkDecide(b, 64) }

// BenchmarkDecide_128Parallel runs 8 workers per direction at n=128.
func BenchmarkDecide_128Parallel(b *testing.B) {
	benchmarkDecide(b, 128, containment.WithWorkers(8))
}

// BenchmarkDecide_128Sparse enables the identity pre-check at n=128.
func BenchmarkDecide_128Sparse(b *testing.B) {
	benchmarkDecide(b, 128, containment.WithSparseFastPath())
}
