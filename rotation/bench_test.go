package rotation_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cyclosub/matrix"
	"github.com/katalvlaran/cyclosub/rotation"
)

// cycle returns the directed n-cycle 0→1→…→n-1→0.
func cycle(b *testing.B, n int) *matrix.Binary {
	pairs := make([][2]int, n)
	for i := 0; i < n; i++ {
		pairs[i] = [2]int{i, (i + 1) % n}
	}

	return edges(b, n, pairs...)
}

// benchmarkMatch measures a worst-case miss: a chord that no rotation of the
// plain cycle supplies, so all k offsets are evaluated.
func benchmarkMatch(b *testing.B, n int, opts ...rotation.Option) {
	withChord, err := cycle(b, n).WithEdge(0, n/2)
	if err != nil {
		b.Fatalf("WithEdge: %v", err)
	}
	small := encode(b, withChord)
	large := encode(b, cycle(b, n))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rotation.MatchContext(ctx, small, large, opts...); err != nil {
			b.Fatalf("MatchContext: %v", err)
		}
	}
}

// BenchmarkMatch_Cycle64 evaluates 64 offsets sequentially.
func BenchmarkMatch_Cycle64(b *testing.B) { benchmarkMatch(b, 64) }

// BenchmarkMatch_Cycle256 evaluates 256 offsets sequentially.
func BenchmarkMatch_Cycle256(b *testing.B) { benchmarkMatch(b, 256) }

// BenchmarkMatch_Cycle256Parallel evaluates 256 offsets on 8 workers.
func BenchmarkMatch_Cycle256Parallel(b *testing.B) {
	benchmarkMatch(b, 256, rotation.WithWorkers(8))
}
