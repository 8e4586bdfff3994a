package audit

import "testing"

func benchmarkComputeAttributes(b *testing.B, n, workers int) {
	list := randomWords(1, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeAttributes(list, WithSeed(1), WithParallelism(workers)); err != nil {
			b.Fatalf("ComputeAttributes failed: %v", err)
		}
	}
}

func BenchmarkComputeAttributes500(b *testing.B)         { benchmarkComputeAttributes(b, 500, 1) }
func BenchmarkComputeAttributes500Parallel(b *testing.B) { benchmarkComputeAttributes(b, 500, 4) }
func BenchmarkComputeAttributes2000(b *testing.B)        { benchmarkComputeAttributes(b, 2000, 1) }
func BenchmarkComputeAttributes2000Parallel(b *testing.B) {
	benchmarkComputeAttributes(b, 2000, 4)
}

func BenchmarkEditDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EditDistance("passphrase", "password")
	}
}

func BenchmarkIsUniquelyDecodable(b *testing.B) {
	list := randomWords(2, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := IsUniquelyDecodable(list); err != nil {
			b.Fatalf("IsUniquelyDecodable failed: %v", err)
		}
	}
}
