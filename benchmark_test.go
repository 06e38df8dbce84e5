package kmedoids

import "testing"

// --- Pairwise distances ---

func benchPairwiseDistances(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatTestData(n, dims)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PairwiseDistances(data, n, dims, metric)
	}
}

func BenchmarkPairwiseDistances_100(b *testing.B)  { benchPairwiseDistances(b, 100) }
func BenchmarkPairwiseDistances_500(b *testing.B)  { benchPairwiseDistances(b, 500) }
func BenchmarkPairwiseDistances_1000(b *testing.B) { benchPairwiseDistances(b, 1000) }

func benchPairwiseDistancesParallel(b *testing.B, n, workers int) {
	b.Helper()
	dims := 2
	data := generateFlatTestData(n, dims)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PairwiseDistancesParallel(data, n, dims, metric, workers)
	}
}

func BenchmarkPairwiseDistancesParallel_1000x4(b *testing.B) {
	benchPairwiseDistancesParallel(b, 1000, 4)
}

// --- Full runs ---

func benchCluster(b *testing.B, n, dims, k, workers int) {
	b.Helper()
	data := generateTestData(n, dims)
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Workers = workers
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Cluster(data, k, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCluster_100x2_k5(b *testing.B)          { benchCluster(b, 100, 2, 5, 1) }
func BenchmarkCluster_200x8_k5(b *testing.B)          { benchCluster(b, 200, 8, 5, 1) }
func BenchmarkCluster_200x8_k5_parallel(b *testing.B) { benchCluster(b, 200, 8, 5, 4) }
