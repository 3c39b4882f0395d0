package squaremaze_test

import (
	"testing"

	"github.com/katalvlaran/mazegrow/squaremaze"
)

// BenchmarkBuild_64x64_FourTrees measures a full build of a mid-sized
// grid with competing trees and default branching.
func BenchmarkBuild_64x64_FourTrees(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, err := squaremaze.New(64, 64,
			squaremaze.WithTrees(4),
			squaremaze.WithSeed(int64(i+1)),
		)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		m.Build()
	}
}

// BenchmarkBuild_128x128_Full measures the densest configuration: full
// branching at rate 1.0 on a larger grid.
func BenchmarkBuild_128x128_Full(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, err := squaremaze.New(128, 128,
			squaremaze.WithTrees(8),
			squaremaze.WithStrategy(squaremaze.StrategyFull),
			squaremaze.WithGrowthRate(1.0),
			squaremaze.WithSeed(int64(i+1)),
		)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		m.Build()
	}
}

// BenchmarkStep_64x64 measures the per-iteration cost in the incremental
// consumer flow.
func BenchmarkStep_64x64(b *testing.B) {
	m, err := squaremaze.New(64, 64,
		squaremaze.WithTrees(4),
		squaremaze.WithGrowthRate(0.5),
		squaremaze.WithSeed(1),
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Step() {
			// Completed mazes are cheap to step; rebuild to keep the
			// benchmark honest.
			b.StopTimer()
			m, err = squaremaze.New(64, 64,
				squaremaze.WithTrees(4),
				squaremaze.WithGrowthRate(0.5),
				squaremaze.WithSeed(int64(i+2)),
			)
			if err != nil {
				b.Fatalf("New failed: %v", err)
			}
			b.StartTimer()
		}
	}
}
