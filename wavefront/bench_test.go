// SPDX-License-Identifier: MIT

package wavefront_test

import (
	"testing"

	"github.com/katalvlaran/grassfire/gridgraph"
	"github.com/katalvlaran/grassfire/obstacle"
	"github.com/katalvlaran/grassfire/wavefront"
)

// BenchmarkSearch_Open runs a full drain on an M×M grid without obstacles.
func BenchmarkSearch_Open(b *testing.B) {
	const M = 100
	g, _ := gridgraph.New(M, M)
	start, goal := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: M - 1, Col: M - 1}
	_ = g.SetStart(start)
	_ = g.SetGoal(goal)

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.Reset()
		_, _ = wavefront.Search(g, start, goal)
	}
}

// BenchmarkSearch_StopAtStart compares early termination on the same grid
// with the start placed near the goal.
func BenchmarkSearch_StopAtStart(b *testing.B) {
	const M = 100
	g, _ := gridgraph.New(M, M)
	start, goal := gridgraph.Coord{Row: M/2 - 3, Col: M / 2}, gridgraph.Coord{Row: M / 2, Col: M / 2}
	_ = g.SetStart(start)
	_ = g.SetGoal(goal)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.Reset()
		_, _ = wavefront.Search(g, start, goal, wavefront.WithStopAtStart())
	}
}

// BenchmarkSearch_Obstacles runs on a 30%-blocked grid with a fixed seed.
func BenchmarkSearch_Obstacles(b *testing.B) {
	const M = 100
	g, _ := gridgraph.New(M, M)
	start, goal := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: M - 1, Col: M - 1}
	_ = g.SetStart(start)
	_ = g.SetGoal(goal)
	if _, err := obstacle.Generate(g, 30, obstacle.WithSeed(42)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.Reset()
		_, _ = wavefront.Search(g, start, goal)
	}
}
