package squaremaze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegrow/squaremaze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: one-shot build
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Build demonstrates the one-shot consumer flow: construct,
// build, then read the grid view. With a pinned seed, full branching and
// rate 1.0 the maze always reaches both vertical edges.
func ExampleMaze_Build() {
	m, err := squaremaze.New(10, 10,
		squaremaze.WithSeedCenters(squaremaze.Point{X: 5, Y: 5}),
		squaremaze.WithStrategy(squaremaze.StrategyFull),
		squaremaze.WithGrowthRate(1.0),
		squaremaze.WithSeed(42),
	)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	m.Build()

	entry, hasEntry := m.Entry()
	exit, hasExit := m.Exit()
	fmt.Println("complete:", m.Done())
	fmt.Println("entry on left edge:", hasEntry && entry.X == 0)
	fmt.Println("exit on right edge:", hasExit && exit.X == m.Width()-1)
	fmt.Println("connected components:", len(m.Components()))

	// Output:
	// complete: true
	// entry on left edge: true
	// exit on right edge: true
	// connected components: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: incremental (animated) stepping
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Step demonstrates the incremental consumer flow: drive one
// iteration at a time — e.g. one per animation frame — and poll Done.
func ExampleMaze_Step() {
	m, err := squaremaze.New(12, 12, squaremaze.WithSeed(7))
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	for !m.Done() {
		m.Step()
		// ... hand the read-only view to a renderer here ...
	}
	fmt.Println("complete:", m.Done())

	// Output:
	// complete: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: strategy parsing for CLI/GUI collaborators
////////////////////////////////////////////////////////////////////////////////

// ExampleParseStrategy shows the tolerant name mapping external flag
// parsers rely on: unknown names fall back to the random strategy.
func ExampleParseStrategy() {
	fmt.Println(squaremaze.ParseStrategy("FULL"))
	fmt.Println(squaremaze.ParseStrategy("Partial"))
	fmt.Println(squaremaze.ParseStrategy("spiral"))

	// Output:
	// full
	// partial
	// random
}
