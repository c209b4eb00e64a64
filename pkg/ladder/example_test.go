package ladder_test

import (
	"fmt"

	"github.com/matzehuels/rackroom/pkg/ladder"
)

func ExampleLadder() {
	// Route a run along the wall, around a corner, and back.
	run, _ := ladder.NewLadder("main-run")

	a, _ := ladder.NewSection("a", 0, 0.3, 6.0, ladder.Horizontal)
	b, _ := ladder.NewSection("b", 6.0, 0.3, 3.0, ladder.Vertical, ladder.WithBend(90))
	_ = run.AddSection(a)
	_ = run.AddSection(b)

	fmt.Printf("Sections: %d\n", run.Len())
	fmt.Printf("Total: %.1fm\n", run.TotalLength())

	// Undo the last section while drafting.
	popped, _ := run.RemoveLastSection()
	fmt.Printf("Popped %s, total now %.1fm\n", popped.ID(), run.TotalLength())
	// Output:
	// Sections: 2
	// Total: 9.0m
	// Popped b, total now 6.0m
}
