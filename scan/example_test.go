package scan_test

import (
	"fmt"

	"github.com/katalvlaran/formulath/scan"
)

// ExampleSplit shows forced-character splitting and whitespace discarding.
func ExampleSplit() {
	fmt.Println(scan.Split("(margin + 2.5) * units"))
	fmt.Println(scan.Split("2+2*2"))
	// Output:
	// [( margin + 2.5 ) * units]
	// [2 + 2 * 2]
}
