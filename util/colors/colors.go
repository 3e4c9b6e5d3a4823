// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package colors

import (
	"fmt"
	"os"
)

var Red = "\033[31;1m"

var Clear = "\033[0;0m"

// PrintRed writes to stderr so it never mixes with command output.
func PrintRed(args ...interface{}) {
	fmt.Fprint(os.Stderr, Red)
	fmt.Fprint(os.Stderr, args...)
	fmt.Fprintln(os.Stderr, Clear)
}
