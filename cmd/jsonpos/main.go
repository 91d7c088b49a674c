// Program jsonpos parses JSON files and reports syntax errors, key ranges,
// and pointer lookups with exact source positions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := NewCLI().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
