// Command deployconfig checks a contract deployment configuration and
// prints it with account keys masked.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCLIApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
