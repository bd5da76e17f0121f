// Command primer sums integers and lets speakers speak. With no arguments
// it prints the four lines of the built-in program and exits 0.
package main

import (
	"context"
	"os"

	"github.com/roach88/primer/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
