package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotty/cmd/dotty"
)

func main() {
	if err := dotty.WriteManPage(dotty.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
