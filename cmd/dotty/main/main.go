package main

import (
	"os"

	"github.com/arthur-debert/dotty/cmd/dotty"
)

func main() {
	rootCmd := dotty.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		dotty.ReportError(rootCmd, err)
		os.Exit(1)
	}
}
