package main

import (
	"os"

	"github.com/ssarda/nsescan/internal/cli"
	"github.com/ssarda/nsescan/internal/display"
)

func main() {
	rootCmd := cli.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		display.Error(err)
		os.Exit(1)
	}
}
