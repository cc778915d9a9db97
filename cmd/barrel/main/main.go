package main

import (
	"os"

	"github.com/arthur-debert/barrel/cmd/barrel"
)

func main() {
	rootCmd := barrel.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		barrel.ReportError(rootCmd, err)
		os.Exit(1)
	}
}
