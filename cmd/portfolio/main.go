// Package main is the entry point for the portfolio site.
package main

import (
	"os"

	"github.com/hasib2k/portfolio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
