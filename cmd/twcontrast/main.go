// twcontrast - black/white contrast utilities for Tailwind-style palettes
//
// twcontrast classifies theme colours as light or dark and generates
// utility rules that pair each colour with a readable black or white.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/twcontrast/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
