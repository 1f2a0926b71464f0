package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/driftwave/ripple/internal/cmd"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
