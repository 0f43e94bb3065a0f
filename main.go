package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/okrenz/manuscan/internal/cli"
)

func main() {
	// Local .env overrides are optional.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
