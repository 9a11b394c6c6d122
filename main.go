package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jdbryant/mospath/cmd"
)

func main() {
	// Optional .env for local development; missing files are fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
