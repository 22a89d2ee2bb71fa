package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/careerbuddy/cmd"
)

func main() {
	// Optional .env with GEMINI_API_KEY and CAREERBUDDY_* overrides.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
