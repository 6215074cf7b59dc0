package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already carry the
	// credentials.
	_ = godotenv.Load()
	Execute()
}
