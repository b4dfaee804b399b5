package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hetpatel09/portfolio-api/internal/client"
	"github.com/hetpatel09/portfolio-api/internal/console"
)

func main() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("PORTFOLIO_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	apiURL := flag.String("api", defaultURL, "portfolio API base URL")
	flag.Parse()

	con := console.New(client.New(*apiURL), os.Stdin, os.Stdout)
	if err := con.Run(); err != nil {
		log.Fatal(err)
	}
}
