package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kingofshadpow/SOS-Auto/data"
)

// main exports the demo dataset as JSON fixtures.
// Usage: go run cmd/seed/main.go -out ./fixtures
// This is a standalone CLI tool, not part of the main application;
// the frontend consumes the fixtures as mock API payloads.
func main() {
	out := flag.String("out", "fixtures", "output directory for the JSON fixtures")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SOS AUTO - Demo Data Exporter")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	fixtures := map[string]any{
		"products.json": data.Products(),
		"users.json":    data.Users(),
		"orders.json":   data.Orders(),
	}

	for name, payload := range fixtures {
		path := filepath.Join(*out, name)
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode %s: %v", name, err)
		}
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("✓ Wrote %s", path)
	}

	fmt.Println()
	fmt.Println("Done.")
}
