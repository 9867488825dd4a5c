package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"usecase-market/internal/catalog"
)

// Writes the embedded catalog fixture to data/catalog/usecases.json so it
// can be edited locally or uploaded to S3 as a starting point.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("failed to create directory %s: %v", dataDir, err)
	}

	path := filepath.Join(dataDir, "usecases.json")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	useCases := catalog.DefaultUseCases()
	if err := encoder.Encode(useCases); err != nil {
		log.Fatalf("failed to write catalog fixture: %v", err)
	}

	fmt.Printf("wrote %d use cases to %s\n", len(useCases), path)
}
