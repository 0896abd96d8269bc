// cmd/exercise-importer - Bulk-loads an exercise catalog JSON file into the
// database. Existing entries are matched by name and skipped.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"fitarena/database"
	"fitarena/models"

	"github.com/joho/godotenv"
)

type jsonExercise struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Muscles     []string `json:"muscles"`
}

func main() {
	godotenv.Load()

	jsonPath := "./data/exercises.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var entries []jsonExercise
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	fmt.Printf("Found %d exercises\n\n", len(entries))

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	var existing []string
	db.Model(&models.Exercise{}).Pluck("name", &existing)
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	var exercises []models.Exercise
	skipped := 0
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if known[entry.Name] {
			skipped++
			continue
		}
		exercises = append(exercises, models.Exercise{
			Name:        entry.Name,
			Description: entry.Description,
			Muscles:     models.StringList(entry.Muscles),
		})
	}

	fmt.Printf("Total exercises to import: %d (%d already present)\n\n", len(exercises), skipped)

	batchSize := 500
	for i := 0; i < len(exercises); i += batchSize {
		end := i + batchSize
		if end > len(exercises) {
			end = len(exercises)
		}

		batch := exercises[i:end]
		if err := db.Create(&batch).Error; err != nil {
			log.Printf("Error inserting batch %d-%d: %v\n", i, end, err)
		} else {
			fmt.Printf("Inserted exercises %d-%d\n", i+1, end)
		}
	}

	fmt.Println("\n✓ Import completed successfully!")

	var count int64
	db.Model(&models.Exercise{}).Count(&count)
	fmt.Printf("✓ Total exercises in database: %d\n", count)
}
