// Package loader reads property pools and client scenarios from local
// files. Pools are JSON, often hand-edited: trailing commas, comments and
// missing quotes are tolerated by running the payload through json-repair
// before decoding. Scenario definitions use HJSON for the same reason.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"rental_underwriting/pkg/models"
)

// LoadProperties reads a candidate pool from a JSON array file.
func LoadProperties(path string) ([]models.PropertyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read property pool: %w", err)
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("repair property pool JSON: %w", err)
	}

	var pool []models.PropertyRecord
	if err := json.Unmarshal([]byte(repaired), &pool); err != nil {
		return nil, fmt.Errorf("decode property pool: %w", err)
	}

	for i, p := range pool {
		if p.PurchasePrice <= 0 {
			return nil, fmt.Errorf("property pool entry %d (%q): purchase_price must be positive", i, p.Address)
		}
		if p.EstimatedRent < 0 {
			return nil, fmt.Errorf("property pool entry %d (%q): estimated_rent must not be negative", i, p.Address)
		}
	}
	return pool, nil
}

// LoadClientScenario reads one client scenario from an HJSON file.
func LoadClientScenario(path string) (models.ClientScenario, error) {
	var scenario models.ClientScenario

	data, err := os.ReadFile(path)
	if err != nil {
		return scenario, fmt.Errorf("read client scenario: %w", err)
	}
	if err := hjson.Unmarshal(data, &scenario); err != nil {
		return scenario, fmt.Errorf("decode client scenario: %w", err)
	}

	if scenario.Name == "" {
		return scenario, fmt.Errorf("client scenario %s: name is required", path)
	}
	if scenario.MaxPurchasePrice <= 0 {
		return scenario, fmt.Errorf("client scenario %q: max_purchase_price must be positive", scenario.Name)
	}
	return scenario, nil
}
