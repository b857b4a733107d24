package sourcing

import (
	"fmt"

	"rental_underwriting/pkg/models"
)

// Houston market templates. A deterministic stand-in for a live sourcing
// collaborator, used by the CLI demo and tests.
var houstonTemplates = []models.PropertyRecord{
	{Address: "2456 Oak Ridge Drive, Houston, TX 77056", PurchasePrice: 325000, SquareFootage: 2150, Bedrooms: 3, Bathrooms: 2.5, YearBuilt: 2015, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 3200, DaysOnMarket: 45},
	{Address: "1892 Pine Valley Lane, Houston, TX 77084", PurchasePrice: 420000, SquareFootage: 2800, Bedrooms: 4, Bathrooms: 3.0, YearBuilt: 2018, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 3500, DaysOnMarket: 32},
	{Address: "3421 Maple Street, Houston, TX 77002", PurchasePrice: 285000, SquareFootage: 1800, Bedrooms: 3, Bathrooms: 2.0, YearBuilt: 2012, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 2400, DaysOnMarket: 28},
	{Address: "5678 Elm Avenue, Houston, TX 77005", PurchasePrice: 450000, SquareFootage: 3200, Bedrooms: 4, Bathrooms: 3.5, YearBuilt: 2020, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 3800, DaysOnMarket: 15},
	{Address: "1234 Cedar Lane, Houston, TX 77006", PurchasePrice: 380000, SquareFootage: 2400, Bedrooms: 3, Bathrooms: 2.5, YearBuilt: 2016, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 3000, DaysOnMarket: 22},
	{Address: "7890 Birch Road, Houston, TX 77008", PurchasePrice: 295000, SquareFootage: 1950, Bedrooms: 3, Bathrooms: 2.0, YearBuilt: 2014, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 2600, DaysOnMarket: 38},
	{Address: "4567 Willow Way, Houston, TX 77009", PurchasePrice: 350000, SquareFootage: 2200, Bedrooms: 3, Bathrooms: 2.5, YearBuilt: 2017, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 2800, DaysOnMarket: 25},
	{Address: "2345 Spruce Circle, Houston, TX 77010", PurchasePrice: 310000, SquareFootage: 2000, Bedrooms: 3, Bathrooms: 2.0, YearBuilt: 2013, PropertyType: models.PropertyTypeSingleFamily, EstimatedRent: 2700, DaysOnMarket: 41},
}

// GenerateHoustonProperties returns the sample pool filtered by price
// ceiling. Output is deterministic: same ceiling, same pool.
func GenerateHoustonProperties(maxPrice float64) []models.PropertyRecord {
	var pool []models.PropertyRecord
	for _, t := range houstonTemplates {
		if t.PurchasePrice > maxPrice {
			continue
		}
		p := t
		p.ListingURL = fmt.Sprintf("https://example.com/property/%.0f", p.PurchasePrice)
		pool = append(pool, p)
	}
	return pool
}
