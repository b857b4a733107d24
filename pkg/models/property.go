package models

// PropertyType tags the structural category of a listing.
const (
	PropertyTypeSingleFamily = "Single Family"
	PropertyTypeCondo        = "Condo"
	PropertyTypeTownhouse    = "Townhouse"
	PropertyTypeMultiFamily  = "Multi Family"
)

// PropertyRecord is the immutable input to the underwriting engine. Records
// are produced by an external collaborator (scraper, generator, or manual
// entry) and consumed by value; the engine never mutates them.
type PropertyRecord struct {
	Address       string  `json:"address"`
	PurchasePrice float64 `json:"purchase_price"`
	SquareFootage int     `json:"square_footage"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	YearBuilt     int     `json:"year_built"`
	PropertyType  string  `json:"property_type"`
	EstimatedRent float64 `json:"estimated_rent"` // monthly
	DaysOnMarket  int     `json:"days_on_market"`
	ListingURL    string  `json:"listing_url"`
}

// ClientScenario captures one client's acquisition constraints. CoC values
// are fractions (0.09 means 9%), matching the engine's decision-rule scale.
type ClientScenario struct {
	Name             string   `json:"name"`
	MaxOOP           float64  `json:"max_oop"`
	MaxPurchasePrice float64  `json:"max_purchase_price"`
	MinCoCReturn     float64  `json:"min_coc_return"`
	Location         string   `json:"location"`
	Requirements     []string `json:"requirements"`
}
