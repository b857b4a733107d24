package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rental_underwriting/pkg/config"
	"rental_underwriting/pkg/core/sourcing"
	"rental_underwriting/pkg/core/underwriting"
	"rental_underwriting/pkg/loader"
	"rental_underwriting/pkg/models"
)

func main() {
	assumptionsPath := flag.String("assumptions", "", "YAML file with financial assumption overrides")
	propertiesPath := flag.String("properties", "", "JSON file with the candidate property pool (default: built-in Houston sample)")
	scenarioPath := flag.String("scenario", "", "HJSON file with the client scenario (default: built-in example)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment.")
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	assumptions, err := config.Load(*assumptionsPath)
	if err != nil {
		log.Fatalf("Invalid assumptions: %v", err)
	}

	engine, err := underwriting.NewEngine(assumptions)
	if err != nil {
		log.Fatalf("Engine setup failed: %v", err)
	}

	scenario := defaultScenario()
	if *scenarioPath != "" {
		scenario, err = loader.LoadClientScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Scenario load failed: %v", err)
		}
	}

	var pool []models.PropertyRecord
	if *propertiesPath != "" {
		pool, err = loader.LoadProperties(*propertiesPath)
		if err != nil {
			log.Fatalf("Property pool load failed: %v", err)
		}
	} else {
		pool = sourcing.GenerateHoustonProperties(scenario.MaxPurchasePrice)
	}

	sourcer := sourcing.NewSourcer(engine)
	analysis, err := sourcer.AnalyzeScenario(scenario, pool)
	if err != nil {
		log.Fatalf("Scenario analysis failed: %v", err)
	}

	printAnalysis(analysis)
}

func defaultScenario() models.ClientScenario {
	return models.ClientScenario{
		Name:             "Example Buyer",
		MaxOOP:           375000,
		MaxPurchasePrice: 375000,
		MinCoCReturn:     0.05,
		Location:         "Houston, TX",
		Requirements:     []string{"Minimum 5% CoC return", "Max $375K OOP"},
	}
}

func printAnalysis(analysis *sourcing.ScenarioAnalysis) {
	fmt.Printf("=== %s ===\n", analysis.Scenario.Name)
	fmt.Printf("Properties found: %d\n", analysis.PropertiesFound)

	for i, r := range analysis.Recommendations {
		fmt.Printf("\n%d. %s\n", i+1, r.Property.Address)
		fmt.Printf("   Purchase price:    $%.0f\n", r.Property.PurchasePrice)
		fmt.Printf("   Total OOP:         $%.0f\n", r.Mortgage.TotalOOP)
		fmt.Printf("   Monthly cash flow: $%.2f\n", r.CashFlow.MonthlyCashFlow)
		fmt.Printf("   CoC return:        %.2f%%\n", r.CoCReturn*100)
		fmt.Printf("   Total return:      %.2f%%\n", r.Returns.TotalReturn)
		fmt.Printf("   Risk level:        %s\n", r.Risk.Level)
		fmt.Printf("   Recommendation:    %s\n", r.Recommendation)
	}

	metrics := sourcing.CalculatePortfolioMetrics(analysis.Recommendations)
	if metrics.TotalProperties > 0 {
		fmt.Printf("\n--- Portfolio ---\n")
		fmt.Printf("Total investment:       $%.0f\n", metrics.TotalInvestment)
		fmt.Printf("Total annual cash flow: $%.2f\n", metrics.TotalAnnualCashFlow)
		fmt.Printf("Portfolio CoC:          %.2f%%\n", metrics.PortfolioCashOnCash)
		fmt.Printf("Avg total return:       %.2f%%\n", metrics.AvgTotalReturn)
	}
}
