// Package config resolves the financial assumptions an underwriting run
// binds to: built-in defaults, then an optional YAML file, then UW_*
// environment variables. A local .env file is honored via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"rental_underwriting/pkg/core/underwriting"
)

// Load builds a validated Assumptions value. yamlPath may be empty, in which
// case only defaults and environment overrides apply.
func Load(yamlPath string) (underwriting.Assumptions, error) {
	godotenv.Load()

	a := underwriting.DefaultAssumptions()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return a, fmt.Errorf("read assumptions file: %w", err)
		}
		if err := yaml.Unmarshal(data, &a); err != nil {
			return a, fmt.Errorf("parse assumptions file: %w", err)
		}
	}

	applyEnvOverrides(&a)

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

func applyEnvOverrides(a *underwriting.Assumptions) {
	envFloat("UW_DOWN_PAYMENT_PCT", &a.DownPaymentPct)
	envFloat("UW_INTEREST_RATE", &a.InterestRate)
	envInt("UW_LOAN_TERM_YEARS", &a.LoanTermYears)
	envFloat("UW_APPRECIATION_RATE", &a.AppreciationRate)
	envFloat("UW_TAX_RATE", &a.TaxRate)
	envFloat("UW_PROPERTY_TAX_RATE", &a.PropertyTaxRate)
	envFloat("UW_INSURANCE_RATE", &a.InsuranceRate)
	envFloat("UW_MAINTENANCE_RATE", &a.MaintenanceRate)
	envFloat("UW_MANAGEMENT_RATE", &a.ManagementRate)
	envFloat("UW_VACANCY_RATE", &a.VacancyRate)
	envFloat("UW_CLOSING_COSTS_PCT", &a.ClosingCostsPct)
}

func envFloat(key string, dst *float64) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*dst = v
	}
}
