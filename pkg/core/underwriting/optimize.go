package underwriting

import "fmt"

// Opportunity categories.
const (
	CategoryRevenue     = "Revenue"
	CategoryExpense     = "Expense"
	CategoryImprovement = "Improvement"
)

// Shared Low/Medium/High tags used by opportunity priority and risk fields
// as well as risk assessment levels.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// ROI is a tagged return-on-investment value. Opportunities that need no
// capital but produce a benefit have an infinite ROI; representing that as
// a variant instead of a float infinity forces consumers to handle it.
type ROI struct {
	Infinite bool    `json:"infinite"`
	Value    float64 `json:"value"` // annual benefit / investment; zero when Infinite
}

// FiniteROI builds a finite ratio, guarding a zero investment.
func FiniteROI(annualBenefit, investment float64) ROI {
	if investment == 0 {
		if annualBenefit > 0 {
			return ROI{Infinite: true}
		}
		return ROI{}
	}
	return ROI{Value: annualBenefit / investment}
}

func (r ROI) String() string {
	if r.Infinite {
		return "inf"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// Opportunity is one discrete improvement action with its cost/benefit
// profile. Priority and RiskLevel are fixed per opportunity type; they are
// not derived from the property's risk assessment.
type Opportunity struct {
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Investment         float64 `json:"investment"`
	AnnualBenefit      float64 `json:"annual_benefit"`
	ROI                ROI     `json:"roi"`
	ImplementationTime string  `json:"implementation_time"`
	Priority           string  `json:"priority"`
	RiskLevel          string  `json:"risk_level"`
}

// GenerateOpportunities evaluates the fixed improvement catalog against the
// property's current cash flow. Rental-rate and self-management entries
// appear only when their underlying benefit is positive; the capital
// improvements are always listed.
func GenerateOpportunities(cf CashFlowResult, expenses ExpenseBreakdown) []Opportunity {
	var opportunities []Opportunity

	// 1. Rental rate optimization (10% market upside assumption)
	currentRent := cf.MonthlyRent
	marketRent := currentRent * 1.10
	rentIncrease := marketRent - currentRent
	if rentIncrease > 0 {
		annual := rentIncrease * 12
		opportunities = append(opportunities, Opportunity{
			Category:           CategoryRevenue,
			Title:              "Rental Rate Optimization",
			Description:        fmt.Sprintf("Increase rent from $%.0f to $%.0f/month", currentRent, marketRent),
			Investment:         0,
			AnnualBenefit:      annual,
			ROI:                FiniteROI(annual, 0),
			ImplementationTime: "Immediate",
			Priority:           LevelHigh,
			RiskLevel:          LevelLow,
		})
	}

	// 2. Self-management, only when a management fee is being paid
	if expenses.Management > 0 {
		annual := expenses.Management * 12
		opportunities = append(opportunities, Opportunity{
			Category:           CategoryExpense,
			Title:              "Self-Management",
			Description:        fmt.Sprintf("Save $%.0f/month by self-managing", expenses.Management),
			Investment:         0,
			AnnualBenefit:      annual,
			ROI:                FiniteROI(annual, 0),
			ImplementationTime: "Immediate",
			Priority:           LevelHigh,
			RiskLevel:          LevelMedium,
		})
	}

	// 3. Energy efficiency
	opportunities = append(opportunities, Opportunity{
		Category:           CategoryImprovement,
		Title:              "Energy Efficiency",
		Description:        "Install smart thermostat and LED lighting",
		Investment:         500,
		AnnualBenefit:      50 * 12,
		ROI:                FiniteROI(50*12, 500),
		ImplementationTime: "1 month",
		Priority:           LevelMedium,
		RiskLevel:          LevelLow,
	})

	// 4. Curb appeal
	opportunities = append(opportunities, Opportunity{
		Category:           CategoryImprovement,
		Title:              "Curb Appeal Enhancement",
		Description:        "Landscaping and exterior improvements",
		Investment:         2000,
		AnnualBenefit:      100 * 12,
		ROI:                FiniteROI(100*12, 2000),
		ImplementationTime: "2 months",
		Priority:           LevelMedium,
		RiskLevel:          LevelLow,
	})

	// 5. Kitchen update
	opportunities = append(opportunities, Opportunity{
		Category:           CategoryImprovement,
		Title:              "Kitchen Updates",
		Description:        "Minor kitchen refresh and updates",
		Investment:         5000,
		AnnualBenefit:      150 * 12,
		ROI:                FiniteROI(150*12, 5000),
		ImplementationTime: "3 months",
		Priority:           LevelLow,
		RiskLevel:          LevelMedium,
	})

	return opportunities
}
