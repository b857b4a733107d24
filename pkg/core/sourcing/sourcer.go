package sourcing

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"rental_underwriting/pkg/core/underwriting"
	"rental_underwriting/pkg/models"
)

// ScenarioAnalysis is the comparator output for one client scenario:
// the retained underwriting results ranked by cash-on-cash, best first.
type ScenarioAnalysis struct {
	Scenario        models.ClientScenario             `json:"scenario"`
	PropertiesFound int                               `json:"properties_found"`
	Recommendations []*underwriting.UnderwritingResult `json:"recommendations"`
}

// Sourcer ranks a candidate property pool against client constraints.
type Sourcer struct {
	engine *underwriting.Engine
	log    *logrus.Entry
}

func NewSourcer(engine *underwriting.Engine) *Sourcer {
	return &Sourcer{
		engine: engine,
		log:    logrus.WithField("component", "sourcing"),
	}
}

// AnalyzeScenario underwrites every candidate within the scenario's price
// ceiling, retains results meeting both the OOP budget and the minimum
// cash-on-cash floor, and ranks them by cash-on-cash descending. Any
// underwriting error aborts the run; nothing is silently skipped.
func (s *Sourcer) AnalyzeScenario(scenario models.ClientScenario, pool []models.PropertyRecord) (*ScenarioAnalysis, error) {
	s.log.WithFields(logrus.Fields{
		"scenario":   scenario.Name,
		"candidates": len(pool),
	}).Info("analyzing client scenario")

	var kept []*underwriting.UnderwritingResult
	for _, p := range pool {
		if p.PurchasePrice > scenario.MaxPurchasePrice {
			continue
		}

		result, err := s.engine.UnderwriteWithBudget(p, scenario.MaxOOP)
		if err != nil {
			return nil, fmt.Errorf("underwrite %s: %w", p.Address, err)
		}

		if result.Mortgage.TotalOOP <= scenario.MaxOOP && result.CoCReturn >= scenario.MinCoCReturn {
			kept = append(kept, result)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].CoCReturn > kept[j].CoCReturn
	})

	s.log.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"retained": len(kept),
	}).Info("scenario analysis complete")

	return &ScenarioAnalysis{
		Scenario:        scenario,
		PropertiesFound: len(kept),
		Recommendations: kept,
	}, nil
}
