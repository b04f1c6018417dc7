package fraud

import (
	"strings"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
)

// Aggregate folds the individual check results into one verdict. The fold is
// deterministic and order-independent: weights are summed regardless of the
// order checks completed in.
func Aggregate(checks []models.CheckResult) models.FraudAnalysisResult {
	totalWeight := 0
	var failedReasons []string
	criticalFailure := false

	for _, c := range checks {
		totalWeight += c.Weight
		if !c.Passed {
			failedReasons = append(failedReasons, c.Reason)
			if c.Weight >= 500 {
				criticalFailure = true
			}
		}
	}

	if criticalFailure {
		return models.FraudAnalysisResult{
			Approved:       false,
			Reason:         strings.Join(failedReasons, ", "),
			RiskLevel:      models.RiskLevelCritical,
			TotalRiskScore: totalWeight,
		}
	}

	if totalWeight >= 400 {
		return models.FraudAnalysisResult{
			Approved:       false,
			Reason:         "cumulative risk too high",
			RiskLevel:      models.RiskLevelHigh,
			TotalRiskScore: totalWeight,
		}
	}

	riskLevel := models.RiskLevelLow
	if totalWeight > 100 {
		riskLevel = models.RiskLevelMedium
	}

	return models.FraudAnalysisResult{
		Approved:       true,
		RiskLevel:      riskLevel,
		TotalRiskScore: totalWeight,
	}
}
