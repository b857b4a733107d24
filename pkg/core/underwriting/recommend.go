package underwriting

// Recommendation labels, in rule order.
const (
	RecPassOOP    = "PASS - Exceeds OOP requirement"
	RecPassRisk   = "PASS - High risk level"
	RecStrongBuy  = "STRONG BUY - Excellent CoC return"
	RecBuy        = "BUY - Good CoC return"
	RecHold       = "HOLD - Acceptable CoC return"
	RecPassReturn = "PASS - Insufficient CoC return"
)

// Recommend applies the decision rules in strict order; the first match
// wins. An over-budget property is a PASS no matter how strong its return.
// cocReturn is fractional (0.09 means 9%).
func Recommend(cocReturn float64, riskLevel string, totalOOP, oopRequirement float64) string {
	if totalOOP > oopRequirement {
		return RecPassOOP
	}
	if riskLevel == LevelHigh {
		return RecPassRisk
	}
	switch {
	case cocReturn >= 0.09:
		return RecStrongBuy
	case cocReturn >= 0.07:
		return RecBuy
	case cocReturn >= 0.05:
		return RecHold
	default:
		return RecPassReturn
	}
}
