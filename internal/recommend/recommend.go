// Package recommend produces the prioritized action list for a report.
// Exactly one score-tier recommendation is always present; the network
// expansion entry is additive on top of it.
package recommend

import "github.com/creatorscope/creatorscope/internal/model"

// Score tier boundaries and the sparse-network threshold.
const (
	strongTierMin      = 70
	monitorTierMin     = 50
	sparseNetworkBelow = 10
)

var (
	strongTier = model.Recommendation{
		Priority:  "high",
		Action:    "Strong Investment Opportunity",
		Reasoning: "High investment readiness score indicates exceptional potential",
		NextSteps: []string{
			"Deep dive into network connections",
			"Analyze content performance trends",
			"Monitor growth trajectory",
		},
	}
	monitorTier = model.Recommendation{
		Priority:  "medium",
		Action:    "Monitor and Evaluate",
		Reasoning: "Moderate score suggests potential with room for growth",
		NextSteps: []string{
			"Track engagement trends",
			"Assess network expansion",
			"Evaluate content strategy",
		},
	}
	analysisTier = model.Recommendation{
		Priority:  "low",
		Action:    "Further Analysis Required",
		Reasoning: "Lower score indicates need for deeper investigation",
		NextSteps: []string{
			"Review engagement patterns",
			"Assess network quality",
			"Evaluate growth trajectory",
		},
	}
	networkExpansion = model.Recommendation{
		Priority:  "medium",
		Action:    "Network Expansion Opportunity",
		Reasoning: "Limited network connections may indicate early stage or niche focus",
		NextSteps: []string{
			"Identify key network gaps",
			"Assess connection quality over quantity",
		},
	}
)

// Build selects the score tier and appends the network expansion entry when
// the community is sparse. The result always has one or two entries.
func Build(r *model.Report, score int) []model.Recommendation {
	var out []model.Recommendation

	switch {
	case score >= strongTierMin:
		out = append(out, strongTier)
	case score >= monitorTierMin:
		out = append(out, monitorTier)
	default:
		out = append(out, analysisTier)
	}

	if r.Network.TotalConnections < sparseNetworkBelow {
		out = append(out, networkExpansion)
	}

	return out
}
