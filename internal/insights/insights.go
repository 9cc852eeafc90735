// Package insights evaluates the rule tables that turn metrics and the
// investment score into textual insights and exponential-growth indicators.
// Every rule is tested independently; there is no early exit.
package insights

import (
	"fmt"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Rule thresholds. Engagement is a percentage, rank is the global creator
// rank (lower is better).
const (
	highEngagementPct   = 5.0
	lowEngagementPct    = 1.0
	strongNetworkSize   = 15
	topicAuthorityScore = 10.0
	strongRankCeiling   = 1000000
	growthPotentialMin  = 60
)

type insightRule struct {
	applies func(r *model.Report, m model.Metrics, score int) bool
	build   func(r *model.Report, m model.Metrics, score int) model.Insight
}

var insightRules = []insightRule{
	{
		applies: func(_ *model.Report, m model.Metrics, _ int) bool {
			return m.EngagementRate > highEngagementPct
		},
		build: func(_ *model.Report, m model.Metrics, _ int) model.Insight {
			return model.Insight{
				Type:    "positive",
				Title:   "High Engagement Rate",
				Message: fmt.Sprintf("Engagement rate of %.2f%% indicates strong community connection.", m.EngagementRate),
			}
		},
	},
	{
		applies: func(_ *model.Report, m model.Metrics, _ int) bool {
			return m.EngagementRate < lowEngagementPct
		},
		build: func(_ *model.Report, m model.Metrics, _ int) model.Insight {
			return model.Insight{
				Type:    "warning",
				Title:   "Low Engagement Rate",
				Message: fmt.Sprintf("Engagement rate of %.2f%% suggests limited community interaction.", m.EngagementRate),
			}
		},
	},
	{
		applies: func(r *model.Report, _ model.Metrics, _ int) bool {
			return r.Network.TotalConnections > strongNetworkSize
		},
		build: func(r *model.Report, _ model.Metrics, _ int) model.Insight {
			return model.Insight{
				Type:    "positive",
				Title:   "Strong Network",
				Message: fmt.Sprintf("Connected with %d top accounts, indicating strong ecosystem presence.", r.Network.TotalConnections),
			}
		},
	},
	{
		applies: func(_ *model.Report, m model.Metrics, _ int) bool {
			return m.TopicInfluenceScore > topicAuthorityScore
		},
		build: func(r *model.Report, _ model.Metrics, _ int) model.Insight {
			return model.Insight{
				Type:    "positive",
				Title:   "Topic Authority",
				Message: fmt.Sprintf("Significant influence across %d topics.", len(r.TopicInfluence)),
			}
		},
	},
	{
		applies: func(_ *model.Report, m model.Metrics, _ int) bool {
			return m.CreatorRank != nil && *m.CreatorRank < strongRankCeiling
		},
		build: func(_ *model.Report, m model.Metrics, _ int) model.Insight {
			return model.Insight{
				Type:    "positive",
				Title:   "Strong Creator Rank",
				Message: fmt.Sprintf("Ranked #%s globally, indicating high influence.", model.Comma(*m.CreatorRank)),
			}
		},
	},
}

// Build evaluates every insight rule against the report snapshot. The two
// engagement rules are mutually exclusive by construction: rates in [1,5]
// trigger neither.
func Build(r *model.Report, m model.Metrics, score int) []model.Insight {
	out := []model.Insight{}
	for _, rule := range insightRules {
		if rule.applies(r, m, score) {
			out = append(out, rule.build(r, m, score))
		}
	}
	return out
}

type indicatorRule struct {
	applies func(r *model.Report, m model.Metrics, score int) bool
	build   func(r *model.Report, m model.Metrics, score int) model.Indicator
}

var indicatorRules = []indicatorRule{
	{
		applies: func(_ *model.Report, m model.Metrics, _ int) bool {
			return m.EngagementRate > highEngagementPct
		},
		build: func(_ *model.Report, _ model.Metrics, _ int) model.Indicator {
			return model.Indicator{
				Type:      "positive",
				Indicator: "high_engagement",
				Message:   "Engagement rate above 5% indicates strong community connection",
				Strength:  "strong",
			}
		},
	},
	{
		applies: func(r *model.Report, _ model.Metrics, _ int) bool {
			return r.Network.TotalConnections > strongNetworkSize
		},
		build: func(r *model.Report, _ model.Metrics, _ int) model.Indicator {
			return model.Indicator{
				Type:      "positive",
				Indicator: "large_network",
				Message:   fmt.Sprintf("Connected with %d top accounts", r.Network.TotalConnections),
				Strength:  "strong",
			}
		},
	},
	{
		applies: func(r *model.Report, _ model.Metrics, _ int) bool {
			return r.TopicAnalysis.RankedTopics > 0
		},
		build: func(r *model.Report, _ model.Metrics, _ int) model.Indicator {
			return model.Indicator{
				Type:      "positive",
				Indicator: "topic_authority",
				Message:   fmt.Sprintf("Ranked in %d topics", r.TopicAnalysis.RankedTopics),
				Strength:  "moderate",
			}
		},
	},
	{
		applies: func(_ *model.Report, _ model.Metrics, score int) bool {
			return score >= growthPotentialMin
		},
		build: func(_ *model.Report, _ model.Metrics, _ int) model.Indicator {
			return model.Indicator{
				Type:      "positive",
				Indicator: "growth_potential",
				Message:   "Investment score indicates strong exponential potential",
				Strength:  "strong",
			}
		},
	},
}

// Indicators evaluates every exponential-indicator rule against the report
// snapshot.
func Indicators(r *model.Report, m model.Metrics, score int) []model.Indicator {
	out := []model.Indicator{}
	for _, rule := range indicatorRules {
		if rule.applies(r, m, score) {
			out = append(out, rule.build(r, m, score))
		}
	}
	return out
}
