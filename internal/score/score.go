// Package score combines derived metrics into the composite 0-100
// investment readiness score and the standalone influence score.
package score

import (
	"math"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Factor is one weighted component of the investment score. Value maps the
// metric set to a 0-100 sub-score; the six weights sum to 1.0.
type Factor struct {
	Name   string
	Weight float64
	Value  func(m model.Metrics) float64
}

// Factors is the investment-score weight table. It is exported so tests and
// operator tooling can audit thresholds in isolation.
var Factors = []Factor{
	{
		Name:   "topic_authority",
		Weight: 0.20,
		Value: func(m model.Metrics) float64 {
			return math.Min(100, m.TopicInfluenceScore*10)
		},
	},
	{
		Name:   "engagement_consistency",
		Weight: 0.20,
		Value: func(m model.Metrics) float64 {
			return m.ContentConsistency
		},
	},
	{
		Name:   "growth_velocity",
		Weight: 0.20,
		Value: func(m model.Metrics) float64 {
			return m.GrowthScore
		},
	},
	{
		Name:   "network_quality",
		Weight: 0.15,
		Value: func(m model.Metrics) float64 {
			return m.NetworkQualityScore
		},
	},
	{
		Name:   "engagement_rate",
		Weight: 0.15,
		Value: func(m model.Metrics) float64 {
			return math.Min(100, m.EngagementRate*10)
		},
	},
	{
		Name:   "creator_rank",
		Weight: 0.10,
		Value: func(m model.Metrics) float64 {
			if m.CreatorRank == nil {
				return 0
			}
			return math.Max(0, 100-float64(*m.CreatorRank)/100000)
		},
	},
}

// Investment computes the composite investment readiness score, rounded
// half-up and capped at 100. It is a pure function of the metric set.
func Investment(m model.Metrics) int {
	var total float64
	for _, f := range Factors {
		total += f.Value(m) * f.Weight
	}
	return int(math.Round(math.Min(100, total)))
}

// Breakdown returns each factor's weighted contribution, keyed by factor
// name.
func Breakdown(m model.Metrics) map[string]float64 {
	parts := make(map[string]float64, len(Factors))
	for _, f := range Factors {
		parts[f.Name] = f.Value(m) * f.Weight
	}
	return parts
}

// Influence computes the standalone influence score from rank, topic
// influence and network quality, capped at 100.
func Influence(m model.Metrics) float64 {
	var s float64
	if m.CreatorRank != nil {
		s += math.Max(0, 50-float64(*m.CreatorRank)/100000)
	}
	s += math.Min(30, m.TopicInfluenceScore*3)
	s += m.NetworkQualityScore * 0.2
	return math.Min(100, s)
}
