// Package metrics derives the per-creator engagement, network, topic,
// growth, consistency and density metrics from raw records. Every function
// is pure and total: absent inputs resolve to the documented neutral
// defaults and no derived value is ever NaN or infinite.
package metrics

import (
	"math"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Scale constants. Eight categories count as full diversity; the
// consistency coefficient scales variance/mean into the 0-100 band.
const (
	networkQualityFullSize   = 20.0
	categoryDiversityPerItem = 12.5
	consistencyCoefficient   = 10.0
	momentumThreshold        = 5.0
	growthScorePerVelocity   = 10.0
)

// Compute derives the full metric set from a creator profile and the
// report snapshot it belongs to. The report only needs its TimeSeries,
// TopPosts and Network sections populated.
func Compute(creator *model.CreatorProfile, report *model.Report) model.Metrics {
	followers := creator.Followers
	interactions := creator.Interactions24h
	posts := creator.PostsActive

	engagementRate := 0.0
	if followers > 0 {
		engagementRate = float64(interactions) / float64(followers) * 100
	}

	avgPerPost := 0.0
	if posts > 0 {
		avgPerPost = float64(interactions) / float64(posts)
	}

	networkSize := len(creator.TopCommunity)
	networkQuality := math.Min(100, float64(networkSize)/networkQualityFullSize*100)

	topicInfluence := 0.0
	for _, t := range creator.TopicInfluence {
		topicInfluence += t.Percent
	}

	categoryDiversity := math.Min(100, float64(len(creator.Categories()))*categoryDiversityPerItem)

	velocity, momentum := Growth(report.TimeSeries)
	growthScore := clamp(50+velocity*growthScorePerVelocity, 0, 100)

	return model.Metrics{
		EngagementRate:         engagementRate,
		AvgEngagementPerPost:   avgPerPost,
		NetworkQualityScore:    networkQuality,
		TopicInfluenceScore:    topicInfluence,
		CategoryDiversityScore: categoryDiversity,
		GrowthVelocity:         velocity,
		GrowthScore:            growthScore,
		ContentConsistency:     ContentConsistency(report.TopPosts),
		NetworkDensity:         NetworkDensity(report.Network.TopCommunity),
		Momentum:               momentum,
		CreatorRank:            creator.Rank,
		NetworkSize:            networkSize,
		PostsCount24h:          posts,
		InteractionsCount24h:   interactions,
	}
}

// Growth fits an ordinary least-squares regression of interactions against
// index position and returns the velocity (slope as % of the average per
// period) and the momentum label. Fewer than two points yields a neutral
// zero velocity.
func Growth(series []model.TimeSeriesPoint) (float64, model.Momentum) {
	if len(series) < 2 {
		return 0, MomentumFor(0)
	}

	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64
	for i, pt := range series {
		x := float64(i)
		y := pt.Interactions
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, MomentumFor(0)
	}
	slope := (n*sumXY - sumX*sumY) / denom

	avg := sumY / n
	velocity := 0.0
	if avg > 0 {
		velocity = slope / avg * 100
	}
	return velocity, MomentumFor(velocity)
}

// MomentumFor maps a growth velocity to its qualitative label.
func MomentumFor(velocity float64) model.Momentum {
	switch {
	case velocity > momentumThreshold:
		return model.MomentumBullish
	case velocity < -momentumThreshold:
		return model.MomentumBearish
	default:
		return model.MomentumNeutral
	}
}

// ContentConsistency scores how evenly engagement is spread across the
// fetched posts: 100 minus ten times the variance-to-mean ratio, floored
// at zero. No posts, or posts with zero total interactions, score 0.
func ContentConsistency(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}

	var total float64
	counts := make([]float64, len(posts))
	for i, p := range posts {
		counts[i] = float64(p.InteractionCount())
		total += counts[i]
	}
	if total == 0 {
		return 0
	}

	avg := total / float64(len(counts))
	var variance float64
	for _, c := range counts {
		variance += (c - avg) * (c - avg)
	}
	variance /= float64(len(counts))

	return math.Max(0, 100-(variance/avg)*consistencyCoefficient)
}

// NetworkDensity returns the mean interaction count per top-community
// connection, or 0 for an empty community.
func NetworkDensity(community []model.Connection) float64 {
	if len(community) == 0 {
		return 0
	}
	var total int64
	for _, c := range community {
		total += c.Count
	}
	return float64(total) / float64(len(community))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
