package report

import (
	"sort"
	"time"

	"github.com/creatorscope/creatorscope/internal/insights"
	"github.com/creatorscope/creatorscope/internal/metrics"
	"github.com/creatorscope/creatorscope/internal/model"
	"github.com/creatorscope/creatorscope/internal/progress"
	"github.com/creatorscope/creatorscope/internal/recommend"
	"github.com/creatorscope/creatorscope/internal/score"
)

// Engagement thresholds for the posts analysis block.
const (
	highEngagementInteractions  = 100
	viralPostInteractionsTotal  = 500
)

// Assemble builds the complete Report from an already-fetched raw snapshot.
// It is deterministic given raw and now, and aside from the tracker side
// channel performs no I/O. raw is only read.
func Assemble(handle string, raw Raw, now time.Time, tracker *progress.Tracker) *model.Report {
	creator := raw.Creator

	rep := &model.Report{
		Handle:      handle,
		GeneratedAt: now,
		Version:     model.ReportVersion,
		Creator: model.CreatorSummary{
			ID:                creator.ID,
			Name:              creator.Name,
			DisplayName:       creator.DisplayName,
			Avatar:            creator.Avatar,
			Followers:         creator.Followers,
			CreatorRank:       creator.Rank,
			Interactions24h:   creator.Interactions24h,
			PostsActive24h:    creator.PostsActive,
			PostsCreated24h:   creator.PostsCreated,
			Verified:          creator.Verified,
			EngagementRate:    creator.EngagementRate,
			AvgEngagementRate: creator.AvgEngagementRate,
			Sentiment:         creator.Sentiment,
			SocialDominance:   creator.SocialDominance,
		},
		TimeSeries: raw.TimeSeries,
	}

	rep.TopPosts, rep.PostsAnalysis = analyzePosts(raw.Posts)

	tracker.Stage("Analyzing topic influence...")
	rep.TopicInfluence = emptyIfNil(creator.TopicInfluence)
	rep.TopicAnalysis = analyzeTopics(creator.TopicInfluence)
	rep.CategoryInfluence = emptyIfNil(creator.Categories())
	rep.CategoryAnalysis = analyzeCategories(creator.Categories())

	tracker.Stage("Mapping network...")
	rep.Network = analyzeNetwork(creator.TopCommunity)
	rep.AssetsMentioned = emptyIfNil(creator.Assets())

	tracker.Stage("Calculating metrics...")
	rep.Metrics = metrics.Compute(creator, rep)
	rep.InvestmentReadinessScore = score.Investment(rep.Metrics)

	rep.Insights = insights.Build(rep, rep.Metrics, rep.InvestmentReadinessScore)
	rep.Narrative = Narrative(rep, rep.InvestmentReadinessScore)
	rep.DerivedMetrics = model.DerivedMetrics{
		EngagementVelocity:    engagementVelocity(creator),
		NetworkDensity:        rep.Metrics.NetworkDensity,
		ContentConsistency:    rep.Metrics.ContentConsistency,
		InfluenceScore:        score.Influence(rep.Metrics),
		ExponentialIndicators: insights.Indicators(rep, rep.Metrics, rep.InvestmentReadinessScore),
	}
	rep.Recommendations = recommend.Build(rep, rep.InvestmentReadinessScore)
	rep.Metadata = composeMetadata(rep, raw, now)

	return rep
}

// analyzePosts sorts posts by interaction count descending and derives the
// posts analysis block. A nil input yields an empty list and no analysis.
func analyzePosts(posts []model.Post) ([]model.Post, *model.PostsAnalysis) {
	if posts == nil {
		return []model.Post{}, nil
	}

	sorted := make([]model.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InteractionCount() > sorted[j].InteractionCount()
	})

	analysis := &model.PostsAnalysis{TotalPosts: len(posts)}
	for _, p := range posts {
		n := p.InteractionCount()
		analysis.TotalInteractions += n
		if n > highEngagementInteractions {
			analysis.PostsWithHighEngagement++
		}
		if p.InteractionsTotal != nil && *p.InteractionsTotal > viralPostInteractionsTotal {
			analysis.ViralPosts++
		}
	}
	if len(posts) > 0 {
		analysis.AvgInteractions = float64(analysis.TotalInteractions) / float64(len(posts))
		analysis.TopPost = &sorted[0]
	}
	top5 := len(sorted)
	if top5 > 5 {
		top5 = 5
	}
	analysis.Top5Posts = sorted[:top5]

	return sorted, analysis
}

func analyzeTopics(topics []model.TopicInfluence) model.TopicAnalysis {
	analysis := model.TopicAnalysis{TotalTopics: len(topics)}
	for i, t := range topics {
		analysis.TotalInfluencePercent += t.Percent
		if t.Rank != nil {
			analysis.RankedTopics++
		}
		if i == 0 {
			top := t
			analysis.TopTopic = &top
		}
	}
	return analysis
}

func analyzeCategories(categories []model.CategoryInfluence) model.CategoryAnalysis {
	analysis := model.CategoryAnalysis{
		TotalCategories: len(categories),
		Categories:      make([]model.CategoryEntry, 0, len(categories)),
	}
	for i, c := range categories {
		analysis.TotalInfluencePercent += c.Share()
		analysis.Categories = append(analysis.Categories, model.CategoryEntry{
			Name:    c.DisplayName(),
			Percent: c.Share(),
		})
		if i == 0 {
			top := c
			analysis.TopCategory = &top
		}
	}
	return analysis
}

func analyzeNetwork(community []model.Connection) model.Network {
	network := model.Network{
		TopCommunity:     emptyIfNil(community),
		TotalConnections: len(community),
	}
	for i, c := range community {
		network.NetworkAnalysis.TotalInteractions += c.Count
		if c.Avatar != "" {
			network.NetworkAnalysis.ConnectionsWithAvatars++
		}
		if i == 0 {
			top := c
			network.NetworkAnalysis.TopConnection = &top
		}
	}
	if len(community) > 0 {
		network.NetworkAnalysis.AvgInteractionsPerConnection =
			float64(network.NetworkAnalysis.TotalInteractions) / float64(len(community))
	}
	return network
}

// engagementVelocity keeps the established followers-or-one denominator,
// which differs from engagement_rate for zero-follower creators.
func engagementVelocity(creator *model.CreatorProfile) float64 {
	followers := creator.Followers
	if followers == 0 {
		followers = 1
	}
	return float64(creator.Interactions24h) / float64(followers) * 100
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
