package metrics

import (
	"math"
	"testing"

	"github.com/creatorscope/creatorscope/internal/model"
)

func intPtr(v int64) *int64 { return &v }

func TestCompute_EmptyInputs(t *testing.T) {
	creator := &model.CreatorProfile{}
	rep := &model.Report{}

	m := Compute(creator, rep)

	if m.EngagementRate != 0 {
		t.Errorf("engagement rate = %v, want 0", m.EngagementRate)
	}
	if m.AvgEngagementPerPost != 0 {
		t.Errorf("avg engagement per post = %v, want 0", m.AvgEngagementPerPost)
	}
	if m.NetworkQualityScore != 0 {
		t.Errorf("network quality = %v, want 0", m.NetworkQualityScore)
	}
	if m.TopicInfluenceScore != 0 {
		t.Errorf("topic influence = %v, want 0", m.TopicInfluenceScore)
	}
	if m.ContentConsistency != 0 {
		t.Errorf("content consistency = %v, want 0", m.ContentConsistency)
	}
	if m.NetworkDensity != 0 {
		t.Errorf("network density = %v, want 0", m.NetworkDensity)
	}
	if m.GrowthVelocity != 0 {
		t.Errorf("growth velocity = %v, want 0", m.GrowthVelocity)
	}
	if m.GrowthScore != 50 {
		t.Errorf("growth score = %v, want neutral 50", m.GrowthScore)
	}
	if m.Momentum != model.MomentumNeutral {
		t.Errorf("momentum = %v, want neutral", m.Momentum)
	}
	if m.CreatorRank != nil {
		t.Errorf("creator rank = %v, want nil", *m.CreatorRank)
	}
}

func TestCompute_AllFinite(t *testing.T) {
	// Zero denominators everywhere must still produce finite values.
	m := Compute(&model.CreatorProfile{Interactions24h: 500}, &model.Report{})

	for name, v := range map[string]float64{
		"engagement_rate":        m.EngagementRate,
		"avg_engagement":         m.AvgEngagementPerPost,
		"network_quality":        m.NetworkQualityScore,
		"topic_influence":        m.TopicInfluenceScore,
		"category_diversity":     m.CategoryDiversityScore,
		"growth_velocity":        m.GrowthVelocity,
		"growth_score":           m.GrowthScore,
		"content_consistency":    m.ContentConsistency,
		"network_density":        m.NetworkDensity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want finite", name, v)
		}
	}
}

func TestCompute_Rates(t *testing.T) {
	creator := &model.CreatorProfile{
		Followers:       1000,
		Interactions24h: 50,
		PostsActive:     10,
	}
	m := Compute(creator, &model.Report{})

	if m.EngagementRate != 5.0 {
		t.Errorf("engagement rate = %v, want 5.0", m.EngagementRate)
	}
	if m.AvgEngagementPerPost != 5.0 {
		t.Errorf("avg engagement per post = %v, want 5.0", m.AvgEngagementPerPost)
	}
	if m.InteractionsCount24h != 50 || m.PostsCount24h != 10 {
		t.Errorf("passthrough counts = %d/%d, want 50/10", m.InteractionsCount24h, m.PostsCount24h)
	}
}

func TestCompute_NetworkQualityCapsAtTwenty(t *testing.T) {
	community := make([]model.Connection, 10)
	m := Compute(&model.CreatorProfile{TopCommunity: community}, &model.Report{})
	if m.NetworkQualityScore != 50 {
		t.Errorf("network quality with 10 connections = %v, want 50", m.NetworkQualityScore)
	}

	community = make([]model.Connection, 30)
	m = Compute(&model.CreatorProfile{TopCommunity: community}, &model.Report{})
	if m.NetworkQualityScore != 100 {
		t.Errorf("network quality with 30 connections = %v, want capped 100", m.NetworkQualityScore)
	}
	if m.NetworkSize != 30 {
		t.Errorf("network size = %d, want 30", m.NetworkSize)
	}
}

func TestCompute_CategoryDiversity(t *testing.T) {
	cats := make([]model.CategoryInfluence, 4)
	m := Compute(&model.CreatorProfile{CategoryInfluence: cats}, &model.Report{})
	if m.CategoryDiversityScore != 50 {
		t.Errorf("diversity with 4 categories = %v, want 50", m.CategoryDiversityScore)
	}

	cats = make([]model.CategoryInfluence, 10)
	m = Compute(&model.CreatorProfile{CategoryInfluence: cats}, &model.Report{})
	if m.CategoryDiversityScore != 100 {
		t.Errorf("diversity with 10 categories = %v, want capped 100", m.CategoryDiversityScore)
	}
}

func TestGrowth_LinearSeries(t *testing.T) {
	series := []model.TimeSeriesPoint{
		{Interactions: 100},
		{Interactions: 200},
		{Interactions: 300},
	}

	velocity, momentum := Growth(series)

	// slope = 100, avg = 200 -> 50% per period
	if velocity != 50 {
		t.Errorf("velocity = %v, want 50", velocity)
	}
	if momentum != model.MomentumBullish {
		t.Errorf("momentum = %v, want bullish", momentum)
	}

	m := Compute(&model.CreatorProfile{}, &model.Report{TimeSeries: series})
	if m.GrowthScore != 100 {
		t.Errorf("growth score = %v, want clamped 100", m.GrowthScore)
	}
}

func TestGrowth_DecliningSeries(t *testing.T) {
	series := []model.TimeSeriesPoint{
		{Interactions: 300},
		{Interactions: 200},
		{Interactions: 100},
	}
	velocity, momentum := Growth(series)
	if velocity != -50 {
		t.Errorf("velocity = %v, want -50", velocity)
	}
	if momentum != model.MomentumBearish {
		t.Errorf("momentum = %v, want bearish", momentum)
	}
}

func TestGrowth_ShortSeries(t *testing.T) {
	velocity, momentum := Growth([]model.TimeSeriesPoint{{Interactions: 100}})
	if velocity != 0 || momentum != model.MomentumNeutral {
		t.Errorf("single point = (%v, %v), want (0, neutral)", velocity, momentum)
	}

	velocity, momentum = Growth(nil)
	if velocity != 0 || momentum != model.MomentumNeutral {
		t.Errorf("nil series = (%v, %v), want (0, neutral)", velocity, momentum)
	}
}

func TestGrowth_FlatZeroSeries(t *testing.T) {
	velocity, momentum := Growth([]model.TimeSeriesPoint{{}, {}, {}})
	if velocity != 0 || momentum != model.MomentumNeutral {
		t.Errorf("all-zero series = (%v, %v), want (0, neutral)", velocity, momentum)
	}
}

func TestContentConsistency(t *testing.T) {
	uniform := []model.Post{
		{InteractionsTotal: intPtr(100)},
		{InteractionsTotal: intPtr(100)},
		{InteractionsTotal: intPtr(100)},
	}
	if got := ContentConsistency(uniform); got != 100 {
		t.Errorf("uniform posts consistency = %v, want 100", got)
	}

	if got := ContentConsistency(nil); got != 0 {
		t.Errorf("no posts consistency = %v, want 0", got)
	}

	zeroed := []model.Post{{}, {}}
	if got := ContentConsistency(zeroed); got != 0 {
		t.Errorf("zero-interaction consistency = %v, want 0", got)
	}

	// avg=200, variance=10000 -> 100 - (10000/200)*10 = -400 -> floored 0
	spread := []model.Post{
		{InteractionsTotal: intPtr(100)},
		{InteractionsTotal: intPtr(300)},
	}
	if got := ContentConsistency(spread); got != 0 {
		t.Errorf("high-variance consistency = %v, want floored 0", got)
	}
}

func TestContentConsistency_InteractionFallback(t *testing.T) {
	// interactions_24h is used when interactions_total is absent.
	posts := []model.Post{
		{Interactions24h: intPtr(50)},
		{Interactions24h: intPtr(50)},
	}
	if got := ContentConsistency(posts); got != 100 {
		t.Errorf("fallback consistency = %v, want 100", got)
	}
}

func TestNetworkDensity(t *testing.T) {
	community := []model.Connection{{Count: 10}, {Count: 20}}
	if got := NetworkDensity(community); got != 15 {
		t.Errorf("density = %v, want 15", got)
	}
	if got := NetworkDensity(nil); got != 0 {
		t.Errorf("empty density = %v, want 0", got)
	}
}

func TestCompute_SharedSubComputations(t *testing.T) {
	// The metric block and the standalone helpers must agree exactly.
	posts := []model.Post{
		{InteractionsTotal: intPtr(90)},
		{InteractionsTotal: intPtr(110)},
	}
	community := []model.Connection{{Count: 7}, {Count: 9}}

	rep := &model.Report{
		TopPosts: posts,
		Network:  model.Network{TopCommunity: community},
	}
	m := Compute(&model.CreatorProfile{}, rep)

	if m.ContentConsistency != ContentConsistency(posts) {
		t.Errorf("consistency mismatch: %v vs %v", m.ContentConsistency, ContentConsistency(posts))
	}
	if m.NetworkDensity != NetworkDensity(community) {
		t.Errorf("density mismatch: %v vs %v", m.NetworkDensity, NetworkDensity(community))
	}
}

func TestCompute_RankPassthrough(t *testing.T) {
	m := Compute(&model.CreatorProfile{Rank: intPtr(4242)}, &model.Report{})
	if m.CreatorRank == nil || *m.CreatorRank != 4242 {
		t.Errorf("creator rank = %v, want 4242", m.CreatorRank)
	}
}
