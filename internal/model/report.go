package model

import "time"

// ReportVersion tags every generated report and its metadata.
const ReportVersion = "creatorscope-v1.0"

// Momentum is the qualitative growth-direction label derived from the
// time-series regression slope.
type Momentum string

const (
	MomentumBullish Momentum = "bullish"
	MomentumNeutral Momentum = "neutral"
	MomentumBearish Momentum = "bearish"
)

// Metrics holds every derived metric for a creator. All values are finite;
// zero-denominator cases resolve to the documented neutral defaults.
type Metrics struct {
	EngagementRate         float64  `json:"engagement_rate"`
	AvgEngagementPerPost   float64  `json:"avg_engagement_per_post"`
	NetworkQualityScore    float64  `json:"network_quality_score"`
	TopicInfluenceScore    float64  `json:"topic_influence_score"`
	CategoryDiversityScore float64  `json:"category_diversity_score"`
	GrowthVelocity         float64  `json:"growth_velocity"`
	GrowthScore            float64  `json:"growth_score"`
	ContentConsistency     float64  `json:"content_consistency"`
	NetworkDensity         float64  `json:"network_density"`
	Momentum               Momentum `json:"momentum"`
	CreatorRank            *int64   `json:"creator_rank"`
	NetworkSize            int      `json:"network_size"`
	PostsCount24h          int64    `json:"posts_count_24h"`
	InteractionsCount24h   int64    `json:"interactions_count_24h"`
}

// MetricsFieldCount is the number of fields Metrics serializes, used by the
// metadata data-point census.
const MetricsFieldCount = 14

// CreatorSummary is the creator subset embedded in a Report. Optional
// scalars are emitted only when the data source provided them.
type CreatorSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DisplayName     string   `json:"display_name"`
	Avatar          string   `json:"avatar"`
	Followers       int64    `json:"followers"`
	CreatorRank     *int64   `json:"creator_rank"`
	Interactions24h int64    `json:"interactions_24h"`
	PostsActive24h  int64    `json:"posts_active_24h"`
	PostsCreated24h int64    `json:"posts_created_24h"`
	Verified        bool     `json:"verified"`

	EngagementRate    *float64 `json:"engagement_rate,omitempty"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate,omitempty"`
	Sentiment         *float64 `json:"sentiment,omitempty"`
	SocialDominance   *float64 `json:"social_dominance,omitempty"`
}

// FieldCount returns how many fields the summary serializes: the ten fixed
// fields plus whichever optional scalars are present.
func (c CreatorSummary) FieldCount() int {
	n := 10
	for _, p := range []*float64{c.EngagementRate, c.AvgEngagementRate, c.Sentiment, c.SocialDominance} {
		if p != nil {
			n++
		}
	}
	return n
}

// PostsAnalysis summarizes the fetched post set.
type PostsAnalysis struct {
	TotalPosts              int     `json:"total_posts"`
	TotalInteractions       int64   `json:"total_interactions"`
	AvgInteractions         float64 `json:"avg_interactions"`
	TopPost                 *Post   `json:"top_post"`
	Top5Posts               []Post  `json:"top_5_posts"`
	PostsWithHighEngagement int     `json:"posts_with_high_engagement"`
	ViralPosts              int     `json:"viral_posts"`
}

// TopicAnalysis summarizes the creator's topic influence list.
type TopicAnalysis struct {
	TotalTopics           int             `json:"total_topics"`
	TopTopic              *TopicInfluence `json:"top_topic"`
	TotalInfluencePercent float64         `json:"total_influence_percent"`
	RankedTopics          int             `json:"ranked_topics"`
}

// CategoryEntry is one normalized category in the category analysis.
type CategoryEntry struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// CategoryAnalysis summarizes the creator's category influence list.
type CategoryAnalysis struct {
	TotalCategories       int                `json:"total_categories"`
	TopCategory           *CategoryInfluence `json:"top_category"`
	TotalInfluencePercent float64            `json:"total_influence_percent"`
	Categories            []CategoryEntry    `json:"categories"`
}

// NetworkAnalysis summarizes the creator's top community.
type NetworkAnalysis struct {
	TotalInteractions            int64       `json:"total_interactions"`
	AvgInteractionsPerConnection float64     `json:"avg_interactions_per_connection"`
	TopConnection                *Connection `json:"top_connection"`
	ConnectionsWithAvatars       int         `json:"connections_with_avatars"`
}

// Network is the network block of a Report.
type Network struct {
	TopCommunity     []Connection    `json:"top_community"`
	TotalConnections int             `json:"total_connections"`
	NetworkAnalysis  NetworkAnalysis `json:"network_analysis"`
}

// Insight is one rule-based textual observation.
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Indicator is one exponential-growth indicator.
type Indicator struct {
	Type      string `json:"type"`
	Indicator string `json:"indicator"`
	Message   string `json:"message"`
	Strength  string `json:"strength"`
}

// Recommendation is one prioritized action item.
type Recommendation struct {
	Priority  string   `json:"priority"`
	Action    string   `json:"action"`
	Reasoning string   `json:"reasoning"`
	NextSteps []string `json:"next_steps"`
}

// DerivedMetrics carries the standalone derived metrics block.
type DerivedMetrics struct {
	EngagementVelocity    float64     `json:"engagement_velocity"`
	NetworkDensity        float64     `json:"network_density"`
	ContentConsistency    float64     `json:"content_consistency"`
	InfluenceScore        float64     `json:"influence_score"`
	ExponentialIndicators []Indicator `json:"exponential_indicators"`
}

// Metadata is the report bookkeeping block.
type Metadata struct {
	DataQuality     string    `json:"data_quality"`
	DataFreshness   time.Time `json:"data_freshness"`
	DataSources     []string  `json:"data_sources"`
	TotalDataPoints int       `json:"total_data_points"`
	ReportVersion   string    `json:"report_version"`
}

// Report is the full analysis output for one creator handle. It is built
// once and never mutated afterwards.
type Report struct {
	Handle      string    `json:"handle"`
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`

	Creator    CreatorSummary    `json:"creator"`
	TimeSeries []TimeSeriesPoint `json:"time_series,omitempty"`

	TopPosts      []Post         `json:"top_posts"`
	PostsAnalysis *PostsAnalysis `json:"posts_analysis,omitempty"`

	TopicInfluence []TopicInfluence `json:"topic_influence"`
	TopicAnalysis  TopicAnalysis    `json:"topic_analysis"`

	CategoryInfluence []CategoryInfluence `json:"category_influence"`
	CategoryAnalysis  CategoryAnalysis    `json:"category_analysis"`

	Network         Network  `json:"network"`
	AssetsMentioned []string `json:"assets_mentioned"`

	Metrics                  Metrics `json:"metrics"`
	InvestmentReadinessScore int     `json:"investment_readiness_score"`

	Insights        []Insight        `json:"insights"`
	Narrative       string           `json:"narrative"`
	DerivedMetrics  DerivedMetrics   `json:"derived_metrics"`
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        Metadata         `json:"metadata"`
}
