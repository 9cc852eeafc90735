package model

// CreatorProfile is the raw creator record as parsed from the data source.
// Absent numeric fields decode to zero values; optional scalars stay nil.
type CreatorProfile struct {
	ID          string `json:"creator_id"`
	Name        string `json:"creator_name"`
	DisplayName string `json:"creator_display_name"`
	Avatar      string `json:"creator_avatar"`

	Followers       int64  `json:"creator_followers"`
	Rank            *int64 `json:"creator_rank"`
	Interactions24h int64  `json:"interactions_24h"`
	PostsActive     int64  `json:"posts_active"`
	PostsCreated    int64  `json:"posts_created"`
	Verified        bool   `json:"verified"`

	EngagementRate    *float64 `json:"engagement_rate"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate"`
	Sentiment         *float64 `json:"sentiment"`
	SocialDominance   *float64 `json:"social_dominance"`

	TopicInfluence []TopicInfluence `json:"topic_influence"`
	TopCommunity   []Connection     `json:"top_community"`

	// The upstream API has shipped category influence under three different
	// keys. Categories() resolves the priority once.
	CategoryInfluence       []CategoryInfluence `json:"category_influence"`
	SocialCategoryInfluence []CategoryInfluence `json:"social_category_influence"`
	CategoriesLegacy        []CategoryInfluence `json:"categories"`

	// Same story for mentioned assets.
	AssetsMentioned      []string `json:"assets_mentioned"`
	MentionedAssets      []string `json:"mentioned_assets"`
	AssetsLegacy         []string `json:"assets"`
}

// Categories returns the category influence list under the first populated
// upstream key.
func (c *CreatorProfile) Categories() []CategoryInfluence {
	switch {
	case len(c.CategoryInfluence) > 0:
		return c.CategoryInfluence
	case len(c.SocialCategoryInfluence) > 0:
		return c.SocialCategoryInfluence
	default:
		return c.CategoriesLegacy
	}
}

// Assets returns the mentioned-asset list under the first populated
// upstream key.
func (c *CreatorProfile) Assets() []string {
	switch {
	case len(c.AssetsMentioned) > 0:
		return c.AssetsMentioned
	case len(c.MentionedAssets) > 0:
		return c.MentionedAssets
	default:
		return c.AssetsLegacy
	}
}

// TopicInfluence is one subject area the creator has measured authority in.
// Rank is nil for unranked topics.
type TopicInfluence struct {
	Topic   string  `json:"topic"`
	Percent float64 `json:"percent"`
	Rank    *int64  `json:"rank,omitempty"`
}

// CategoryInfluence is one content category with its influence share.
// The upstream payload names the category either "category" or "name" and
// the share either "percent" or "influence".
type CategoryInfluence struct {
	Category  string  `json:"category,omitempty"`
	Name      string  `json:"name,omitempty"`
	Percent   float64 `json:"percent,omitempty"`
	Influence float64 `json:"influence,omitempty"`
}

// DisplayName resolves the category label, preferring "category".
func (c CategoryInfluence) DisplayName() string {
	if c.Category != "" {
		return c.Category
	}
	return c.Name
}

// Share resolves the influence share, preferring "percent".
func (c CategoryInfluence) Share() float64 {
	if c.Percent != 0 {
		return c.Percent
	}
	return c.Influence
}

// Connection is one counterpart account in the creator's top community.
// Source order is preserved; it is never re-sorted.
type Connection struct {
	CreatorID   string `json:"creator_id"`
	CreatorName string `json:"creator_name"`
	DisplayName string `json:"creator_display_name,omitempty"`
	Avatar      string `json:"creator_avatar,omitempty"`
	Count       int64  `json:"count"`
}

// Post is one raw post record.
type Post struct {
	ID      string `json:"id"`
	Text    string `json:"text,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`

	InteractionsTotal *int64 `json:"interactions_total,omitempty"`
	Interactions24h   *int64 `json:"interactions_24h,omitempty"`

	Created   int64    `json:"post_created"`
	Sentiment *float64 `json:"post_sentiment,omitempty"`
	Image     string   `json:"post_image,omitempty"`
	Link      string   `json:"post_link,omitempty"`
}

// Body returns the post body text: text, then title, then content,
// first non-empty wins.
func (p Post) Body() string {
	switch {
	case p.Text != "":
		return p.Text
	case p.Title != "":
		return p.Title
	default:
		return p.Content
	}
}

// InteractionCount returns the canonical interaction count for the post:
// interactions_total when present, else interactions_24h, else 0.
func (p Post) InteractionCount() int64 {
	switch {
	case p.InteractionsTotal != nil:
		return *p.InteractionsTotal
	case p.Interactions24h != nil:
		return *p.Interactions24h
	default:
		return 0
	}
}

// TimeSeriesPoint is one bucket of the creator interaction time series,
// ordered by time ascending as returned by the data source.
type TimeSeriesPoint struct {
	Time         int64   `json:"time"`
	Interactions float64 `json:"interactions"`
	PostsActive  float64 `json:"posts_active"`
}
