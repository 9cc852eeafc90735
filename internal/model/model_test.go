package model

import "testing"

func fptr(v float64) *float64 { return &v }

func iptr(v int64) *int64 { return &v }

func TestComma(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{999999, "999,999"},
		{1000000, "1,000,000"},
		{1250000, "1,250,000"},
		{-1, "-1"},
		{-1000, "-1,000"},
		{-1234567, "-1,234,567"},
	}
	for _, tc := range cases {
		if got := Comma(tc.in); got != tc.want {
			t.Errorf("Comma(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPostBody(t *testing.T) {
	cases := []struct {
		name string
		post Post
		want string
	}{
		{"text wins", Post{Text: "a", Title: "b", Content: "c"}, "a"},
		{"title second", Post{Title: "b", Content: "c"}, "b"},
		{"content last", Post{Content: "c"}, "c"},
		{"all empty", Post{}, ""},
	}
	for _, tc := range cases {
		if got := tc.post.Body(); got != tc.want {
			t.Errorf("%s: Body() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPostInteractionCount(t *testing.T) {
	if got := (Post{InteractionsTotal: iptr(600), Interactions24h: iptr(90)}).InteractionCount(); got != 600 {
		t.Errorf("interactions_total should win, got %d", got)
	}
	if got := (Post{Interactions24h: iptr(90)}).InteractionCount(); got != 90 {
		t.Errorf("interactions_24h fallback, got %d", got)
	}
	if got := (Post{}).InteractionCount(); got != 0 {
		t.Errorf("missing counts should be 0, got %d", got)
	}
	// a present zero total beats a present 24h count
	if got := (Post{InteractionsTotal: iptr(0), Interactions24h: iptr(90)}).InteractionCount(); got != 0 {
		t.Errorf("present zero total should win, got %d", got)
	}
}

func TestCreatorCategories(t *testing.T) {
	primary := []CategoryInfluence{{Category: "crypto", Percent: 9}}
	secondary := []CategoryInfluence{{Name: "finance", Influence: 3}}
	legacy := []CategoryInfluence{{Name: "tech", Influence: 1}}

	c := &CreatorProfile{CategoryInfluence: primary, SocialCategoryInfluence: secondary, CategoriesLegacy: legacy}
	if got := c.Categories(); &got[0] != &primary[0] {
		t.Error("category_influence should win")
	}

	c = &CreatorProfile{SocialCategoryInfluence: secondary, CategoriesLegacy: legacy}
	if got := c.Categories(); &got[0] != &secondary[0] {
		t.Error("social_category_influence should be second")
	}

	c = &CreatorProfile{CategoriesLegacy: legacy}
	if got := c.Categories(); &got[0] != &legacy[0] {
		t.Error("categories should be the fallback")
	}

	if got := (&CreatorProfile{}).Categories(); got != nil {
		t.Errorf("no category keys should yield nil, got %v", got)
	}
}

func TestCreatorAssets(t *testing.T) {
	c := &CreatorProfile{AssetsMentioned: []string{"BTC"}, MentionedAssets: []string{"ETH"}, AssetsLegacy: []string{"SOL"}}
	if got := c.Assets(); got[0] != "BTC" {
		t.Error("assets_mentioned should win")
	}

	c = &CreatorProfile{MentionedAssets: []string{"ETH"}, AssetsLegacy: []string{"SOL"}}
	if got := c.Assets(); got[0] != "ETH" {
		t.Error("mentioned_assets should be second")
	}

	c = &CreatorProfile{AssetsLegacy: []string{"SOL"}}
	if got := c.Assets(); got[0] != "SOL" {
		t.Error("assets should be the fallback")
	}
}

func TestCategoryInfluenceAccessors(t *testing.T) {
	c := CategoryInfluence{Category: "crypto", Name: "ignored", Percent: 9.5, Influence: 3.2}
	if c.DisplayName() != "crypto" {
		t.Error("category label should win over name")
	}
	if c.Share() != 9.5 {
		t.Error("percent should win over influence")
	}

	c = CategoryInfluence{Name: "finance", Influence: 3.2}
	if c.DisplayName() != "finance" {
		t.Error("name fallback")
	}
	if c.Share() != 3.2 {
		t.Error("influence fallback")
	}
}

func TestCreatorSummaryFieldCount(t *testing.T) {
	base := CreatorSummary{}
	if got := base.FieldCount(); got != 10 {
		t.Errorf("bare summary should count 10 fields, got %d", got)
	}

	full := CreatorSummary{
		EngagementRate:    fptr(5),
		AvgEngagementRate: fptr(4),
		Sentiment:         fptr(0.8),
		SocialDominance:   fptr(1.2),
	}
	if got := full.FieldCount(); got != 14 {
		t.Errorf("all optional scalars present should count 14, got %d", got)
	}

	partial := CreatorSummary{Sentiment: fptr(0.8)}
	if got := partial.FieldCount(); got != 11 {
		t.Errorf("one optional scalar should count 11, got %d", got)
	}
}
